package types

// ReturnType is the result domain of expression type inference.
// ErrType is absorbing: once any subtree infers ErrType, every
// ancestor of that subtree infers ErrType too.
type ReturnType int

const (
	IntType ReturnType = iota
	DoubleType
	StringType
	BoolType
	ErrType
)

func (r ReturnType) String() string {
	switch r {
	case IntType:
		return "int"
	case DoubleType:
		return "double"
	case StringType:
		return "string"
	case BoolType:
		return "bool"
	case ErrType:
		return "error"
	}
	return "unknown"
}

func (r ReturnType) IsNumeric() bool {
	return r == IntType || r == DoubleType
}
