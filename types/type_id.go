package types

type TypeID int

const (
	Invalid TypeID = iota
	Boolean
	Tinyint
	Smallint
	Integer
	BigInt
	Decimal
	Float
	Varchar
	Timestamp
)

// String returns the canonical name of an attribute type. The compiler
// frontend recognizes only "int", "double", "string" and "bool"; every
// other TypeID prints its own name and type-checks to an error.
func (t TypeID) String() string {
	switch t {
	case Boolean:
		return "bool"
	case Tinyint:
		return "tinyint"
	case Smallint:
		return "smallint"
	case Integer:
		return "int"
	case BigInt:
		return "bigint"
	case Decimal:
		return "decimal"
	case Float:
		return "double"
	case Varchar:
		return "string"
	case Timestamp:
		return "timestamp"
	}
	return "invalid"
}

func (t TypeID) IsBoolean() bool {
	return t == Boolean
}
