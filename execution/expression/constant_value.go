package expression

import (
	"github.com/ryokasa/MomijiDB/types"
)

/**
 * ConstantValue represents literals such as 42, 1.5, 'abc' or true.
 */
type ConstantValue struct {
	*AbstractExpression
	value types.Value
}

func NewConstantValue(value types.Value) Expression {
	return &ConstantValue{&AbstractExpression{}, value}
}

// NewStringConstantFromLiteral builds a string constant from the quoted
// form appearing in SQL text: exactly one leading and one trailing
// delimiter character are stripped. Escape handling is the lexer's job.
func NewStringConstantFromLiteral(literal string) Expression {
	return NewConstantValue(types.NewVarchar(literal[1 : len(literal)-1]))
}

func (c *ConstantValue) GetValue() types.Value {
	return c.value
}

// TypeCheck of a literal is total: it never consults the catalog or the
// alias bindings and cannot fail.
func (c *ConstantValue) TypeCheck(tc *TypeChecker) types.ReturnType {
	switch c.value.ValueType() {
	case types.Integer:
		return types.IntType
	case types.Float:
		return types.DoubleType
	case types.Varchar:
		return types.StringType
	case types.Boolean:
		return types.BoolType
	}
	return types.ErrType
}

func (c *ConstantValue) ToString() string {
	switch c.value.ValueType() {
	case types.Integer:
		return "int[" + c.value.String() + "]"
	case types.Float:
		return "double[" + c.value.String() + "]"
	case types.Varchar:
		return "string[" + c.value.String() + "]"
	case types.Boolean:
		return "bool[" + c.value.String() + "]"
	}
	return "invalid[]"
}

func (c *ConstantValue) GetType() ExpressionType {
	return EXPRESSION_TYPE_CONSTANT_VALUE
}
