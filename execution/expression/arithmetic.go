package expression

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/ryokasa/MomijiDB/types"
)

type ArithmeticType int

/** ArithmeticType represents the binary arithmetic operator applied. */
const (
	Plus ArithmeticType = iota
	Minus
	Times
	Divide
)

func (a ArithmeticType) Symbol() string {
	switch a {
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Times:
		return "*"
	case Divide:
		return "/"
	}
	return "?"
}

/**
 * Arithmetic represents two expressions combined with +, -, * or /.
 */
type Arithmetic struct {
	*AbstractExpression
	arithmeticType ArithmeticType
	left           Expression
	right          Expression
}

func NewArithmetic(left Expression, right Expression, arithmeticType ArithmeticType) Expression {
	return &Arithmetic{&AbstractExpression{}, arithmeticType, left, right}
}

// TypeCheck checks both children before applying the operator rule so
// that diagnostics on both sides get reported. A plus with a string
// operand is value-to-string concatenation and yields string; any other
// string operand and every bool operand is an error. Divide yields
// double even for two int operands; the remaining operators yield int
// only when both operands are int.
func (a *Arithmetic) TypeCheck(tc *TypeChecker) types.ReturnType {
	if !tc.enter(a) {
		return types.ErrType
	}
	defer tc.leave()

	leftType := a.left.TypeCheck(tc)
	rightType := a.right.TypeCheck(tc)

	if leftType == types.ErrType || rightType == types.ErrType {
		return types.ErrType
	}

	if leftType == types.StringType || rightType == types.StringType {
		if a.arithmeticType == Plus {
			return types.StringType
		}
		return tc.diag(a, "Cannot %s string values", a.verb())
	}

	if leftType == types.BoolType || rightType == types.BoolType {
		return tc.diag(a, "Cannot %s bool values", a.verb())
	}

	if a.arithmeticType == Divide {
		return types.DoubleType
	}

	if leftType == types.IntType && rightType == types.IntType {
		return types.IntType
	}

	return types.DoubleType
}

func (a *Arithmetic) verb() string {
	switch a.arithmeticType {
	case Plus:
		return "add"
	case Minus:
		return "subtract"
	case Times:
		return "multiply"
	case Divide:
		return "divide"
	}
	return "combine"
}

func (a *Arithmetic) IsAggregate() bool {
	return a.left.IsAggregate() || a.right.IsAggregate()
}

func (a *Arithmetic) GetReferencedAttributes(atts mapset.Set[AttributeRef]) {
	a.left.GetReferencedAttributes(atts)
	a.right.GetReferencedAttributes(atts)
}

func (a *Arithmetic) GetChildren() []Expression {
	return []Expression{a.left, a.right}
}

func (a *Arithmetic) ToString() string {
	return a.arithmeticType.Symbol() + " (" + a.left.ToString() + ", " + a.right.ToString() + ")"
}

func (a *Arithmetic) GetArithmeticType() ArithmeticType {
	return a.arithmeticType
}

func (a *Arithmetic) GetType() ExpressionType {
	return EXPRESSION_TYPE_ARITHMETIC
}
