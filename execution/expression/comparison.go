package expression

import (
	"github.com/ryokasa/MomijiDB/types"
)

type ComparisonType int

/** ComparisonType represents the type of comparison that we want to perform. */
const (
	Equal ComparisonType = iota
	NotEqual
	GreaterThan
	LessThan
)

func (c ComparisonType) Symbol() string {
	switch c {
	case Equal:
		return "=="
	case NotEqual:
		return "!="
	case GreaterThan:
		return ">"
	case LessThan:
		return "<"
	}
	return "?"
}

/**
 * Comparison represents two expressions being compared.
 *
 * Comparison keeps the default IsAggregate/GetReferencedAttributes
 * behavior: aggregates and attribute references below a comparison are
 * not surfaced through it. The planner's aggregate detection and
 * projection pruning rely on this today, so widening the propagation
 * has to be coordinated with the planner first.
 */
type Comparison struct {
	*AbstractExpression
	comparisonType ComparisonType
	left           Expression
	right          Expression
}

func NewComparison(left Expression, right Expression, comparisonType ComparisonType) Expression {
	return &Comparison{&AbstractExpression{}, comparisonType, left, right}
}

// TypeCheck allows string-with-string and numeric-with-numeric operand
// pairs (int and double mix freely); everything else is rejected. A
// valid comparison always yields bool.
func (c *Comparison) TypeCheck(tc *TypeChecker) types.ReturnType {
	if !tc.enter(c) {
		return types.ErrType
	}
	defer tc.leave()

	leftType := c.left.TypeCheck(tc)
	rightType := c.right.TypeCheck(tc)

	if leftType == types.ErrType || rightType == types.ErrType {
		return types.ErrType
	}

	if leftType == types.StringType || rightType == types.StringType {
		if leftType != rightType {
			return tc.diag(c, "Cannot compare incompatible types: left=%s, right=%s", leftType, rightType)
		}
		return types.BoolType
	}

	if leftType.IsNumeric() && rightType.IsNumeric() {
		return types.BoolType
	}

	return tc.diag(c, "Cannot compare incompatible types: left=%s, right=%s", leftType, rightType)
}

func (c *Comparison) GetChildren() []Expression {
	return []Expression{c.left, c.right}
}

func (c *Comparison) ToString() string {
	return c.comparisonType.Symbol() + " (" + c.left.ToString() + ", " + c.right.ToString() + ")"
}

func (c *Comparison) GetComparisonType() ComparisonType {
	return c.comparisonType
}

func (c *Comparison) GetType() ExpressionType {
	return EXPRESSION_TYPE_COMPARISON
}
