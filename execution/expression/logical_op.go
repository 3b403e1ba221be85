package expression

import (
	"github.com/ryokasa/MomijiDB/common"
	"github.com/ryokasa/MomijiDB/types"
)

type LogicalOpType int

/** LogicalOpType represents the logical operator applied. */
const (
	AND LogicalOpType = iota
	OR
	NOT
)

/**
 * LogicalOp represents two expressions or one expression being evaluated
 * with a logical operator. Like Comparison it keeps the default
 * IsAggregate/GetReferencedAttributes behavior.
 */
type LogicalOp struct {
	*AbstractExpression
	logicalOpType LogicalOpType
	left          Expression
	right         Expression
}

// NewLogicalOp builds an AND/OR node. NOT is unary; use NewNotOp.
func NewLogicalOp(left Expression, right Expression, logicalOpType LogicalOpType) Expression {
	common.MJ_Assert(logicalOpType == AND || logicalOpType == OR, "NOT op takes a single child")
	return &LogicalOp{&AbstractExpression{}, logicalOpType, left, right}
}

func NewNotOp(child Expression) Expression {
	return &LogicalOp{&AbstractExpression{}, NOT, child, nil}
}

// TypeCheck requires every operand to be exactly bool and yields bool.
func (l *LogicalOp) TypeCheck(tc *TypeChecker) types.ReturnType {
	if !tc.enter(l) {
		return types.ErrType
	}
	defer tc.leave()

	if l.logicalOpType == NOT {
		childType := l.left.TypeCheck(tc)

		if childType == types.ErrType {
			return types.ErrType
		}

		if childType != types.BoolType {
			return tc.diag(l, "NOT operator requires a boolean expression, but got type %s", childType)
		}

		return types.BoolType
	}

	leftType := l.left.TypeCheck(tc)
	rightType := l.right.TypeCheck(tc)

	if leftType == types.ErrType || rightType == types.ErrType {
		return types.ErrType
	}

	if leftType != types.BoolType || rightType != types.BoolType {
		return tc.diag(l, "%s operator requires boolean operands, but got %s and %s.", l.name(), leftType, rightType)
	}

	return types.BoolType
}

func (l *LogicalOp) name() string {
	switch l.logicalOpType {
	case AND:
		return "AND"
	case OR:
		return "OR"
	case NOT:
		return "NOT"
	}
	return "unknown"
}

func (l *LogicalOp) GetChildren() []Expression {
	if l.logicalOpType == NOT {
		return []Expression{l.left}
	}
	return []Expression{l.left, l.right}
}

func (l *LogicalOp) ToString() string {
	switch l.logicalOpType {
	case NOT:
		return "!(" + l.left.ToString() + ")"
	case AND:
		return "&& (" + l.left.ToString() + ", " + l.right.ToString() + ")"
	default:
		return "|| (" + l.left.ToString() + ", " + l.right.ToString() + ")"
	}
}

func (l *LogicalOp) GetLogicalOpType() LogicalOpType {
	return l.logicalOpType
}

func (l *LogicalOp) GetType() ExpressionType {
	return EXPRESSION_TYPE_LOGICAL_OP
}
