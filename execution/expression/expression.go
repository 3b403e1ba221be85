package expression

import (
	mapset "github.com/deckarep/golang-set/v2"
	pair "github.com/notEpsilon/go-pair"

	"github.com/ryokasa/MomijiDB/types"
)

type ExpressionType int

const (
	EXPRESSION_TYPE_CONSTANT_VALUE ExpressionType = iota
	EXPRESSION_TYPE_COLUMN_VALUE
	EXPRESSION_TYPE_ARITHMETIC
	EXPRESSION_TYPE_COMPARISON
	EXPRESSION_TYPE_LOGICAL_OP
	EXPRESSION_TYPE_AGGREGATION
)

// AttributeRef identifies one attribute reference as an (alias, column name) pair.
type AttributeRef = pair.Pair[string, string]

/**
 * Expression interface is the base of all the expressions in the system.
 * Expressions are modeled as trees: the planner builds them bottom-up from
 * the parsed query and never mutates them afterwards, so all traversals
 * below are read-only and deterministic.
 */
type Expression interface {
	// ToString renders the expression in its canonical, deterministic form.
	ToString() string
	// TypeCheck infers the expression's ReturnType against the checker's
	// catalog and alias bindings. Failures are reported as types.ErrType
	// with diagnostics accumulated on the checker; it never panics.
	TypeCheck(tc *TypeChecker) types.ReturnType
	// IsAggregate reports whether evaluating this expression requires
	// group-level aggregation.
	IsAggregate() bool
	// GetReferencedAttributes adds the attribute references reachable from
	// this expression to atts.
	GetReferencedAttributes(atts mapset.Set[AttributeRef])
	GetChildren() []Expression
	GetType() ExpressionType
}
