package expression

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/ryokasa/MomijiDB/types"
)

type AggregationType int

/** AggregationType represents the aggregate function applied. */
const (
	SUM AggregationType = iota
	AVG
)

/**
 * Aggregation represents group-level aggregate functions such as SUM(a)
 * and AVG(a).
 */
type Aggregation struct {
	*AbstractExpression
	aggregationType AggregationType
	child           Expression
}

func NewAggregation(child Expression, aggregationType AggregationType) Expression {
	return &Aggregation{&AbstractExpression{}, aggregationType, child}
}

// TypeCheck requires a numeric child. SUM keeps the child's numeric
// type; AVG always yields double.
func (a *Aggregation) TypeCheck(tc *TypeChecker) types.ReturnType {
	if !tc.enter(a) {
		return types.ErrType
	}
	defer tc.leave()

	childType := a.child.TypeCheck(tc)

	if childType == types.ErrType {
		return types.ErrType
	}

	if !childType.IsNumeric() {
		return tc.diag(a, "Cannot apply %s to non-numeric attribute: %s", a.name(), a.child.ToString())
	}

	if a.aggregationType == AVG {
		return types.DoubleType
	}

	return childType
}

func (a *Aggregation) name() string {
	if a.aggregationType == AVG {
		return "AVG"
	}
	return "SUM"
}

// An aggregation node is an aggregate regardless of its child.
func (a *Aggregation) IsAggregate() bool {
	return true
}

func (a *Aggregation) GetReferencedAttributes(atts mapset.Set[AttributeRef]) {
	a.child.GetReferencedAttributes(atts)
}

func (a *Aggregation) GetChildren() []Expression {
	return []Expression{a.child}
}

func (a *Aggregation) ToString() string {
	if a.aggregationType == AVG {
		return "avg(" + a.child.ToString() + ")"
	}
	return "sum(" + a.child.ToString() + ")"
}

func (a *Aggregation) GetAggregationType() AggregationType {
	return a.aggregationType
}

func (a *Aggregation) GetType() ExpressionType {
	return EXPRESSION_TYPE_AGGREGATION
}
