package expression

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// AbstractExpression supplies the default behavior a node gets when it
// does not declare otherwise: it is not an aggregate, refers to no
// attributes and has no children.
type AbstractExpression struct {
}

func (e *AbstractExpression) IsAggregate() bool { return false }

func (e *AbstractExpression) GetReferencedAttributes(atts mapset.Set[AttributeRef]) {
	// Default: this expression refers to no attributes.
}

func (e *AbstractExpression) GetChildren() []Expression { return nil }
