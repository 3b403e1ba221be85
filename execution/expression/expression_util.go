package expression

import (
	mapset "github.com/deckarep/golang-set/v2"
	stack "github.com/golang-collections/collections/stack"
	"golang.org/x/exp/slices"

	"github.com/ryokasa/MomijiDB/container/hash"
)

// ReferencedAttributes collects every attribute reference exp surfaces.
// Comparison and logical nodes stop the traversal (see Comparison), so a
// caller that needs the attributes below a predicate must walk the
// predicate's operands itself.
func ReferencedAttributes(exp Expression) mapset.Set[AttributeRef] {
	atts := mapset.NewSet[AttributeRef]()
	exp.GetReferencedAttributes(atts)
	return atts
}

// SortedReferencedAttributes returns the referenced attributes ordered
// by alias then column name, for stable plan display.
func SortedReferencedAttributes(exp Expression) []AttributeRef {
	atts := ReferencedAttributes(exp).ToSlice()
	slices.SortFunc(atts, func(a, b AttributeRef) int {
		if a.First != b.First {
			if a.First < b.First {
				return -1
			}
			return 1
		}
		if a.Second < b.Second {
			return -1
		}
		if a.Second > b.Second {
			return 1
		}
		return 0
	})
	return atts
}

type expAndDepth struct {
	exp   Expression
	depth int32
}

// TreeDepth measures the depth of exp with an explicit stack, so the
// measurement itself stays safe on trees that would overflow the call
// stack of the recursive traversals.
func TreeDepth(exp Expression) int32 {
	st := stack.New()
	st.Push(expAndDepth{exp, 1})

	var maxDepth int32 = 0
	for st.Len() > 0 {
		e := st.Pop().(expAndDepth)
		if e.depth > maxDepth {
			maxDepth = e.depth
		}
		for _, child := range e.exp.GetChildren() {
			if child != nil {
				st.Push(expAndDepth{child, e.depth + 1})
			}
		}
	}
	return maxDepth
}

// Fingerprint returns a stable hash over the canonical render. The
// planner uses it as a cache key for compiled predicates.
func Fingerprint(exp Expression) uint32 {
	return hash.GenHashMurMur([]byte(exp.ToString()))
}
