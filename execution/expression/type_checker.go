package expression

import (
	"fmt"

	pair "github.com/notEpsilon/go-pair"

	"github.com/ryokasa/MomijiDB/catalog"
	"github.com/ryokasa/MomijiDB/common"
	"github.com/ryokasa/MomijiDB/types"
)

// Diagnostic describes one semantic error found while type-checking an
// expression. The inferred types.ErrType is always produced alongside a
// diagnostic; callers must branch on the ReturnType and treat the
// diagnostics as supporting detail for the final compile error.
type Diagnostic struct {
	At  string // canonical render of the offending expression
	Msg string
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s", d.At, d.Msg)
}

// TypeChecker carries the catalog and the query's FROM-clause alias
// bindings through one type-checking pass and accumulates diagnostics.
// tables holds (table name, alias) pairs in FROM order. A fresh checker
// is built per pass; the expression tree itself is never mutated.
type TypeChecker struct {
	catalog_ *catalog.Catalog
	tables_  []pair.Pair[string, string]
	diags_   []*Diagnostic
	depth_   int32
}

func NewTypeChecker(c *catalog.Catalog, tables []pair.Pair[string, string]) *TypeChecker {
	return &TypeChecker{catalog_: c, tables_: tables}
}

func (tc *TypeChecker) Catalog() *catalog.Catalog {
	return tc.catalog_
}

// ResolveAlias returns the table name bound to alias. The bindings are
// scanned in FROM order and the first match wins, so a duplicated alias
// resolves to its first occurrence.
func (tc *TypeChecker) ResolveAlias(alias string) (string, bool) {
	for _, p := range tc.tables_ {
		if p.Second == alias {
			return p.First, true
		}
	}
	return "", false
}

func (tc *TypeChecker) Diagnostics() []*Diagnostic {
	return tc.diags_
}

func (tc *TypeChecker) diag(at Expression, format string, a ...interface{}) types.ReturnType {
	d := &Diagnostic{At: at.ToString(), Msg: fmt.Sprintf(format, a...)}
	tc.diags_ = append(tc.diags_, d)
	common.MjPrintf(common.ERROR, "ERROR: %s\n", d.Msg)
	return types.ErrType
}

// enter is called by composite nodes before they descend into their
// children. It rejects trees deeper than common.MaxExpressionDepth so a
// generated or adversarial query cannot exhaust the call stack. On
// failure the depth counter is left unchanged and no matching leave is
// expected.
func (tc *TypeChecker) enter(exp Expression) bool {
	if tc.depth_ >= common.MaxExpressionDepth {
		tc.diag(exp, "Expression tree exceeds maximum depth of %d", common.MaxExpressionDepth)
		return false
	}
	tc.depth_++
	return true
}

func (tc *TypeChecker) leave() {
	tc.depth_--
}

// TypeCheckExpression runs one full type-checking pass over exp and
// returns the inferred type together with all collected diagnostics.
func TypeCheckExpression(exp Expression, c *catalog.Catalog, tables []pair.Pair[string, string]) (types.ReturnType, []*Diagnostic) {
	tc := NewTypeChecker(c, tables)
	retType := exp.TypeCheck(tc)
	return retType, tc.Diagnostics()
}
