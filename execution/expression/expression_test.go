package expression

import (
	"testing"

	pair "github.com/notEpsilon/go-pair"

	"github.com/ryokasa/MomijiDB/catalog"
	"github.com/ryokasa/MomijiDB/storage/table/column"
	"github.com/ryokasa/MomijiDB/storage/table/schema"
	testingpkg "github.com/ryokasa/MomijiDB/testing"
	"github.com/ryokasa/MomijiDB/types"
)

func ordersCatalog() *catalog.Catalog {
	c := catalog.NewCatalog()
	c.CreateTable("Orders", schema.NewSchema([]*column.Column{
		column.NewColumn("amount", types.Float, false),
		column.NewColumn("quantity", types.Integer, false),
		column.NewColumn("customer", types.Varchar, false),
		column.NewColumn("shipped", types.Boolean, false),
		column.NewColumn("created_at", types.Timestamp, false),
	}))
	c.CreateTable("Customers", schema.NewSchema([]*column.Column{
		column.NewColumn("name", types.Varchar, false),
		column.NewColumn("age", types.Integer, false),
	}))
	return c
}

func ordersBindings() []pair.Pair[string, string] {
	return []pair.Pair[string, string]{
		{First: "Orders", Second: "o"},
		{First: "Customers", Second: "c"},
	}
}

func TestLiteralRender(t *testing.T) {
	testingpkg.SimpleAssert(t, NewConstantValue(types.NewBoolean(true)).ToString() == "bool[true]")
	testingpkg.SimpleAssert(t, NewConstantValue(types.NewBoolean(false)).ToString() == "bool[false]")
	testingpkg.SimpleAssert(t, NewConstantValue(types.NewInteger(42)).ToString() == "int[42]")
	testingpkg.SimpleAssert(t, NewConstantValue(types.NewFloat(1.5)).ToString() == "double[1.5]")
	testingpkg.SimpleAssert(t, NewConstantValue(types.NewVarchar("abc")).ToString() == "string[abc]")
}

func TestStringLiteralStripsDelimiters(t *testing.T) {
	exp := NewStringConstantFromLiteral("'daylight'")
	testingpkg.SimpleAssert(t, exp.ToString() == "string[daylight]")

	// only one delimiter character on each side is removed
	exp = NewStringConstantFromLiteral("''quoted''")
	testingpkg.SimpleAssert(t, exp.ToString() == "string['quoted']")
}

// A literal's TypeCheck is total and must not touch the catalog or the
// alias bindings, so a checker with neither suffices.
func TestLiteralTypeCheckIsTotal(t *testing.T) {
	tc := NewTypeChecker(nil, nil)
	testingpkg.SimpleAssert(t, NewConstantValue(types.NewBoolean(true)).TypeCheck(tc) == types.BoolType)
	testingpkg.SimpleAssert(t, NewConstantValue(types.NewInteger(7)).TypeCheck(tc) == types.IntType)
	testingpkg.SimpleAssert(t, NewConstantValue(types.NewFloat(3.25)).TypeCheck(tc) == types.DoubleType)
	testingpkg.SimpleAssert(t, NewConstantValue(types.NewVarchar("xyz")).TypeCheck(tc) == types.StringType)
	testingpkg.SimpleAssert(t, len(tc.Diagnostics()) == 0)
}

func TestCanonicalRender(t *testing.T) {
	amount := NewColumnValue("o", "amount")
	one := NewConstantValue(types.NewInteger(1))

	testcases := []struct {
		exp      Expression
		rendered string
	}{
		{amount, "[o_amount]"},
		{NewArithmetic(amount, one, Plus), "+ ([o_amount], int[1])"},
		{NewArithmetic(amount, one, Minus), "- ([o_amount], int[1])"},
		{NewArithmetic(amount, one, Times), "* ([o_amount], int[1])"},
		{NewArithmetic(amount, one, Divide), "/ ([o_amount], int[1])"},
		{NewComparison(amount, one, GreaterThan), "> ([o_amount], int[1])"},
		{NewComparison(amount, one, LessThan), "< ([o_amount], int[1])"},
		{NewComparison(amount, one, Equal), "== ([o_amount], int[1])"},
		{NewComparison(amount, one, NotEqual), "!= ([o_amount], int[1])"},
		{NewLogicalOp(NewColumnValue("o", "shipped"), NewConstantValue(types.NewBoolean(false)), OR), "|| ([o_shipped], bool[false])"},
		{NewLogicalOp(NewColumnValue("o", "shipped"), NewConstantValue(types.NewBoolean(false)), AND), "&& ([o_shipped], bool[false])"},
		{NewNotOp(NewColumnValue("o", "shipped")), "!([o_shipped])"},
		{NewAggregation(amount, SUM), "sum([o_amount])"},
		{NewAggregation(amount, AVG), "avg([o_amount])"},
	}

	for _, tt := range testcases {
		if got := tt.exp.ToString(); got != tt.rendered {
			t.Errorf("ToString() = %q, want %q", got, tt.rendered)
		}
	}
}

// sum(o.amount + 1) over Orders aliased as o: the scenario exercises
// rendering, inference and aggregate classification together.
func TestSumOfArithmeticOverAttribute(t *testing.T) {
	exp := NewAggregation(
		NewArithmetic(
			NewColumnValue("o", "amount"),
			NewConstantValue(types.NewInteger(1)),
			Plus),
		SUM)

	retType, diags := TypeCheckExpression(exp, ordersCatalog(), ordersBindings())
	testingpkg.Assert(t, retType == types.DoubleType, "sum over double attribute should stay double")
	testingpkg.SimpleAssert(t, len(diags) == 0)
	testingpkg.SimpleAssert(t, exp.IsAggregate())
	testingpkg.SimpleAssert(t, exp.ToString() == "sum(+ ([o_amount], int[1]))")
}

func TestArithmeticPropagatesAggregate(t *testing.T) {
	agg := NewAggregation(NewColumnValue("o", "quantity"), SUM)
	one := NewConstantValue(types.NewInteger(1))

	testingpkg.SimpleAssert(t, NewArithmetic(agg, one, Plus).IsAggregate())
	testingpkg.SimpleAssert(t, NewArithmetic(one, agg, Minus).IsAggregate())
	testingpkg.SimpleAssert(t, NewArithmetic(agg, agg, Times).IsAggregate())
	testingpkg.SimpleAssert(t, NewArithmetic(one, agg, Divide).IsAggregate())
	testingpkg.SimpleAssert(t, !NewArithmetic(one, one, Plus).IsAggregate())
}

func TestReferencedAttributes(t *testing.T) {
	exp := NewAggregation(
		NewArithmetic(
			NewColumnValue("o", "amount"),
			NewArithmetic(
				NewColumnValue("c", "age"),
				NewColumnValue("o", "amount"), // duplicates collapse
				Times),
			Plus),
		SUM)

	atts := ReferencedAttributes(exp)
	testingpkg.Assert(t, atts.Cardinality() == 2, "duplicate references must collapse")
	testingpkg.SimpleAssert(t, atts.Contains(AttributeRef{First: "o", Second: "amount"}))
	testingpkg.SimpleAssert(t, atts.Contains(AttributeRef{First: "c", Second: "age"}))

	sorted := SortedReferencedAttributes(exp)
	testingpkg.SimpleAssert(t, len(sorted) == 2)
	testingpkg.SimpleAssert(t, sorted[0].First == "c" && sorted[0].Second == "age")
	testingpkg.SimpleAssert(t, sorted[1].First == "o" && sorted[1].Second == "amount")
}

// Comparison and logical nodes deliberately keep the default traversal
// behavior: neither aggregates nor attribute references below them are
// surfaced. The planner depends on this, so the tests pin it down.
func TestComparisonDoesNotPropagateChildren(t *testing.T) {
	cmp := NewComparison(
		NewAggregation(NewColumnValue("o", "amount"), SUM),
		NewConstantValue(types.NewInteger(5)),
		GreaterThan)

	testingpkg.SimpleAssert(t, !cmp.IsAggregate())
	testingpkg.SimpleAssert(t, ReferencedAttributes(cmp).Cardinality() == 0)

	not := NewNotOp(NewComparison(NewColumnValue("o", "amount"), NewConstantValue(types.NewInteger(5)), LessThan))
	testingpkg.SimpleAssert(t, !not.IsAggregate())
	testingpkg.SimpleAssert(t, ReferencedAttributes(not).Cardinality() == 0)
}

func TestRenderDisambiguatesStructure(t *testing.T) {
	one := NewConstantValue(types.NewInteger(1))
	two := NewConstantValue(types.NewInteger(2))
	three := NewConstantValue(types.NewInteger(3))

	// 1 + (2 * 3) vs (1 + 2) * 3
	left := NewArithmetic(one, NewArithmetic(two, three, Times), Plus)
	right := NewArithmetic(NewArithmetic(one, two, Plus), three, Times)
	testingpkg.SimpleAssert(t, left.ToString() != right.ToString())
}
