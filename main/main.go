package main

import (
	"fmt"

	pair "github.com/notEpsilon/go-pair"

	"github.com/ryokasa/MomijiDB/catalog"
	"github.com/ryokasa/MomijiDB/execution/expression"
	"github.com/ryokasa/MomijiDB/storage/table/column"
	"github.com/ryokasa/MomijiDB/storage/table/schema"
	"github.com/ryokasa/MomijiDB/types"
)

// current MomijiDB can be used as an embedded library form only.
// so, this entry point is used for running snippet code against the
// compiler frontend for debugging now...
func main() {
	c := catalog.NewCatalog()
	c.CreateTable("Orders", schema.NewSchema([]*column.Column{
		column.NewColumn("amount", types.Float, false),
		column.NewColumn("customer", types.Varchar, false),
	}))

	// sum(o.amount + 1)
	exp := expression.NewAggregation(
		expression.NewArithmetic(
			expression.NewColumnValue("o", "amount"),
			expression.NewConstantValue(types.NewInteger(1)),
			expression.Plus),
		expression.SUM)

	tables := []pair.Pair[string, string]{{First: "Orders", Second: "o"}}
	retType, diags := expression.TypeCheckExpression(exp, c, tables)

	fmt.Printf("%s : %s (aggregate=%v, fingerprint=%08x)\n",
		exp.ToString(), retType, exp.IsAggregate(), expression.Fingerprint(exp))
	for _, d := range diags {
		fmt.Println(d.Error())
	}
}
