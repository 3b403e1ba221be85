package expression

import (
	"math"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/ryokasa/MomijiDB/types"
)

/**
 * ColumnValue represents an attribute reference such as o.amount after
 * FROM-clause aliasing: it holds the binding alias and the column name.
 */
type ColumnValue struct {
	*AbstractExpression
	tableName  string // the FROM-clause alias, not the catalog name
	columnName string
}

func NewColumnValue(tableName string, columnName string) Expression {
	return &ColumnValue{&AbstractExpression{}, tableName, columnName}
}

func (c *ColumnValue) GetTableName() string {
	return c.tableName
}

func (c *ColumnValue) GetColumnName() string {
	return c.columnName
}

// TypeCheck resolves the alias against the query's bindings, the table
// against the catalog and the column against the table's schema, then
// maps the column's TypeID onto the ReturnType domain. This is the only
// node kind that touches the catalog; every other rule is structural.
func (c *ColumnValue) TypeCheck(tc *TypeChecker) types.ReturnType {
	actualTableName, found := tc.ResolveAlias(c.tableName)
	if !found {
		return tc.diag(c, "Table alias '%s' not found in query", c.tableName)
	}

	tableMetadata := tc.Catalog().GetTableByName(actualTableName)
	if tableMetadata == nil {
		return tc.diag(c, "Table '%s' not found in catalog", actualTableName)
	}

	schema_ := tableMetadata.Schema()
	colIndex := schema_.GetColIndex(c.columnName)
	if colIndex == math.MaxUint32 {
		return tc.diag(c, "Attribute '%s' not found in table '%s'", c.columnName, actualTableName)
	}

	colType := schema_.GetColumn(colIndex).GetType()
	if colType.IsBoolean() {
		return types.BoolType
	}
	switch colType.String() {
	case "int":
		return types.IntType
	case "double":
		return types.DoubleType
	case "string":
		return types.StringType
	}

	return tc.diag(c, "Attribute '%s' has unrecognized type '%s'", c.columnName, colType.String())
}

func (c *ColumnValue) ToString() string {
	return "[" + c.tableName + "_" + c.columnName + "]"
}

func (c *ColumnValue) GetReferencedAttributes(atts mapset.Set[AttributeRef]) {
	atts.Add(AttributeRef{First: c.tableName, Second: c.columnName})
}

func (c *ColumnValue) GetType() ExpressionType {
	return EXPRESSION_TYPE_COLUMN_VALUE
}
