package column

import (
	"github.com/ryokasa/MomijiDB/types"
)

type Column struct {
	columnName string
	columnType types.TypeID
	hasIndex   bool // whether the column has index data
}

func NewColumn(name string, columnType types.TypeID, hasIndex bool) *Column {
	return &Column{name, columnType, hasIndex}
}

func (c *Column) GetColumnName() string {
	return c.columnName
}

func (c *Column) GetType() types.TypeID {
	return c.columnType
}

func (c *Column) HasIndex() bool {
	return c.hasIndex
}

func (c *Column) SetHasIndex(hasIndex bool) {
	c.hasIndex = hasIndex
}
