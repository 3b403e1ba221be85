package catalog

import (
	"github.com/ryokasa/MomijiDB/storage/table/schema"
)

type TableMetadata struct {
	schema *schema.Schema
	name   string
	oid    uint32
}

func (t *TableMetadata) Schema() *schema.Schema {
	return t.schema
}

func (t *TableMetadata) GetTableName() string {
	return t.name
}

func (t *TableMetadata) OID() uint32 {
	return t.oid
}
