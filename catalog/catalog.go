package catalog

import (
	"github.com/sasha-s/go-deadlock"

	"github.com/ryokasa/MomijiDB/storage/table/schema"
)

// Catalog is a non-persistent catalog that is designed for the compiler
// frontend and the executor to share. It handles table creation and table
// lookup. Lookups may run concurrently with each other (the type checker
// only reads), so the maps are guarded with a reader/writer latch.
type Catalog struct {
	tables       map[uint32]*TableMetadata
	names        map[string]uint32
	nextTableId  uint32
	catalogLatch deadlock.RWMutex
}

func NewCatalog() *Catalog {
	return &Catalog{tables: make(map[uint32]*TableMetadata), names: make(map[string]uint32), nextTableId: 0}
}

func (c *Catalog) GetTableByName(table string) *TableMetadata {
	c.catalogLatch.RLock()
	defer c.catalogLatch.RUnlock()
	if oid, ok := c.names[table]; ok {
		return c.tables[oid]
	}
	return nil
}

func (c *Catalog) GetTableByOID(oid uint32) *TableMetadata {
	c.catalogLatch.RLock()
	defer c.catalogLatch.RUnlock()
	if table, ok := c.tables[oid]; ok {
		return table
	}
	return nil
}

func (c *Catalog) GetAllTables() []*TableMetadata {
	c.catalogLatch.RLock()
	defer c.catalogLatch.RUnlock()
	ret := make([]*TableMetadata, 0, len(c.tables))
	for _, tm := range c.tables {
		ret = append(ret, tm)
	}
	return ret
}

// CreateTable creates a new table and returns its metadata
func (c *Catalog) CreateTable(name string, schema_ *schema.Schema) *TableMetadata {
	c.catalogLatch.Lock()
	defer c.catalogLatch.Unlock()

	oid := c.nextTableId
	c.nextTableId++
	c.names[name] = oid

	tableMetadata := &TableMetadata{schema_, name, oid}
	c.tables[oid] = tableMetadata

	return tableMetadata
}
