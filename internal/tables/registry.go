package tables

import (
	"slices"
	"time"
)

// Registry maps table names to tables in first-discovery order. It is built
// once by Build or Load and never mutated afterwards, so concurrent readers
// need no locking.
type Registry struct {
	order    []string
	tables   map[string]*Table
	source   string
	sheets   int
	loadedAt time.Time
}

// registryBuilder accumulates tables before the registry is frozen
type registryBuilder struct {
	reg *Registry
}

func newRegistryBuilder(source string) *registryBuilder {
	return &registryBuilder{reg: &Registry{
		tables: make(map[string]*Table),
		source: source,
	}}
}

// put stores t under its name. A colliding name replaces the stored table
// but keeps the position of the first discovery.
func (b *registryBuilder) put(t *Table) {
	if _, exists := b.reg.tables[t.Name]; !exists {
		b.reg.order = append(b.reg.order, t.Name)
	}
	b.reg.tables[t.Name] = t
}

func (b *registryBuilder) build(sheetCount int) *Registry {
	reg := b.reg
	reg.sheets = sheetCount
	reg.loadedAt = time.Now()
	b.reg = nil
	return reg
}

// NewRegistry builds a registry from tables in the given order, applying
// the same collision rule as a workbook load
func NewRegistry(tables ...*Table) *Registry {
	b := newRegistryBuilder("")
	for _, t := range tables {
		b.put(t)
	}
	return b.build(0)
}

// Names returns the table names in registry order
func (r *Registry) Names() []string {
	return slices.Clone(r.order)
}

// Table returns the named table
func (r *Registry) Table(name string) (*Table, bool) {
	t, ok := r.tables[name]
	return t, ok
}

// Len returns the number of tables
func (r *Registry) Len() int {
	return len(r.order)
}

// Source is the workbook path the registry was loaded from
func (r *Registry) Source() string {
	return r.source
}

// SheetCount is the number of sheets that were segmented
func (r *Registry) SheetCount() int {
	return r.sheets
}

// LoadedAt is when the registry was frozen
func (r *Registry) LoadedAt() time.Time {
	return r.loadedAt
}
