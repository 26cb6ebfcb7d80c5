// Package inventory builds the product table the dashboard serves. The
// table is loaded once at startup, validated row by row, and never
// mutated afterwards, so concurrent handler reads need no locking.
package inventory

import (
	"app/models"
)

// Table is the immutable in-memory product table. Construct it once in
// main and pass it into every handler; there is no package-global copy.
type Table struct {
	products []models.Product
}

// NewTable copies the given rows into a fresh table. The caller's slice
// can be discarded or reused afterwards.
func NewTable(products []models.Product) *Table {
	rows := make([]models.Product, len(products))
	copy(rows, products)
	return &Table{products: rows}
}

// Products returns the table rows in document order. Callers must treat
// the returned slice as read-only.
func (t *Table) Products() []models.Product {
	return t.products
}

// Len reports the number of rows.
func (t *Table) Len() int {
	return len(t.products)
}
