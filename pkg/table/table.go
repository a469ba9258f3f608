// Package table provides a small columnar numeric table and a reshape
// operation that redistributes its elements under new row/column dimensions.
package table

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates a reshape target whose element count
	// differs from the source element count.
	ErrDimensionMismatch = errors.New("table: reshape must preserve the total element count")
	// ErrRaggedColumn indicates a column whose length differs from the rows
	// already in the table.
	ErrRaggedColumn = errors.New("table: all columns must have the same length")
)

// Table is an ordered collection of equally long named float64 columns.
// The zero value is an empty table ready for use.
type Table struct {
	names []string
	cols  [][]float64
}

// New returns an empty table.
func New() *Table {
	return &Table{}
}

// AddColumn appends a named column. Every column after the first must match
// the established row count; otherwise ErrRaggedColumn is returned and the
// table is left unchanged. The values slice is copied.
func (t *Table) AddColumn(name string, values []float64) error {
	if len(t.cols) > 0 && len(values) != t.NumRows() {
		return fmt.Errorf("%w: column %q has %d rows, table has %d",
			ErrRaggedColumn, name, len(values), t.NumRows())
	}
	col := make([]float64, len(values))
	copy(col, values)
	t.names = append(t.names, name)
	t.cols = append(t.cols, col)
	return nil
}

// NumCols returns the number of columns.
func (t *Table) NumCols() int { return len(t.cols) }

// NumRows returns the number of rows, zero for an empty table.
func (t *Table) NumRows() int {
	if len(t.cols) == 0 {
		return 0
	}
	return len(t.cols[0])
}

// NumElements returns rows times columns.
func (t *Table) NumElements() int { return t.NumRows() * t.NumCols() }

// Name returns the name of column i.
func (t *Table) Name(i int) string { return t.names[i] }

// Column returns the backing slice of column i. The slice is owned by the
// table; callers must copy it before mutating.
func (t *Table) Column(i int) []float64 { return t.cols[i] }
