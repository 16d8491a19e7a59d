// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package table

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrShape reports a table whose rows do not match the header width.
	ErrShape = errors.New("invalid table shape")
)

// Table is an immutable, in-memory tabular value: an ordered header plus
// rows of string cells. Transformations return new tables instead of
// mutating in place.
type Table struct {
	columns []string
	rows    [][]string
}

// New validates that every row has the same width as the header and returns
// the resulting table.
func New(columns []string, rows [][]string) (*Table, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: no columns", ErrShape)
	}

	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrShape, i, len(row), len(columns))
		}
	}

	return &Table{
		columns: slices.Clone(columns),
		rows:    rows,
	}, nil
}

// Columns returns a copy of the ordered column names.
func (t *Table) Columns() []string {
	return slices.Clone(t.columns)
}

// Column returns the name of the column at index i.
func (t *Table) Column(i int) string {
	return t.columns[i]
}

// Width returns the number of columns.
func (t *Table) Width() int {
	return len(t.columns)
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Row returns the row at index i. Callers must not modify the returned slice.
func (t *Table) Row(i int) []string {
	return t.rows[i]
}

// Rows returns all data rows. Callers must not modify the returned slices.
func (t *Table) Rows() [][]string {
	return t.rows
}
