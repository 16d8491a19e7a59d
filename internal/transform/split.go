// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package transform

import (
	"fmt"
	"strings"

	"github.com/mia-platform/lifetab/internal/table"
)

// SplitKey splits the first column of t on commas into the four id columns
// and drops the original composite column. The remaining columns are kept
// unchanged, whitespace and all.
//
// A row whose key does not have exactly four parts aborts the whole
// transformation: partial or null key fields would silently corrupt every
// derived row.
func SplitKey(t *table.Table) (*table.Table, error) {
	if t.Width() < 1 {
		return nil, fmt.Errorf("%w: empty header", table.ErrShape)
	}

	columns := make([]string, 0, t.Width()-1+compositeKeyParts)
	columns = append(columns, IDColumns...)
	columns = append(columns, t.Columns()[1:]...)

	rows := make([][]string, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		row := t.Row(i)
		parts := strings.Split(row[0], ",")
		if len(parts) != compositeKeyParts {
			return nil, fmt.Errorf("%w: row %d: %q splits into %d fields, expected %d",
				ErrCompositeKey, i, row[0], len(parts), compositeKeyParts)
		}

		newRow := make([]string, 0, len(columns))
		newRow = append(newRow, parts...)
		newRow = append(newRow, row[1:]...)
		rows = append(rows, newRow)
	}

	return table.New(columns, rows)
}
