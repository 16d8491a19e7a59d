// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package transform

import (
	"fmt"
	"slices"

	"github.com/mia-platform/lifetab/internal/table"
)

// Melt unpivots the wide table into one Measurement per (row, year column)
// pair. Every column that is not one of the id columns is treated as a year
// label. The output preserves input order: all year columns of the first row,
// then all year columns of the second row, and so on.
func Melt(t *table.Table) ([]Measurement, error) {
	idIndexes := make(map[string]int, len(IDColumns))
	yearIndexes := make([]int, 0, t.Width()-len(IDColumns))
	for i, column := range t.Columns() {
		if slices.Contains(IDColumns, column) {
			idIndexes[column] = i
			continue
		}

		yearIndexes = append(yearIndexes, i)
	}

	for _, column := range IDColumns {
		if _, ok := idIndexes[column]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, column)
		}
	}

	measurements := make([]Measurement, 0, t.Len()*len(yearIndexes))
	for i := 0; i < t.Len(); i++ {
		row := t.Row(i)
		for _, yearIndex := range yearIndexes {
			measurements = append(measurements, Measurement{
				Unit:     row[idIndexes[UnitColumn]],
				Sex:      row[idIndexes[SexColumn]],
				Age:      row[idIndexes[AgeColumn]],
				Region:   row[idIndexes[RegionColumn]],
				Year:     t.Column(yearIndex),
				RawValue: row[yearIndex],
			})
		}
	}

	return measurements, nil
}
