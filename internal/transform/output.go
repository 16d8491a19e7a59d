// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package transform

import (
	"strconv"

	"github.com/mia-platform/lifetab/internal/table"
)

// ToTable serializes observations into the final six column table, keeping
// the observation order. Values are formatted with the minimal number of
// digits needed to round trip.
func ToTable(observations []Observation) (*table.Table, error) {
	rows := make([][]string, 0, len(observations))
	for _, observation := range observations {
		rows = append(rows, []string{
			observation.Unit,
			observation.Sex,
			observation.Age,
			observation.Region,
			strconv.Itoa(observation.Year),
			strconv.FormatFloat(observation.Value, 'f', -1, 64),
		})
	}

	return table.New(OutputColumns, rows)
}
