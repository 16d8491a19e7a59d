// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package transform

const (
	// UnitColumn is the name assigned to the first composite key field.
	UnitColumn = "unit"
	// SexColumn is the name assigned to the second composite key field.
	SexColumn = "sex"
	// AgeColumn is the name assigned to the third composite key field.
	AgeColumn = "age"
	// RegionColumn is the name assigned to the fourth composite key field.
	RegionColumn = "region"
	// YearColumn holds the year label after the unpivot step.
	YearColumn = "year"
	// ValueColumn holds the measured value after the unpivot step.
	ValueColumn = "value"

	// compositeKeyParts is the exact number of comma separated fields
	// expected in the composite key column.
	compositeKeyParts = 4
)

// IDColumns lists, in order, the columns produced by splitting the
// composite key. Every other column is treated as a year label by Melt.
var IDColumns = []string{UnitColumn, SexColumn, AgeColumn, RegionColumn}

// OutputColumns is the fixed column order of the cleaned table.
var OutputColumns = []string{UnitColumn, SexColumn, AgeColumn, RegionColumn, YearColumn, ValueColumn}

// Measurement is one cell of the wide table after the unpivot step, still
// carrying the raw year label and value text.
type Measurement struct {
	Unit     string
	Sex      string
	Age      string
	Region   string
	Year     string
	RawValue string
}

// Observation is one fully cleaned row: the year is parsed and the value is
// guaranteed to be a valid number.
type Observation struct {
	Unit   string
	Sex    string
	Age    string
	Region string
	Year   int
	Value  float64
}
