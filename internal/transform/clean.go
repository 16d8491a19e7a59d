// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package transform

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

const (
	// missingSentinel marks a missing value in the raw Eurostat data.
	missingSentinel = ":"
)

// flagSuffix matches the trailing data quality annotation of a value cell:
// one or more lowercase letters, with optional preceding whitespace
// (e.g. "21.8 bep" for break in series, estimated, provisional).
var flagSuffix = regexp.MustCompile(`\s*[a-z]+$`)

// Normalize turns raw measurements into typed observations. Year labels are
// stripped and parsed as integers; a non numeric label is fatal because it
// means the input table has an unexpected structure. Value cells are cleaned
// and parsed as floats; cells that stay unparseable are dropped, not errored.
// The returned count reports how many measurements were dropped.
func Normalize(measurements []Measurement) ([]Observation, int, error) {
	observations := make([]Observation, 0, len(measurements))
	dropped := 0
	for _, measurement := range measurements {
		year, err := ParseYear(measurement.Year)
		if err != nil {
			return nil, 0, err
		}

		value, ok := CleanValue(measurement.RawValue)
		if !ok {
			dropped++
			continue
		}

		observations = append(observations, Observation{
			Unit:   measurement.Unit,
			Sex:    measurement.Sex,
			Age:    measurement.Age,
			Region: measurement.Region,
			Year:   year,
			Value:  value,
		})
	}

	return observations, dropped, nil
}

// ParseYear strips surrounding whitespace from a year column label and
// parses it as an integer.
func ParseYear(label string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(label))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrYearLabel, label)
	}

	return year, nil
}

// CleanValue sanitizes a raw value cell and parses it as a float. The second
// return value is false when the cell is missing: empty, the ":" sentinel,
// or not a number once the trailing flag annotation is removed.
func CleanValue(raw string) (float64, bool) {
	cell := strings.TrimSpace(raw)
	if cell == "" || cell == missingSentinel {
		return 0, false
	}

	cell = flagSuffix.ReplaceAllString(cell, "")

	value, err := strconv.ParseFloat(cell, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}

	return value, true
}
