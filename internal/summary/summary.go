// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package summary

import (
	"github.com/montanaflynn/stats"

	"github.com/mia-platform/lifetab/internal/transform"
)

// Summary holds the descriptive statistics of a set of cleaned values.
type Summary struct {
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	Median float64
}

// Describe computes the summary of the observation values. The empty set
// yields a zero valued summary.
func Describe(observations []transform.Observation) Summary {
	if len(observations) == 0 {
		return Summary{}
	}

	values := make([]float64, 0, len(observations))
	for _, observation := range observations {
		values = append(values, observation.Value)
	}

	// the stats functions only error on empty input, which is handled above
	minimum, _ := stats.Min(values)
	maximum, _ := stats.Max(values)
	mean, _ := stats.Mean(values)
	median, _ := stats.Median(values)

	return Summary{
		Count:  len(values),
		Min:    minimum,
		Max:    maximum,
		Mean:   mean,
		Median: median,
	}
}
