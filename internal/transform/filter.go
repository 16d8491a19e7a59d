// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package transform

import (
	"github.com/mia-platform/lifetab/internal/regions"
)

// FilterRegion keeps only the observations whose region field equals the
// requested code exactly. No case folding or normalization is applied.
// An empty result is valid: the region may simply have no data.
func FilterRegion(observations []Observation, region regions.Region) []Observation {
	filtered := make([]Observation, 0, len(observations))
	for _, observation := range observations {
		if observation.Region == region.String() {
			filtered = append(filtered, observation)
		}
	}

	return filtered
}
