// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mia-platform/lifetab/internal/regions"
)

func TestFilterRegion(t *testing.T) {
	t.Parallel()

	observations := []Observation{
		{Unit: "YR", Sex: "F", Age: "Y65", Region: "PT", Year: 2020, Value: 21.5},
		{Unit: "YR", Sex: "F", Age: "Y65", Region: "FR", Year: 2020, Value: 23.4},
		{Unit: "YR", Sex: "F", Age: "Y65", Region: "DE", Year: 2020, Value: 20.8},
	}

	testCases := map[string]struct {
		region   regions.Region
		expected []Observation
	}{
		"single match": {
			region: regions.FR,
			expected: []Observation{
				{Unit: "YR", Sex: "F", Age: "Y65", Region: "FR", Year: 2020, Value: 23.4},
			},
		},
		"no match yields empty, not nil": {
			region:   regions.SE,
			expected: []Observation{},
		},
	}

	for name, test := range testCases {
		test := test
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, test.expected, FilterRegion(observations, test.region))
		})
	}
}

func TestFilterRegionIsCaseSensitive(t *testing.T) {
	t.Parallel()

	observations := []Observation{
		{Unit: "YR", Sex: "F", Age: "Y65", Region: "pt", Year: 2020, Value: 21.5},
	}

	assert.Empty(t, FilterRegion(observations, regions.PT))
}
