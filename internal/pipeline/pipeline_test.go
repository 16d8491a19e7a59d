// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fakedestination "github.com/mia-platform/lifetab/internal/destination/fake"
	"github.com/mia-platform/lifetab/internal/regions"
	fakesource "github.com/mia-platform/lifetab/internal/source/fake"
	"github.com/mia-platform/lifetab/internal/table"
	"github.com/mia-platform/lifetab/internal/transform"
)

func rawTable(t *testing.T) *table.Table {
	t.Helper()

	raw, err := table.New(
		[]string{`unit,sex,age,geo\time`, "2020 ", "2021 "},
		[][]string{
			{"YR,F,Y65,PT", "21.5 e", "21.7"},
			{"YR,F,Y65,FR", "23.4", ":"},
			{"YR,F,Y65,DE", "20.8", "20.9 b"},
		},
	)
	require.NoError(t, err)
	return raw
}

func TestRun(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		region       regions.Region
		expectedRows [][]string
	}{
		"region with cleaned rows": {
			region: regions.PT,
			expectedRows: [][]string{
				{"YR", "F", "Y65", "PT", "2020", "21.5"},
				{"YR", "F", "Y65", "PT", "2021", "21.7"},
			},
		},
		"region with a dropped missing value": {
			region: regions.FR,
			expectedRows: [][]string{
				{"YR", "F", "Y65", "FR", "2020", "23.4"},
			},
		},
		"region without rows yields an empty shaped table": {
			region:       regions.SE,
			expectedRows: [][]string{},
		},
	}

	for name, test := range testCases {
		test := test
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			destination := fakedestination.NewFakeDestination(t)
			pipeline := New(fakesource.NewFakeSource(t, rawTable(t)), test.region, destination)

			err := pipeline.Run(context.Background())
			require.NoError(t, err)

			require.Len(t, destination.WrittenTables, 1)
			written := destination.WrittenTables[0]
			assert.Equal(t, transform.OutputColumns, written.Columns())
			assert.Equal(t, test.expectedRows, written.Rows())
		})
	}
}

func TestRunSourceErrorAborts(t *testing.T) {
	t.Parallel()

	destination := fakedestination.NewFakeDestination(t)
	pipeline := New(fakesource.NewFakeSourceWithError(t, assert.AnError), regions.PT, destination)

	err := pipeline.Run(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
	assert.Empty(t, destination.WrittenTables)
}

func TestRunMalformedKeyAborts(t *testing.T) {
	t.Parallel()

	raw, err := table.New(
		[]string{`unit,sex,age,geo\time`, "2020 "},
		[][]string{{"YR,F,PT", "21.5"}},
	)
	require.NoError(t, err)

	destination := fakedestination.NewFakeDestination(t)
	pipeline := New(fakesource.NewFakeSource(t, raw), regions.PT, destination)

	err = pipeline.Run(context.Background())
	assert.ErrorIs(t, err, transform.ErrCompositeKey)
	assert.Empty(t, destination.WrittenTables)
}

func TestRunInvalidYearLabelAborts(t *testing.T) {
	t.Parallel()

	raw, err := table.New(
		[]string{`unit,sex,age,geo\time`, "not a year"},
		[][]string{{"YR,F,Y65,PT", "21.5"}},
	)
	require.NoError(t, err)

	destination := fakedestination.NewFakeDestination(t)
	pipeline := New(fakesource.NewFakeSource(t, raw), regions.PT, destination)

	err = pipeline.Run(context.Background())
	assert.ErrorIs(t, err, transform.ErrYearLabel)
	assert.Empty(t, destination.WrittenTables)
}

func TestRunDestinationErrorPropagates(t *testing.T) {
	t.Parallel()

	destination := fakedestination.NewFakeDestinationWithError(t, assert.AnError)
	pipeline := New(fakesource.NewFakeSource(t, rawTable(t)), regions.PT, destination)

	err := pipeline.Run(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}

func TestRunIsDeterministic(t *testing.T) {
	t.Parallel()

	destination := fakedestination.NewFakeDestination(t)
	pipeline := New(fakesource.NewFakeSource(t, rawTable(t)), regions.PT, destination)

	require.NoError(t, pipeline.Run(context.Background()))
	require.NoError(t, pipeline.Run(context.Background()))

	require.Len(t, destination.WrittenTables, 2)
	assert.Equal(t, destination.WrittenTables[0], destination.WrittenTables[1])
}
