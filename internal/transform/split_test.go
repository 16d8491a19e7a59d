// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mia-platform/lifetab/internal/table"
)

func TestSplitKey(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		columns         []string
		rows            [][]string
		expectedColumns []string
		expectedRows    [][]string
		expectedError   error
	}{
		"composite key is split into four columns": {
			columns: []string{`unit,sex,age,geo\time`, "2020 ", "2021 "},
			rows: [][]string{
				{"YR,F,Y65,PT", "21.5 e", "21.7"},
				{"YR,M,Y65,FR", "19.3", ": "},
			},
			expectedColumns: []string{"unit", "sex", "age", "region", "2020 ", "2021 "},
			expectedRows: [][]string{
				{"YR", "F", "Y65", "PT", "21.5 e", "21.7"},
				{"YR", "M", "Y65", "FR", "19.3", ": "},
			},
		},
		"header only table keeps shape": {
			columns:         []string{`unit,sex,age,geo\time`, "2020 "},
			expectedColumns: []string{"unit", "sex", "age", "region", "2020 "},
			expectedRows:    [][]string{},
		},
		"too few key fields fail fast": {
			columns: []string{`unit,sex,age,geo\time`, "2020 "},
			rows: [][]string{
				{"YR,F,Y65,PT", "21.5"},
				{"YR,F,PT", "21.6"},
			},
			expectedError: ErrCompositeKey,
		},
		"too many key fields fail fast": {
			columns: []string{`unit,sex,age,geo\time`, "2020 "},
			rows: [][]string{
				{"YR,F,Y65,PT,extra", "21.5"},
			},
			expectedError: ErrCompositeKey,
		},
	}

	for name, test := range testCases {
		test := test
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			input, err := table.New(test.columns, test.rows)
			require.NoError(t, err)

			output, err := SplitKey(input)
			if test.expectedError != nil {
				assert.ErrorIs(t, err, test.expectedError)
				assert.Nil(t, output)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.expectedColumns, output.Columns())
			assert.Equal(t, test.expectedRows, output.Rows())
		})
	}
}

func TestSplitKeyDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	input, err := table.New([]string{`unit,sex,age,geo\time`, "2020 "}, [][]string{{"YR,F,Y65,PT", "21.5"}})
	require.NoError(t, err)

	_, err = SplitKey(input)
	require.NoError(t, err)

	assert.Equal(t, []string{`unit,sex,age,geo\time`, "2020 "}, input.Columns())
	assert.Equal(t, []string{"YR,F,Y65,PT", "21.5"}, input.Row(0))
}
