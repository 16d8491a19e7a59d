// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package tsv

import (
	"context"
	"encoding/csv"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	testCases := map[string]struct {
		path            string
		expectedColumns []string
		expectedRows    [][]string
		expectedError   error
	}{
		"valid tsv file keeps header whitespace": {
			path:            filepath.Join("testdata", "eu_life_expectancy_raw.tsv"),
			expectedColumns: []string{`unit,sex,age,geo\time`, "2020 ", "2021 "},
			expectedRows: [][]string{
				{"YR,F,Y65,PT", "21.5 e", "21.7"},
				{"YR,M,Y65,PT", "18.1", ": "},
				{"YR,F,Y65,FR", "23.4", "23.5 b"},
			},
		},
		"missing file return error": {
			path:          filepath.Join(tempDir, "missing.tsv"),
			expectedError: syscall.ENOENT,
		},
		"ragged row return error": {
			path:          filepath.Join("testdata", "ragged.tsv"),
			expectedError: csv.ErrFieldCount,
		},
	}

	for name, test := range testCases {
		test := test
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			loaded, err := NewSource(test.path).Load(context.Background())
			if test.expectedError != nil {
				assert.ErrorIs(t, err, test.expectedError)
				assert.Nil(t, loaded)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.expectedColumns, loaded.Columns())
			assert.Equal(t, test.expectedRows, loaded.Rows())
		})
	}
}
