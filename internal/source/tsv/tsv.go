// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package tsv

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/mia-platform/lifetab/internal/source"
	"github.com/mia-platform/lifetab/internal/table"
)

// Make sure that tsvSource is a Source.
var _ source.Source = &tsvSource{}

// tsvSource loads a tab separated file with a header row.
type tsvSource struct {
	path string
}

// NewSource returns a Source reading the tab separated file at path.
func NewSource(path string) source.Source {
	return &tsvSource{
		path: path,
	}
}

func (s *tsvSource) Load(_ context.Context) (*table.Table, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset %q: %w", s.path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = '\t'
	// Eurostat cells are never quoted, but can contain stray double quotes.
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading dataset %q: %w", s.path, err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("reading dataset %q: %w: no header row", s.path, table.ErrShape)
	}

	loaded, err := table.New(records[0], records[1:])
	if err != nil {
		return nil, fmt.Errorf("reading dataset %q: %w", s.path, err)
	}

	return loaded, nil
}
