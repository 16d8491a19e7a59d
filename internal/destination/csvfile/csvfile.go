// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mia-platform/lifetab/internal/destination"
	"github.com/mia-platform/lifetab/internal/table"
)

// Make sure that csvDestination is a Destination.
var _ destination.Destination = &csvDestination{}

// csvDestination writes the table as a CSV file, creating the parent
// directories when needed and overwriting any existing file.
type csvDestination struct {
	path string
}

// NewDestination returns a Destination writing to the CSV file at path.
func NewDestination(path string) destination.Destination {
	return &csvDestination{
		path: path,
	}
}

func (d *csvDestination) Write(_ context.Context, t *table.Table) error {
	if dir := filepath.Dir(d.path); dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return fmt.Errorf("writing dataset %q: %w", d.path, err)
		}
	}

	file, err := os.Create(d.path)
	if err != nil {
		return fmt.Errorf("writing dataset %q: %w", d.path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(t.Columns()); err != nil {
		return fmt.Errorf("writing dataset %q: %w", d.path, err)
	}
	if err := writer.WriteAll(t.Rows()); err != nil {
		return fmt.Errorf("writing dataset %q: %w", d.path, err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("writing dataset %q: %w", d.path, err)
	}

	return nil
}
