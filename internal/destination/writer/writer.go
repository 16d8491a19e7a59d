// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package writer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"sync"

	"github.com/mia-platform/lifetab/internal/destination"
	"github.com/mia-platform/lifetab/internal/table"
)

var _ destination.Destination = &writerDestination{}

type writerDestination struct {
	writer io.Writer

	lock sync.Mutex
}

// NewDestination returns a Destination serializing tables as CSV on w.
func NewDestination(w io.Writer) destination.Destination {
	return &writerDestination{
		writer: w,
	}
}

func (d *writerDestination) Write(_ context.Context, t *table.Table) error {
	d.lock.Lock()
	defer d.lock.Unlock()

	writer := csv.NewWriter(d.writer)
	if err := writer.Write(t.Columns()); err != nil {
		return fmt.Errorf("writing dataset: %w", err)
	}
	if err := writer.WriteAll(t.Rows()); err != nil {
		return fmt.Errorf("writing dataset: %w", err)
	}

	return nil
}
