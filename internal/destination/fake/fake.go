// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package fake

import (
	"context"
	"testing"

	"github.com/mia-platform/lifetab/internal/destination"
	"github.com/mia-platform/lifetab/internal/table"
)

var _ destination.Destination = &FakeDestination{}

// FakeDestination records every written table for tests.
type FakeDestination struct {
	tb testing.TB

	WrittenTables []*table.Table
	Err           error
}

// NewFakeDestination returns a destination recording every Write call.
func NewFakeDestination(tb testing.TB) *FakeDestination {
	tb.Helper()
	return &FakeDestination{tb: tb}
}

// NewFakeDestinationWithError returns a destination failing every Write call with err.
func NewFakeDestinationWithError(tb testing.TB, err error) *FakeDestination {
	tb.Helper()
	return &FakeDestination{tb: tb, Err: err}
}

func (f *FakeDestination) Write(_ context.Context, t *table.Table) error {
	f.tb.Helper()

	if f.Err != nil {
		return f.Err
	}

	f.WrittenTables = append(f.WrittenTables, t)
	return nil
}
