// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package fake

import (
	"context"
	"testing"

	"github.com/mia-platform/lifetab/internal/source"
	"github.com/mia-platform/lifetab/internal/table"
)

var _ source.Source = &FakeSource{}

// FakeSource returns a preconfigured table or error for tests.
type FakeSource struct {
	tb testing.TB

	Table *table.Table
	Err   error

	// LoadCalls counts how many times Load was invoked.
	LoadCalls int
}

// NewFakeSource returns a source producing t on every Load call.
func NewFakeSource(tb testing.TB, t *table.Table) *FakeSource {
	tb.Helper()
	return &FakeSource{tb: tb, Table: t}
}

// NewFakeSourceWithError returns a source failing every Load call with err.
func NewFakeSourceWithError(tb testing.TB, err error) *FakeSource {
	tb.Helper()
	return &FakeSource{tb: tb, Err: err}
}

func (f *FakeSource) Load(ctx context.Context) (*table.Table, error) {
	f.tb.Helper()
	f.LoadCalls++

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if f.Err != nil {
		return nil, f.Err
	}

	return f.Table, nil
}
