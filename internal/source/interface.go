// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package source

import (
	"context"

	"github.com/mia-platform/lifetab/internal/table"
)

// Source defines the interface for loading a raw dataset table into memory.
type Source interface {
	// Load reads the complete raw table. Read and shape errors are
	// propagated to the caller, never swallowed.
	Load(ctx context.Context) (*table.Table, error)
}
