// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package destination

import (
	"context"

	"github.com/mia-platform/lifetab/internal/table"
)

// Destination persists a cleaned table, header included. An empty table is
// a valid input and must still produce a correctly shaped output.
type Destination interface {
	Write(ctx context.Context, t *table.Table) error
}
