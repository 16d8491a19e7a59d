// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package transform

import "errors"

var (
	// ErrCompositeKey reports a composite key cell that does not split into
	// the expected number of fields.
	ErrCompositeKey = errors.New("malformed composite key")

	// ErrYearLabel reports a year column label that is not an integer after
	// whitespace stripping.
	ErrYearLabel = errors.New("invalid year label")

	// ErrMissingColumn reports a table that lacks one of the id columns.
	ErrMissingColumn = errors.New("missing id column")
)
