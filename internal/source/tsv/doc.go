// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package tsv implements a source that reads a UTF-8, tab separated file
// with a header row, the distribution format of the raw Eurostat tables.
// Column names are kept verbatim, surrounding whitespace included.
package tsv
