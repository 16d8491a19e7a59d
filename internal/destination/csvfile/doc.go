// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package csvfile implements a destination that persists the cleaned table
// to a comma separated file with a header row and no index column. Parent
// directories are created when missing; an existing file is overwritten.
package csvfile
