// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package writer implements a destination that serializes the cleaned table
// to the given io.Writer instance.
// It is primarily useful for debugging purposes, or for tweaking and adjusting
// the cleaning output before writing it to a real destination.
package writer
