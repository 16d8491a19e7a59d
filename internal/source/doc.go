// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package source defines the contract used to implement lifetab data sources.
// A source loads a complete raw table in memory; the pipeline never reads
// the underlying storage directly.
package source
