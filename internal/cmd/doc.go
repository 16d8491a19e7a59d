// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package cmd contains the CLI commands exposed by lifetab and the glue that
// turns flags and arguments into configured pipeline runs.
package cmd
