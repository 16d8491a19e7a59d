// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package table provides the tabular value passed between pipeline stages.
// A table is a header plus rows of string cells; typed interpretation of the
// cells is left to the transform package.
package table
