// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package destination defines the primitive used to implement lifetab data
// destinations, the final stage of a pipeline run.
package destination
