// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package summary computes descriptive statistics over cleaned observations.
// The numbers are informational, logged by the pipeline after cleaning, and
// never influence the written output.
package summary
