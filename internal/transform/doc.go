// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package transform implements the reshaping of the wide life expectancy
// table into long format as a sequence of pure functions: split the
// composite key, unpivot the year columns, clean year and value cells, and
// filter by region. Each stage takes a value and returns a new one, so the
// row count laws can be checked at every step.
package transform
