// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package regions enumerates the closed set of geographic codes found in the
// life expectancy dataset. The set is partitioned into country codes and
// aggregate codes for supranational or historical groupings; only the former
// are returned by Countries.
package regions
