// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package pipeline provides the core building blocks to create and manage
// data cleaning pipelines.
// A pipeline is composed of a source, a target region and a destination;
// every run is synchronous and independent from any other.
package pipeline
