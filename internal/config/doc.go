// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package config loads the application configuration: path defaults from
// environment variables and optional dataset descriptions from YAML files.
package config
