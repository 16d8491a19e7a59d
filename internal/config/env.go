// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
)

var (
	// ErrEnvVariablesNotValid reports invalid or unparseable environment variables.
	ErrEnvVariablesNotValid = errors.New("environment variables not valid")
)

// Settings holds the environment driven defaults for input and output paths.
type Settings struct {
	DataDir   string `env:"LIFETAB_DATA_DIR" envDefault:"data"`
	InputFile string `env:"LIFETAB_INPUT_FILE" envDefault:"eu_life_expectancy_raw.tsv"`
	OutputDir string `env:"LIFETAB_OUTPUT_DIR"`
}

// LoadSettings reads the settings from the environment and validates them.
// When LIFETAB_OUTPUT_DIR is unset the data directory is used for output too.
func LoadSettings() (*Settings, error) {
	var settings Settings
	if err := env.Parse(&settings); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrEnvVariablesNotValid, err.Error())
	}

	if err := validateSettings(&settings); err != nil {
		return nil, err
	}

	if settings.OutputDir == "" {
		settings.OutputDir = settings.DataDir
	}

	return &settings, nil
}

// InputPath returns the default path of the raw dataset file.
func (s *Settings) InputPath() string {
	return filepath.Join(s.DataDir, s.InputFile)
}

func validateSettings(settings *Settings) error {
	settingsErrors := make([]string, 0)

	if settings.DataDir == "" {
		settingsErrors = append(settingsErrors, "LIFETAB_DATA_DIR cannot be empty")
	}
	if settings.InputFile == "" {
		settingsErrors = append(settingsErrors, "LIFETAB_INPUT_FILE cannot be empty")
	}
	if settings.InputFile != filepath.Base(settings.InputFile) {
		settingsErrors = append(settingsErrors, "LIFETAB_INPUT_FILE must be a file name, not a path")
	}

	if len(settingsErrors) > 0 {
		return fmt.Errorf("%w: %s", ErrEnvVariablesNotValid, strings.Join(settingsErrors, ", "))
	}
	return nil
}
