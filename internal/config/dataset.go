// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mia-platform/lifetab/internal/regions"
)

const (
	// RegionPlaceholder is the token replaced with the lowercased region
	// code when expanding a dataset file pattern.
	RegionPlaceholder = "{region}"

	// DefaultFilePattern is the output file pattern used when a dataset
	// does not declare one.
	DefaultFilePattern = "{region}_life_expectancy.csv"

	// DefaultDatasetName identifies the built-in life expectancy dataset.
	DefaultDatasetName = "eu_life_expectancy"

	nameField        = "name"
	inputField       = "input"
	filePatternField = "filePattern"
)

var (
	// ErrParsing reports failures that occur while decoding dataset files.
	ErrParsing = errors.New("error parsing")
)

// Dataset describes one cleanable dataset: where the raw table lives and how
// the per region output files are named.
type Dataset struct {
	Name        string `yaml:"name"`
	Input       string `yaml:"input"`
	OutputDir   string `yaml:"outputDir,omitempty"`
	FilePattern string `yaml:"filePattern,omitempty"`
}

// DefaultDataset returns the built-in dataset description derived from the
// environment settings.
func DefaultDataset(settings *Settings) *Dataset {
	return &Dataset{
		Name:        DefaultDatasetName,
		Input:       settings.InputPath(),
		OutputDir:   settings.OutputDir,
		FilePattern: DefaultFilePattern,
	}
}

// OutputPath expands the dataset file pattern for region inside the
// configured output directory. The region code is lowercased.
func (d *Dataset) OutputPath(region regions.Region) string {
	pattern := d.FilePattern
	if pattern == "" {
		pattern = DefaultFilePattern
	}

	filename := strings.ReplaceAll(pattern, RegionPlaceholder, strings.ToLower(region.String()))
	return filepath.Join(d.OutputDir, filename)
}

// NewDatasetsFromPath parses the file at path and returns the dataset
// configurations it contains. The file can hold multiple YAML documents.
// It reports failures encountered while reading or decoding the data.
func NewDatasetsFromPath(path string) ([]*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	datasets := make([]*Dataset, 0)

	// Continue parsing until the end of the file.
	for {
		dataset := new(Dataset)
		err := decoder.Decode(&dataset)
		if err != nil {
			// End of file reached, stop parsing.
			if errors.Is(err, io.EOF) {
				break
			}

			return nil, fmt.Errorf("%w %q: %w", ErrParsing, path, err)
		}

		// Skip empty documents.
		if dataset == nil {
			continue
		}

		missingFields := []string{}
		if dataset.Name == "" {
			missingFields = append(missingFields, nameField)
		}
		if dataset.Input == "" {
			missingFields = append(missingFields, inputField)
		}

		if len(missingFields) > 0 {
			return nil, fmt.Errorf("%w %q: missing required fields: %v", ErrParsing, path, strings.Join(missingFields, ", "))
		}

		if dataset.FilePattern != "" && !strings.Contains(dataset.FilePattern, RegionPlaceholder) {
			return nil, fmt.Errorf("%w %q: field %s must contain the %s placeholder", ErrParsing, path, filePatternField, RegionPlaceholder)
		}

		datasets = append(datasets, dataset)
	}

	return datasets, nil
}
