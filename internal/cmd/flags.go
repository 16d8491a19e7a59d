// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mia-platform/lifetab/internal/config"
	"github.com/mia-platform/lifetab/internal/destination"
	"github.com/mia-platform/lifetab/internal/destination/csvfile"
	"github.com/mia-platform/lifetab/internal/destination/writer"
	"github.com/mia-platform/lifetab/internal/regions"
)

const (
	inputFlagName  = "input"
	inputFlagShort = "i"
	inputFlagUsage = "Path to the raw tab separated dataset file"

	outputDirFlagName  = "output-dir"
	outputDirFlagShort = "o"
	outputDirFlagUsage = "Directory where the cleaned CSV files are written"

	datasetFileFlagName  = "dataset-file"
	datasetFileFlagShort = "f"
	datasetFileFlagUsage = "Path to a YAML file describing the dataset to clean"

	localOutputFlagName  = "local-output"
	localOutputFlagUsage = "If set, writes the output to stdout instead of a file"
	defaultLocalOutput   = false

	allCountriesFlagName  = "all-countries"
	allCountriesFlagUsage = "If set, runs one pipeline per country code, ignoring REGION"
	defaultAllCountries   = false
)

// cleanFlags holds the flags for the "clean" command.
type cleanFlags struct {
	input        string
	outputDir    string
	datasetFile  string
	localOutput  bool
	allCountries bool
}

// addFlags adds the cli flags to the cobra command.
func (f *cleanFlags) addFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.input, inputFlagName, inputFlagShort, "", inputFlagUsage)
	flags.StringVarP(&f.outputDir, outputDirFlagName, outputDirFlagShort, "", outputDirFlagUsage)
	flags.StringVarP(&f.datasetFile, datasetFileFlagName, datasetFileFlagShort, "", datasetFileFlagUsage)
	flags.BoolVar(&f.localOutput, localOutputFlagName, defaultLocalOutput, localOutputFlagUsage)
	flags.BoolVar(&f.allCountries, allCountriesFlagName, defaultAllCountries, allCountriesFlagUsage)
}

// toOptions converts the clean flags to cleanOptions enriching it with the
// passed arguments and the environment settings.
func (f *cleanFlags) toOptions(cmd *cobra.Command, args []string) (*cleanOptions, error) {
	regionCode := defaultRegionCode
	if len(args) > 0 {
		regionCode = args[0]
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return nil, err
	}

	dataset := config.DefaultDataset(settings)
	if f.datasetFile != "" {
		datasets, err := config.NewDatasetsFromPath(f.datasetFile)
		if err != nil {
			return nil, err
		}
		if len(datasets) > 0 {
			dataset = datasets[0]
			if dataset.OutputDir == "" {
				dataset.OutputDir = settings.OutputDir
			}
		}
	}

	if f.input != "" {
		dataset.Input = f.input
	}
	if f.outputDir != "" {
		dataset.OutputDir = f.outputDir
	}

	destinationFor := func(region regions.Region) destination.Destination {
		return csvfile.NewDestination(dataset.OutputPath(region))
	}
	if f.localOutput {
		destinationFor = func(_ regions.Region) destination.Destination {
			return writer.NewDestination(cmd.OutOrStdout())
		}
	}

	return &cleanOptions{
		regionCode:     regionCode,
		dataset:        dataset,
		destinationFor: destinationFor,
		allCountries:   f.allCountries,
	}, nil
}
