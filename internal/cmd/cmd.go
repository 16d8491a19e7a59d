// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/mia-platform/lifetab/internal/regions"
)

const (
	cleanCmdUsage = "clean [REGION]"
	cleanCmdShort = "clean the life expectancy dataset for a region"
	cleanCmdLong  = `Clean the life expectancy dataset for a region.
	The raw tab separated table is loaded in memory, the composite key column
	is split, the year columns are unpivoted to long format, year and value
	cells are sanitized, and the rows for the requested region are written to
	a CSV file named <region>_life_expectancy.csv in the output directory.

	REGION defaults to PT; run "lifetab regions" for the list of valid codes.`

	cleanCmdExample = `# Clean the dataset for Portugal
	lifetab clean

	# Clean the dataset for France reading a custom input file
	lifetab clean FR --input raw/eu_life_expectancy_raw.tsv

	# Inspect the output for Sweden without writing a file
	lifetab clean SE --local-output

	# Produce one file per country
	lifetab clean --all-countries`

	regionsCmdUsage = "regions"
	regionsCmdShort = "list the valid region codes"
	regionsCmdLong  = `List the valid region codes with their names.
	The dataset uses country codes plus aggregate codes for supranational and
	historical groupings; aggregates can be excluded with --countries.`

	regionsCmdExample = `# List every region code
	lifetab regions

	# List only country codes
	lifetab regions --countries`

	countriesFlagName  = "countries"
	countriesFlagUsage = "list only country codes, excluding aggregate regions"
)

// CleanCmd returns the Cobra command that runs the cleaning pipeline.
func CleanCmd() *cobra.Command {
	flags := &cleanFlags{}
	cmd := &cobra.Command{
		Use:     cleanCmdUsage,
		Short:   heredoc.Doc(cleanCmdShort),
		Long:    heredoc.Doc(cleanCmdLong),
		Example: heredoc.Doc(cleanCmdExample),

		SilenceErrors: true,
		SilenceUsage:  true,

		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: regionCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.toOptions(cmd, args)
			if err != nil {
				return handleError(cmd, err)
			}

			if err := opts.validate(); err != nil {
				return handleError(cmd, err)
			}

			if err := opts.execute(cmd.Context()); err != nil {
				return handleError(cmd, err)
			}

			return nil
		},
	}

	flags.addFlags(cmd)
	return cmd
}

// RegionsCmd returns the Cobra command that lists the valid region codes.
func RegionsCmd() *cobra.Command {
	countriesOnly := false
	cmd := &cobra.Command{
		Use:     regionsCmdUsage,
		Short:   heredoc.Doc(regionsCmdShort),
		Long:    heredoc.Doc(regionsCmdLong),
		Example: heredoc.Doc(regionsCmdExample),

		SilenceErrors: true,
		SilenceUsage:  true,

		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		Run: func(cmd *cobra.Command, _ []string) {
			list := regions.All()
			if countriesOnly {
				list = regions.Countries()
			}

			for _, region := range list {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", region, region.Name())
			}
		},
	}

	cmd.Flags().BoolVar(&countriesOnly, countriesFlagName, false, countriesFlagUsage)
	return cmd
}
