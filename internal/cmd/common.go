// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mia-platform/lifetab/internal/regions"
)

const (
	// defaultRegionCode is the region cleaned when no argument is passed.
	defaultRegionCode = "PT"
)

var (
	errInvalidRegion = errors.New("invalid region code provided")
)

// handleError will do custom print error handling based on the type of error received.
// it will return nil if the command must return 0 exit code, otherwise it will return
// the original error.
func handleError(cmd *cobra.Command, err error) error {
	switch {
	case errors.Is(err, errInvalidRegion):
		cmd.PrintErrln(err)
		_ = cmd.Usage() // do not check error as we cannot do much about it
		return err
	default:
		cmd.PrintErrln(err)
		return err
	}
}

// regionCompletion provides shell completion for the REGION argument.
func regionCompletion(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var comps []string
	if len(args) == 0 {
		for _, region := range regions.All() {
			if strings.HasPrefix(region.String(), toComplete) {
				comps = append(comps, cobra.CompletionWithDesc(region.String(), region.Name()))
			}
		}
	}

	return comps, cobra.ShellCompDirectiveNoFileComp
}
