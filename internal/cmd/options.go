// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/mia-platform/lifetab/internal/config"
	"github.com/mia-platform/lifetab/internal/destination"
	"github.com/mia-platform/lifetab/internal/pipeline"
	"github.com/mia-platform/lifetab/internal/regions"
	"github.com/mia-platform/lifetab/internal/source/tsv"
)

// cleanOptions holds the options set for the current clean invocation.
type cleanOptions struct {
	regionCode     string
	region         regions.Region
	dataset        *config.Dataset
	destinationFor func(regions.Region) destination.Destination
	allCountries   bool

	lock sync.Mutex
}

// validate validates the clean options and returns an error if something is wrong.
func (o *cleanOptions) validate() error {
	if o.allCountries {
		return nil
	}

	region, err := regions.Parse(o.regionCode)
	if err != nil {
		return fmt.Errorf("%w: %s", errInvalidRegion, o.regionCode)
	}

	o.region = region
	return nil
}

// execute runs the cleaning pipelines configured by the options.
func (o *cleanOptions) execute(ctx context.Context) error {
	if !o.lock.TryLock() {
		return nil
	}
	defer o.lock.Unlock()

	if o.allCountries {
		return o.executeAllCountries(ctx)
	}

	return o.run(ctx, o.region)
}

// executeAllCountries runs one independent pipeline per country code. Runs
// share no state, so they can proceed concurrently; the first error cancels
// the remaining ones.
func (o *cleanOptions) executeAllCountries(ctx context.Context) error {
	group, groupCtx := errgroup.WithContext(ctx)
	for _, region := range regions.Countries() {
		region := region
		group.Go(func() error {
			return o.run(groupCtx, region)
		})
	}

	return group.Wait()
}

// run executes a single pipeline for region.
func (o *cleanOptions) run(ctx context.Context, region regions.Region) error {
	pipeline := pipeline.New(tsv.NewSource(o.dataset.Input), region, o.destinationFor(region))
	return pipeline.Run(ctx)
}
