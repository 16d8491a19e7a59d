// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package pipeline

import (
	"context"

	"github.com/google/uuid"

	"github.com/mia-platform/lifetab/internal/destination"
	"github.com/mia-platform/lifetab/internal/logger"
	"github.com/mia-platform/lifetab/internal/regions"
	"github.com/mia-platform/lifetab/internal/source"
	"github.com/mia-platform/lifetab/internal/summary"
	"github.com/mia-platform/lifetab/internal/transform"
)

const (
	loggerName = "lifetab:pipeline"
)

// Pipeline cleans one dataset for one region: it loads the raw table from
// the source, runs the transform stages, and persists the result to the
// destination. A pipeline holds no state between runs.
type Pipeline struct {
	source      source.Source
	region      regions.Region
	destination destination.Destination
}

// New assembles a pipeline from a source, a target region and a destination.
func New(source source.Source, region regions.Region, destination destination.Destination) *Pipeline {
	return &Pipeline{
		source:      source,
		region:      region,
		destination: destination,
	}
}

// Run executes the pipeline once. Input, composite key and year label errors
// abort the run; unparseable values only drop their row. An empty result
// after the region filter is not an error, the destination still receives a
// correctly shaped table.
func (p *Pipeline) Run(ctx context.Context) error {
	log := logger.FromContext(ctx).WithName(loggerName)
	runID := uuid.NewString()

	log.Debug("loading raw dataset", "run", runID, "region", p.region.String())
	raw, err := p.source.Load(ctx)
	if err != nil {
		return err
	}

	split, err := transform.SplitKey(raw)
	if err != nil {
		return err
	}

	measurements, err := transform.Melt(split)
	if err != nil {
		return err
	}
	log.Trace("unpivoted dataset", "run", runID, "rows", len(measurements))

	observations, dropped, err := transform.Normalize(measurements)
	if err != nil {
		return err
	}
	log.Debug("cleaned values", "run", runID, "rows", len(observations), "dropped", dropped)

	filtered := transform.FilterRegion(observations, p.region)
	stats := summary.Describe(filtered)
	log.Info("dataset cleaned", "run", runID, "region", p.region.String(),
		"rows", stats.Count, "min", stats.Min, "max", stats.Max, "mean", stats.Mean, "median", stats.Median)

	output, err := transform.ToTable(filtered)
	if err != nil {
		return err
	}

	return p.destination.Write(ctx, output)
}
