// Package datagen turns raw CSV files into generated Go source: one record
// struct and one fixed-length array of records per dataset.
//
// # Pipeline
//
// For each dataset the generator opens the source with csvread, keeps every
// record that converts cleanly, and renders the retained rows in file order.
// Rows that fail to convert are dropped with a warning (or fail the dataset
// in strict mode). A source failure aborts that dataset only: no artifact is
// written for it and the remaining datasets still run.
//
// # Determinism
//
// Render output depends only on the schema and the retained values. Floats
// use shortest round-trip formatting and nothing in the artifact is derived
// from time or map order, so regenerating unchanged input leaves the file
// untouched (see Check).
package datagen

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/teranos/datasets/errors"
	"github.com/teranos/datasets/logger"
)

// Generator runs datasets through Collect, Render and the artifact writer.
type Generator struct {
	// Jobs bounds how many datasets are generated at once. Values below 2
	// generate one dataset after another.
	Jobs int

	// Strict makes dropped rows fatal for every dataset.
	Strict bool
}

// Result describes one generated dataset.
type Result struct {
	Dataset  string
	Output   string
	Retained int
	Dropped  int
	Bytes    int
	Changed  bool // false when the artifact already had this content
	Duration time.Duration
	Err      error
}

// Run generates every dataset and returns one Result per dataset in input
// order. Failures are collected, not short-circuited: the returned error
// combines every failed dataset (see errors.Errors).
func (g *Generator) Run(ctx context.Context, datasets []Dataset) ([]Result, error) {
	results := make([]Result, len(datasets))

	if g.Jobs < 2 || len(datasets) < 2 {
		var errs error
		for i, ds := range datasets {
			if err := ctx.Err(); err != nil {
				return results[:i], errors.Append(errs, err)
			}
			results[i] = g.Generate(ds)
			errs = errors.Append(errs, results[i].Err)
		}
		return results, errs
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.Jobs)
	for i, ds := range datasets {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = Result{Dataset: ds.Name, Output: ds.Output, Err: err}
				return nil
			}
			results[i] = g.Generate(ds)
			// Dataset failures never cancel their siblings.
			return nil
		})
	}
	_ = eg.Wait()

	// Report failures in input order regardless of completion order.
	var errs error
	for _, r := range results {
		errs = errors.Append(errs, r.Err)
	}
	return results, errs
}

// Generate runs a single dataset end to end and records the outcome.
func (g *Generator) Generate(ds Dataset) Result {
	start := time.Now()
	if g.Strict {
		ds.Strict = true
	}
	res := Result{Dataset: ds.Name, Output: ds.Output}
	log := logger.DatasetLogger("datagen", ds.Name)

	if logger.ShouldOutput(logger.Verbosity, logger.OutputProgress) {
		log.Infow("generating", logger.FieldFile, ds.label(), logger.FieldOutput, ds.Output)
	}

	t, err := Collect(ds)
	if err != nil {
		res.Err = err
		return res
	}
	res.Retained = len(t.Rows)
	res.Dropped = len(t.Dropped)

	src, err := Render(t)
	if err != nil {
		res.Err = err
		return res
	}
	res.Bytes = len(src)

	res.Changed, err = writeArtifact(ds.Output, src)
	if err != nil {
		res.Err = errors.Wrapf(err, "dataset %s", ds.Name)
		return res
	}
	res.Duration = time.Since(start)

	if logger.ShouldOutput(logger.Verbosity, logger.OutputTiming) {
		log.Debugw("generated",
			logger.FieldRetained, res.Retained,
			logger.FieldDropped, res.Dropped,
			logger.FieldBytes, res.Bytes,
			logger.FieldDurationMS, res.Duration.Milliseconds())
	}
	return res
}
