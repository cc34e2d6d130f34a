// Movierecs - Item-based Movie Rating Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecs

package main

import (
	"context"
	"fmt"
	"io"
	"math"

	"github.com/tomtom215/movierecs/internal/config"
	"github.com/tomtom215/movierecs/internal/logging"
	"github.com/tomtom215/movierecs/internal/metrics"
	"github.com/tomtom215/movierecs/internal/models"
	"github.com/tomtom215/movierecs/internal/ratings"
	"github.com/tomtom215/movierecs/internal/recommend"
	"github.com/tomtom215/movierecs/internal/reportstore"
)

// run loads the inputs, evaluates every test probe and writes the report
// to out. Nothing is written to out unless the whole evaluation succeeds.
func run(ctx context.Context, cfg *config.Config, out io.Writer) error {
	logger := logging.Ctx(ctx)
	logger.Info().
		Str("source", cfg.Data.Source).
		Str("movies", cfg.Data.MoviesPath).
		Str("training", cfg.Data.TrainingPath).
		Str("test", cfg.Data.TestPath).
		Msg("Configuration loaded")

	reader, closeReader, err := openReader(cfg.Data.Source)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeReader(); err != nil {
			logger.Warn().Err(err).Msg("Error closing reader")
		}
	}()

	dataset, err := ratings.Load(ctx, reader,
		ratings.Paths{
			Movies:   cfg.Data.MoviesPath,
			Training: cfg.Data.TrainingPath,
			Test:     cfg.Data.TestPath,
		},
		ratings.Options{
			EnforceScale: cfg.Engine.EnforceScale,
			RatingMin:    cfg.Engine.RatingMin,
			RatingMax:    cfg.Engine.RatingMax,
		},
		*logger,
	)
	if err != nil {
		return err
	}

	store, err := recommend.NewStore(dataset.Movies, dataset.Training)
	if err != nil {
		return fmt.Errorf("build rating store: %w", err)
	}

	engine, err := recommend.NewEngine(store, &recommend.Config{
		FallbackRating:  cfg.Engine.FallbackRating,
		MaxRatingDiff:   cfg.Engine.MaxRatingDiff,
		KeepPredictions: true,
	}, *logger)
	if err != nil {
		return fmt.Errorf("create engine: %w", err)
	}

	report, err := engine.Evaluate(ctx, dataset.Test)
	if err != nil {
		return err
	}

	if cfg.Report.StorePath != "" {
		if err := recordHistory(ctx, cfg.Report.StorePath, report); err != nil {
			return err
		}
	}

	if err := writeReport(out, report, cfg.Report.Format); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if cfg.Metrics.Textfile != "" {
		if err := metrics.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			return err
		}
		logger.Debug().Str("path", cfg.Metrics.Textfile).Msg("Metrics textfile written")
	}

	return nil
}

// openReader returns the reader for source and a function releasing it.
func openReader(source string) (ratings.Reader, func() error, error) {
	switch source {
	case config.SourceDuckDB:
		r, err := ratings.NewDuckDBReader()
		if err != nil {
			return nil, nil, err
		}
		return r, r.Close, nil
	case config.SourceCSV, "":
		return ratings.NewCSVReader(), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown data source %q", source)
	}
}

// recordHistory compares report with the most recent stored run, then
// stores it.
func recordHistory(ctx context.Context, path string, report *models.Report) error {
	logger := logging.Ctx(ctx)

	history, err := reportstore.Open(path)
	if err != nil {
		return err
	}
	defer func() {
		if err := history.Close(); err != nil {
			logger.Warn().Err(err).Msg("Error closing report store")
		}
	}()

	previous, err := history.List(ctx, 1)
	if err != nil {
		return err
	}
	if len(previous) == 1 {
		event := logger.Info().
			Str("previous_run_id", previous[0].RunID).
			Float64("previous_correlation", previous[0].Correlation)
		if delta := report.Correlation - previous[0].Correlation; !math.IsNaN(delta) {
			event = event.Float64("correlation_delta", delta)
		}
		event.Msg("Compared with previous run")
	}

	if err := history.Save(ctx, report); err != nil {
		return err
	}
	logger.Debug().Str("path", path).Msg("Report stored")
	return nil
}
