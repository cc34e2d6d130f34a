// Movierecs - Item-based Movie Rating Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecs

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/movierecs/internal/config"
	"github.com/tomtom215/movierecs/internal/logging"
)

const usage = "usage: predict [movies.csv training_ratings.csv test_ratings.csv]"

func main() {
	overrides, err := argOverrides(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load(overrides)
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    os.Stderr,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	ctx = logging.ContextWithNewRunID(ctx)

	if err := run(ctx, cfg, os.Stdout); err != nil {
		logging.Ctx(ctx).Fatal().Err(err).Msg("Evaluation failed")
	}
}

// argOverrides maps the optional positional input paths to config keys.
func argOverrides(args []string) (map[string]interface{}, error) {
	switch len(args) {
	case 0:
		return nil, nil
	case 3:
		return map[string]interface{}{
			"data.movies":   args[0],
			"data.training": args[1],
			"data.test":     args[2],
		}, nil
	default:
		return nil, fmt.Errorf("expected 0 or 3 arguments, got %d", len(args))
	}
}
