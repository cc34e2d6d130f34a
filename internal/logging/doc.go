// Movierecs - Item-based Movie Rating Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecs

// Package logging provides zerolog-based structured logging for movierecs.
//
// A single global logger is configured once from main and used by every
// package. Components derive child loggers with a "component" field.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "console",
//	})
//
//	logging.Info().Str("path", path).Msg("loading movies")
//	logging.Error().Err(err).Msg("evaluation failed")
//
// # Run IDs
//
// Every evaluation run is tagged with a run id so that the log lines, the
// printed report and the stored report history can be correlated:
//
//	ctx = logging.ContextWithNewRunID(ctx)
//	logging.Ctx(ctx).Info().Msg("evaluation started") // adds run_id
//
// # Log Levels
//
//   - trace: one line per prediction
//   - debug: store sizes, config dumps
//   - info: load and evaluation milestones
//   - warn / error: recoverable and fatal problems
package logging
