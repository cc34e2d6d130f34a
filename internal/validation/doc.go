// Movierecs - Item-based Movie Rating Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecs

// Package validation provides struct validation using go-playground/validator v10.
//
// It keeps a thread-safe singleton validator with one custom tag:
//
//   - finite: a float that is neither NaN nor infinite
//
// ValidateStruct is used for configuration; ValidateRating checks a single
// rating against the configured scale when scale enforcement is enabled.
//
//	type EngineConfig struct {
//	    FallbackRating float64 `validate:"finite"`
//	    MaxRatingDiff  float64 `validate:"gt=0,finite"`
//	}
//
//	if err := validation.ValidateStruct(&cfg); err != nil {
//	    return fmt.Errorf("invalid config: %w", err)
//	}
package validation
