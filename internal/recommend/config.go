// Movierecs - Item-based Movie Rating Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecs

package recommend

import (
	"fmt"
	"math"

	"github.com/goccy/go-json"
)

const (
	// DefaultFallbackRating is the midpoint of the 0.5-5.0 rating scale.
	DefaultFallbackRating = 2.5

	// DefaultMaxRatingDiff is the largest absolute difference between two
	// ratings on the 0.5-5.0 scale.
	DefaultMaxRatingDiff = 4.5
)

// Config contains the tunables of the prediction engine.
type Config struct {
	// FallbackRating is returned when no similarity evidence exists.
	// Default: 2.5.
	FallbackRating float64 `json:"fallback_rating"`

	// MaxRatingDiff normalizes the mean absolute co-rating difference.
	// Default: 4.5.
	MaxRatingDiff float64 `json:"max_rating_diff"`

	// KeepPredictions controls whether Evaluate attaches every prediction
	// to the report.
	// Default: true.
	KeepPredictions bool `json:"keep_predictions"`
}

// DefaultConfig returns the configuration matching the half-star rating scale.
func DefaultConfig() *Config {
	return &Config{
		FallbackRating:  DefaultFallbackRating,
		MaxRatingDiff:   DefaultMaxRatingDiff,
		KeepPredictions: true,
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if math.IsNaN(c.FallbackRating) || math.IsInf(c.FallbackRating, 0) {
		return fmt.Errorf("fallback_rating must be finite, got %f", c.FallbackRating)
	}
	if !(c.MaxRatingDiff > 0) || math.IsInf(c.MaxRatingDiff, 0) {
		return fmt.Errorf("max_rating_diff must be positive and finite, got %f", c.MaxRatingDiff)
	}
	return nil
}

// String returns a JSON representation of the config.
func (c *Config) String() string {
	b, err := json.Marshal(c)
	if err != nil {
		return fmt.Sprintf("Config{error: %v}", err)
	}
	return string(b)
}
