// Movierecs - Item-based Movie Rating Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecs

package config

import (
	"fmt"

	"github.com/tomtom215/movierecs/internal/validation"
)

// Config holds all application configuration.
type Config struct {
	Data    DataConfig    `koanf:"data"`
	Engine  EngineConfig  `koanf:"engine"`
	Logging LoggingConfig `koanf:"logging"`
	Metrics MetricsConfig `koanf:"metrics"`
	Report  ReportConfig  `koanf:"report"`
}

// Data sources.
const (
	SourceCSV    = "csv"
	SourceDuckDB = "duckdb"
)

// DataConfig locates the three input streams.
type DataConfig struct {
	// Source selects the reader: csv (encoding/csv) or duckdb (read_csv).
	Source string `koanf:"source" validate:"oneof=csv duckdb"`

	MoviesPath   string `koanf:"movies" validate:"required"`
	TrainingPath string `koanf:"training" validate:"required"`
	TestPath     string `koanf:"test" validate:"required"`
}

// EngineConfig tunes the prediction engine.
type EngineConfig struct {
	FallbackRating float64 `koanf:"fallback_rating" validate:"finite"`
	MaxRatingDiff  float64 `koanf:"max_rating_diff" validate:"gt=0,finite"`

	// EnforceScale rejects ratings outside [RatingMin, RatingMax] at load
	// time. Off by default: ratings are trusted as given.
	EnforceScale bool    `koanf:"enforce_scale"`
	RatingMin    float64 `koanf:"rating_min" validate:"finite"`
	RatingMax    float64 `koanf:"rating_max" validate:"finite,gtfield=RatingMin"`
}

// LoggingConfig mirrors logging.Config.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error fatal disabled"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// MetricsConfig controls the Prometheus textfile export.
type MetricsConfig struct {
	// Textfile is written at the end of a run when non-empty.
	Textfile string `koanf:"textfile"`
}

// Report formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ReportConfig controls how results are printed and kept.
type ReportConfig struct {
	Format string `koanf:"format" validate:"oneof=text json"`

	// StorePath is a BadgerDB directory keeping a history of evaluation
	// summaries. Empty disables the history.
	StorePath string `koanf:"store_path"`
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
