// Movierecs - Item-based Movie Rating Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecs

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the config files searched, in order.
var DefaultConfigPaths = []string{
	"movierecs.yaml",
	"movierecs.yml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns the built-in defaults. The input paths match the
// file names the data set ships with.
func defaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			Source:       SourceCSV,
			MoviesPath:   "movies.csv",
			TrainingPath: "training_ratings.csv",
			TestPath:     "test_ratings.csv",
		},
		Engine: EngineConfig{
			FallbackRating: 2.5,
			MaxRatingDiff:  4.5,
			EnforceScale:   false,
			RatingMin:      0.5,
			RatingMax:      5.0,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			Caller: false,
		},
		Report: ReportConfig{
			Format: FormatText,
		},
	}
}

// Load builds the configuration from defaults, the config file, the
// environment and finally overrides (koanf key -> value), then validates it.
func Load(overrides map[string]interface{}) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	for key, val := range overrides {
		if err := k.Set(key, val); err != nil {
			return nil, fmt.Errorf("failed to set %s: %w", key, err)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// findConfigFile returns the first existing config file, or "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// envTransformFunc maps environment variable names to koanf keys. Unmapped
// variables return "" and are skipped.
func envTransformFunc(key string) string {
	key = strings.ToLower(key)

	envMappings := map[string]string{
		"data_source":           "data.source",
		"movies_path":           "data.movies",
		"training_ratings_path": "data.training",
		"test_ratings_path":     "data.test",

		"fallback_rating":      "engine.fallback_rating",
		"max_rating_diff":      "engine.max_rating_diff",
		"enforce_rating_scale": "engine.enforce_scale",
		"rating_min":           "engine.rating_min",
		"rating_max":           "engine.rating_max",

		"log_level":  "logging.level",
		"log_format": "logging.format",
		"log_caller": "logging.caller",

		"metrics_textfile": "metrics.textfile",

		"report_format":     "report.format",
		"report_store_path": "report.store_path",
	}

	if mapped, ok := envMappings[key]; ok {
		return mapped
	}
	return ""
}
