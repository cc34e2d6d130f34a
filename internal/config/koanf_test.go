// Movierecs - Item-based Movie Rating Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecs

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Data.Source != SourceCSV {
		t.Errorf("Data.Source = %q, want csv", cfg.Data.Source)
	}
	if cfg.Data.MoviesPath != "movies.csv" {
		t.Errorf("Data.MoviesPath = %q, want movies.csv", cfg.Data.MoviesPath)
	}
	if cfg.Engine.FallbackRating != 2.5 {
		t.Errorf("Engine.FallbackRating = %v, want 2.5", cfg.Engine.FallbackRating)
	}
	if cfg.Engine.MaxRatingDiff != 4.5 {
		t.Errorf("Engine.MaxRatingDiff = %v, want 4.5", cfg.Engine.MaxRatingDiff)
	}
	if cfg.Engine.EnforceScale {
		t.Error("Engine.EnforceScale should be false by default")
	}
	if cfg.Report.Format != FormatText {
		t.Errorf("Report.Format = %q, want text", cfg.Report.Format)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Data.TrainingPath != "training_ratings.csv" {
		t.Errorf("Data.TrainingPath = %q, want training_ratings.csv", cfg.Data.TrainingPath)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "movierecs.yaml")
	content := `
data:
  source: duckdb
  movies: /srv/movies.csv
engine:
  fallback_rating: 3.0
  enforce_scale: true
report:
  format: json
  store_path: /srv/reports
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Data.Source != SourceDuckDB {
		t.Errorf("Data.Source = %q, want duckdb", cfg.Data.Source)
	}
	if cfg.Data.MoviesPath != "/srv/movies.csv" {
		t.Errorf("Data.MoviesPath = %q", cfg.Data.MoviesPath)
	}
	// untouched keys keep their defaults
	if cfg.Data.TestPath != "test_ratings.csv" {
		t.Errorf("Data.TestPath = %q, want default", cfg.Data.TestPath)
	}
	if cfg.Engine.FallbackRating != 3.0 {
		t.Errorf("Engine.FallbackRating = %v, want 3.0", cfg.Engine.FallbackRating)
	}
	if !cfg.Engine.EnforceScale {
		t.Error("Engine.EnforceScale should be true")
	}
	if cfg.Report.Format != FormatJSON || cfg.Report.StorePath != "/srv/reports" {
		t.Errorf("Report = %+v", cfg.Report)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "movierecs.yaml")
	if err := os.WriteFile(path, []byte("logging:\n  level: debug\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("MAX_RATING_DIFF", "9")
	t.Setenv("ENFORCE_RATING_SCALE", "true")
	t.Setenv("UNRELATED_VARIABLE", "ignored")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn", cfg.Logging.Level)
	}
	if cfg.Engine.MaxRatingDiff != 9 {
		t.Errorf("Engine.MaxRatingDiff = %v, want 9", cfg.Engine.MaxRatingDiff)
	}
	if !cfg.Engine.EnforceScale {
		t.Error("Engine.EnforceScale should be true from env")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("MOVIES_PATH", "/env/movies.csv")

	cfg, err := Load(map[string]interface{}{
		"data.movies":   "a.csv",
		"data.training": "b.csv",
		"data.test":     "c.csv",
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Data.MoviesPath != "a.csv" || cfg.Data.TrainingPath != "b.csv" || cfg.Data.TestPath != "c.csv" {
		t.Errorf("Data = %+v", cfg.Data)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]interface{}
		wantField string
	}{
		{
			name:      "unknown source",
			overrides: map[string]interface{}{"data.source": "parquet"},
			wantField: "Source",
		},
		{
			name:      "empty movies path",
			overrides: map[string]interface{}{"data.movies": ""},
			wantField: "MoviesPath",
		},
		{
			name:      "non-positive max diff",
			overrides: map[string]interface{}{"engine.max_rating_diff": 0.0},
			wantField: "MaxRatingDiff",
		},
		{
			name:      "inverted scale",
			overrides: map[string]interface{}{"engine.rating_min": 5.0, "engine.rating_max": 1.0},
			wantField: "RatingMax",
		},
		{
			name:      "bad report format",
			overrides: map[string]interface{}{"report.format": "xml"},
			wantField: "Format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))

			_, err := Load(tt.overrides)
			if err == nil {
				t.Fatal("Load() expected error")
			}
			if !strings.Contains(err.Error(), tt.wantField) {
				t.Errorf("error %q should mention %s", err.Error(), tt.wantField)
			}
		})
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"MOVIES_PATH", "data.movies"},
		{"TRAINING_RATINGS_PATH", "data.training"},
		{"TEST_RATINGS_PATH", "data.test"},
		{"FALLBACK_RATING", "engine.fallback_rating"},
		{"LOG_FORMAT", "logging.format"},
		{"REPORT_STORE_PATH", "report.store_path"},
		{"HOME", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := envTransformFunc(tt.input); got != tt.want {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
