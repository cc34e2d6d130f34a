// Movierecs - Item-based Movie Rating Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecs

package ratings

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/movierecs/internal/metrics"
	"github.com/tomtom215/movierecs/internal/models"
	"github.com/tomtom215/movierecs/internal/validation"
)

var (
	// ErrSourceUnavailable is returned when an input stream cannot be opened or read.
	ErrSourceUnavailable = errors.New("input source unavailable")

	// ErrMalformedRecord is returned for a row with missing fields or unparsable values.
	ErrMalformedRecord = errors.New("malformed record")
)

// Stream kinds, also used as metric labels.
const (
	KindMovies   = "movies"
	KindTraining = "training"
	KindTest     = "test"
)

// Reader reads the movie catalog and rating streams from a path.
type Reader interface {
	ReadMovies(ctx context.Context, path string) ([]models.Movie, error)
	ReadRatings(ctx context.Context, path string) ([]models.Rating, error)
}

// Paths locates the three input streams.
type Paths struct {
	Movies   string
	Training string
	Test     string
}

// Options controls record validation.
type Options struct {
	// EnforceScale rejects ratings outside [RatingMin, RatingMax].
	EnforceScale bool
	RatingMin    float64
	RatingMax    float64
}

// Dataset is the fully loaded input.
type Dataset struct {
	Movies   []models.Movie
	Training []models.Rating
	Test     []models.Rating
}

// Load reads all three streams with r. Nothing is returned unless every
// stream loads successfully.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func Load(ctx context.Context, r Reader, paths Paths, opts Options, logger zerolog.Logger) (*Dataset, error) {
	logger = logger.With().Str("component", "ratings").Logger()
	start := time.Now()

	movies, err := r.ReadMovies(ctx, paths.Movies)
	metrics.RecordLoad(KindMovies, len(movies), err)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", KindMovies, err)
	}
	logger.Debug().Str("path", paths.Movies).Int("records", len(movies)).Msg("loaded movie catalog")

	training, err := loadRatings(ctx, r, KindTraining, paths.Training, opts)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("path", paths.Training).Int("records", len(training)).Msg("loaded training ratings")

	test, err := loadRatings(ctx, r, KindTest, paths.Test, opts)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("path", paths.Test).Int("records", len(test)).Msg("loaded test ratings")

	logger.Info().
		Int("movies", len(movies)).
		Int("training", len(training)).
		Int("test", len(test)).
		Dur("duration", time.Since(start)).
		Msg("input loaded")

	return &Dataset{Movies: movies, Training: training, Test: test}, nil
}

func loadRatings(ctx context.Context, r Reader, kind, path string, opts Options) ([]models.Rating, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("load %s: %w", kind, err)
	}

	records, err := r.ReadRatings(ctx, path)
	if err == nil && opts.EnforceScale {
		err = checkScale(path, records, opts)
	}
	metrics.RecordLoad(kind, len(records), err)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", kind, err)
	}
	return records, nil
}

func checkScale(path string, records []models.Rating, opts Options) error {
	for i, rec := range records {
		if err := validation.ValidateRating(rec.Rating, opts.RatingMin, opts.RatingMax); err != nil {
			// +2: one for the header, one for 1-based lines
			return fmt.Errorf("%w: %s line %d: %w", ErrMalformedRecord, path, i+2, err)
		}
	}
	return nil
}

// parseMovie converts a raw row into a Movie. line is 1-based.
func parseMovie(path string, line int, fields []string) (models.Movie, error) {
	if len(fields) < 2 {
		return models.Movie{}, fmt.Errorf("%w: %s line %d: want at least 2 fields, got %d", ErrMalformedRecord, path, line, len(fields))
	}
	id, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return models.Movie{}, fmt.Errorf("%w: %s line %d: movie id %q", ErrMalformedRecord, path, line, fields[0])
	}
	return models.Movie{ID: id, Title: fields[1]}, nil
}

// parseRating converts a raw row into a Rating. line is 1-based.
func parseRating(path string, line int, fields []string) (models.Rating, error) {
	if len(fields) < 3 {
		return models.Rating{}, fmt.Errorf("%w: %s line %d: want at least 3 fields, got %d", ErrMalformedRecord, path, line, len(fields))
	}
	userID, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return models.Rating{}, fmt.Errorf("%w: %s line %d: user id %q", ErrMalformedRecord, path, line, fields[0])
	}
	movieID, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return models.Rating{}, fmt.Errorf("%w: %s line %d: movie id %q", ErrMalformedRecord, path, line, fields[1])
	}
	rating, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
	if err != nil {
		return models.Rating{}, fmt.Errorf("%w: %s line %d: rating %q", ErrMalformedRecord, path, line, fields[2])
	}
	return models.Rating{UserID: userID, MovieID: movieID, Rating: rating}, nil
}
