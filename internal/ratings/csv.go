// Movierecs - Item-based Movie Rating Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecs

package ratings

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tomtom215/movierecs/internal/models"
)

// CSVReader reads comma-separated files with a header row.
type CSVReader struct{}

// NewCSVReader creates a CSV reader.
func NewCSVReader() *CSVReader {
	return &CSVReader{}
}

// ReadMovies reads a movie catalog.
func (r *CSVReader) ReadMovies(ctx context.Context, path string) ([]models.Movie, error) {
	var movies []models.Movie
	err := readRows(ctx, path, func(line int, fields []string) error {
		m, err := parseMovie(path, line, fields)
		if err != nil {
			return err
		}
		movies = append(movies, m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return movies, nil
}

// ReadRatings reads a training or test rating file.
func (r *CSVReader) ReadRatings(ctx context.Context, path string) ([]models.Rating, error) {
	var ratings []models.Rating
	err := readRows(ctx, path, func(line int, fields []string) error {
		rec, err := parseRating(path, line, fields)
		if err != nil {
			return err
		}
		ratings = append(ratings, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

// readRows calls fn for every data row of path, skipping the header.
func readRows(ctx context.Context, path string, fn func(line int, fields []string) error) error {
	f, err := os.Open(path) //nolint:gosec // path comes from trusted configuration
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return readError(path, err)
	}

	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return readError(path, err)
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		line, _ := cr.FieldPos(0)
		if err := fn(line, fields); err != nil {
			return err
		}
	}
}

// readError classifies a csv.Reader error: parse errors are malformed
// records, anything else means the stream itself failed.
func readError(path string, err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return fmt.Errorf("%w: %s: %w", ErrMalformedRecord, path, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, path, err)
}
