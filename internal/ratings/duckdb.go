// Movierecs - Item-based Movie Rating Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecs

package ratings

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	// DuckDB driver - read_csv scans the input files in an in-memory database
	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/tomtom215/movierecs/internal/models"
)

// DuckDBReader reads the input files through DuckDB's CSV scanner.
type DuckDBReader struct {
	db *sql.DB
}

// NewDuckDBReader opens an in-memory DuckDB database.
func NewDuckDBReader() (*DuckDBReader, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close() //nolint:errcheck // best-effort cleanup on error path
		return nil, fmt.Errorf("ping duckdb: %w", err)
	}
	return &DuckDBReader{db: db}, nil
}

// Close closes the database.
func (r *DuckDBReader) Close() error {
	return r.db.Close()
}

// ReadMovies reads a movie catalog.
func (r *DuckDBReader) ReadMovies(ctx context.Context, path string) ([]models.Movie, error) {
	var movies []models.Movie
	err := r.scan(ctx, path, func(line int, fields []string) error {
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
func (r *DuckDBReader) ReadRatings(ctx context.Context, path string) ([]models.Rating, error) {
	var ratings []models.Rating
	err := r.scan(ctx, path, func(line int, fields []string) error {
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

// scan reads every column as text so that number parsing and error
// reporting are shared with CSVReader. Line numbers assume one row per line.
func (r *DuckDBReader) scan(ctx context.Context, path string, fn func(line int, fields []string) error) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}

	query := fmt.Sprintf(
		"SELECT * FROM read_csv(%s, header = true, all_varchar = true, quote = '\"')",
		quoteLiteral(path),
	)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, path, err)
	}
	defer rows.Close() //nolint:errcheck // rows.Err is checked below

	cols, err := rows.Columns()
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, path, err)
	}

	raw := make([]sql.NullString, len(cols))
	dest := make([]interface{}, len(cols))
	for i := range raw {
		dest[i] = &raw[i]
	}

	line := 1
	for rows.Next() {
		line++
		if err := rows.Scan(dest...); err != nil {
			return fmt.Errorf("%w: %s line %d: %w", ErrMalformedRecord, path, line, err)
		}

		fields := make([]string, len(raw))
		for i, v := range raw {
			fields[i] = v.String
		}
		if err := fn(line, fields); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, path, err)
	}
	return nil
}

// quoteLiteral renders s as a SQL string literal.
func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
