// Movierecs - Item-based Movie Rating Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecs

package ratings

import (
	"context"
	"errors"
	"testing"

	"github.com/tomtom215/movierecs/internal/models"
)

func newTestDuckDBReader(t *testing.T) *DuckDBReader {
	t.Helper()
	r, err := NewDuckDBReader()
	if err != nil {
		t.Skipf("duckdb unavailable: %v", err)
	}
	t.Cleanup(func() { r.Close() }) //nolint:errcheck // test cleanup
	return r
}

func TestDuckDBReader_MatchesCSVReader(t *testing.T) {
	paths := fixturePaths(t)
	ctx := context.Background()
	duck := newTestDuckDBReader(t)

	gotMovies, err := duck.ReadMovies(ctx, paths.Movies)
	if err != nil {
		t.Fatalf("ReadMovies() error = %v", err)
	}
	wantMovies, err := NewCSVReader().ReadMovies(ctx, paths.Movies)
	if err != nil {
		t.Fatal(err)
	}
	if len(gotMovies) != len(wantMovies) {
		t.Fatalf("got %d movies, want %d", len(gotMovies), len(wantMovies))
	}
	for i := range wantMovies {
		if gotMovies[i] != wantMovies[i] {
			t.Errorf("movies[%d] = %+v, want %+v", i, gotMovies[i], wantMovies[i])
		}
	}

	gotRatings, err := duck.ReadRatings(ctx, paths.Training)
	if err != nil {
		t.Fatalf("ReadRatings() error = %v", err)
	}
	if len(gotRatings) != 5 {
		t.Fatalf("got %d ratings, want 5", len(gotRatings))
	}
	if gotRatings[0] != (models.Rating{UserID: 1, MovieID: 1, Rating: 5.0}) {
		t.Errorf("ratings[0] = %+v", gotRatings[0])
	}
}

func TestDuckDBReader_Load(t *testing.T) {
	paths := fixturePaths(t)
	duck := newTestDuckDBReader(t)

	ds, err := Load(context.Background(), duck, paths, Options{}, nopLogger())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(ds.Test) != 2 {
		t.Errorf("got %d test ratings, want 2", len(ds.Test))
	}
}

func TestDuckDBReader_Errors(t *testing.T) {
	duck := newTestDuckDBReader(t)
	ctx := context.Background()

	_, err := duck.ReadRatings(ctx, "/nonexistent/training_ratings.csv")
	if !errors.Is(err, ErrSourceUnavailable) {
		t.Errorf("missing file error = %v, want ErrSourceUnavailable", err)
	}

	path := writeFixture(t, t.TempDir(), "bad.csv", "userId,movieId,rating\n1,1,4.0\n1,2,great\n")
	_, err = duck.ReadRatings(ctx, path)
	if !errors.Is(err, ErrMalformedRecord) {
		t.Errorf("bad rating error = %v, want ErrMalformedRecord", err)
	}
}

func TestQuoteLiteral(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"movies.csv", "'movies.csv'"},
		{"/data/o'brien/movies.csv", "'/data/o''brien/movies.csv'"},
	}
	for _, tt := range tests {
		if got := quoteLiteral(tt.in); got != tt.want {
			t.Errorf("quoteLiteral(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
