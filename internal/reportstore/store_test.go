// Movierecs - Item-based Movie Rating Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecs

package reportstore

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/tomtom215/movierecs/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testReport(id string, started time.Time, corr float64) *models.Report {
	return &models.Report{
		RunID:       id,
		StartedAt:   started,
		Duration:    0.25,
		Count:       3,
		Correlation: corr,
		RMSE:        0.6,
		MAE:         0.5,
		CachedPairs: 2,
		Predictions: []models.Prediction{
			{UserID: 1, MovieTitle: "A", Predicted: 5, Actual: 5},
		},
	}
}

func TestSaveAndGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	started := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	if err := s.Save(ctx, testReport("run-1", started, 0.8)); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := s.Get(ctx, "run-1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.RunID != "run-1" || got.Count != 3 || got.Correlation != 0.8 {
		t.Errorf("Get() = %+v", got)
	}
	if !got.StartedAt.Equal(started) {
		t.Errorf("StartedAt = %v, want %v", got.StartedAt, started)
	}
	if got.Predictions != nil {
		t.Errorf("Predictions should not be persisted, got %v", got.Predictions)
	}
}

func TestSave_NaNCorrelation(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, testReport("run-nan", time.Now(), math.NaN())); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := s.Get(ctx, "run-nan")
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsNaN(got.Correlation) {
		t.Errorf("Correlation = %v, want NaN", got.Correlation)
	}
}

func TestSave_MissingRunID(t *testing.T) {
	s := newTestStore(t)

	err := s.Save(context.Background(), testReport("", time.Now(), 0.5))
	if !errors.Is(err, ErrMissingRunID) {
		t.Errorf("Save() error = %v, want ErrMissingRunID", err)
	}
}

func TestGet_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Get(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestList(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	// Run ids deliberately sort opposite to their start times.
	for i, id := range []string{"c", "b", "a"} {
		if err := s.Save(ctx, testReport(id, base.Add(time.Duration(i)*time.Hour), 0.5)); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		name  string
		limit int
		want  []string
	}{
		{name: "all", limit: 0, want: []string{"a", "b", "c"}},
		{name: "latest", limit: 1, want: []string{"a"}},
		{name: "limit above size", limit: 10, want: []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.List(ctx, tt.limit)
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("len(List()) = %d, want %d", len(got), len(tt.want))
			}
			for i, id := range tt.want {
				if got[i].RunID != id {
					t.Errorf("List()[%d].RunID = %q, want %q", i, got[i].RunID, id)
				}
			}
		})
	}
}

func TestList_Empty(t *testing.T) {
	s := newTestStore(t)

	got, err := s.List(context.Background(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("List() = %v, want empty", got)
	}
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, testReport("run-1", time.Now(), 0.5)); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete(ctx, "run-1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := s.Get(ctx, "run-1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after Delete error = %v, want ErrNotFound", err)
	}
	if err := s.Delete(ctx, "run-1"); err != nil {
		t.Errorf("second Delete() error = %v", err)
	}
}

func TestCancelledContext(t *testing.T) {
	s := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := s.Save(ctx, testReport("run-1", time.Now(), 0.5)); !errors.Is(err, context.Canceled) {
		t.Errorf("Save() error = %v, want context.Canceled", err)
	}
	if _, err := s.List(ctx, 0); !errors.Is(err, context.Canceled) {
		t.Errorf("List() error = %v, want context.Canceled", err)
	}
}

func TestNewFromDB_DoesNotClose(t *testing.T) {
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	s := NewFromDB(db)
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(context.Background(), testReport("run-1", time.Now(), 0.5)); err != nil {
		t.Errorf("Save() after wrapper Close error = %v", err)
	}
}

func TestOpen_OnDisk(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Save(ctx, testReport("persisted", time.Now(), 0.7)); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s, err = Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	got, err := s.Get(ctx, "persisted")
	if err != nil {
		t.Fatalf("Get() after reopen error = %v", err)
	}
	if got.Correlation != 0.7 {
		t.Errorf("Correlation = %v, want 0.7", got.Correlation)
	}
}
