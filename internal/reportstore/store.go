// Movierecs - Item-based Movie Rating Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecs

package reportstore

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/movierecs/internal/models"
)

const keyPrefix = "report:"

var (
	// ErrNotFound is returned when no report exists for a run id.
	ErrNotFound = errors.New("report not found")

	// ErrMissingRunID is returned when saving a report without a run id.
	ErrMissingRunID = errors.New("report has no run id")
)

// Store persists report summaries in BadgerDB.
type Store struct {
	db    *badger.DB
	owned bool
}

// Open opens (or creates) a BadgerDB at path. An empty path keeps the
// database in memory.
func Open(path string) (*Store, error) {
	opts := badger.DefaultOptions(path)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil // Suppress BadgerDB logs

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db for reports: %w", err)
	}
	return &Store{db: db, owned: true}, nil
}

// NewFromDB wraps an already open database. Close leaves it open.
func NewFromDB(db *badger.DB) *Store {
	return &Store{db: db}
}

// Close closes the database if Open created it.
func (s *Store) Close() error {
	if s.owned {
		return s.db.Close()
	}
	return nil
}

func reportKey(runID string) []byte {
	return []byte(keyPrefix + runID)
}

// Save writes the summary of report, replacing any earlier entry with the
// same run id.
func (s *Store) Save(ctx context.Context, report *models.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if report.RunID == "" {
		return ErrMissingRunID
	}

	data, err := json.Marshal(report.Summary())
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(reportKey(report.RunID), data)
	})
}

// Get returns the stored summary for runID.
func (s *Store) Get(ctx context.Context, runID string) (*models.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var report models.Report
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(reportKey(runID))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &report)
		})
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, runID)
	}
	if err != nil {
		return nil, fmt.Errorf("load report %s: %w", runID, err)
	}
	return &report, nil
}

// List returns stored summaries, newest first. A limit of zero or less
// returns all of them.
func (s *Store) List(ctx context.Context, limit int) ([]models.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var reports []models.Report
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(keyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var r models.Report
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &r)
			})
			if err != nil {
				return fmt.Errorf("decode %s: %w", it.Item().Key(), err)
			}
			reports = append(reports, r)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}

	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].StartedAt.After(reports[j].StartedAt)
	})
	if limit > 0 && len(reports) > limit {
		reports = reports[:limit]
	}
	return reports, nil
}

// Delete removes the entry for runID. Deleting a missing entry is not an
// error.
func (s *Store) Delete(ctx context.Context, runID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		err := txn.Delete(reportKey(runID))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		return err
	})
}
