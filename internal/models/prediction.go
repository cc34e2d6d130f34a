// Movierecs - Item-based Movie Rating Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecs

package models

import (
	"fmt"
	"math"
	"time"

	"github.com/goccy/go-json"
)

// Prediction pairs a predicted rating with the known rating for one probe.
type Prediction struct {
	UserID     int     `json:"user_id"`
	MovieTitle string  `json:"movie_title"`
	Predicted  float64 `json:"predicted"`
	Actual     float64 `json:"actual"`
}

// String renders the prediction as a tuple, e.g. (1, 'Heat (1995)', 3.91, 4.0).
func (p Prediction) String() string {
	return fmt.Sprintf("(%d, '%s', %v, %v)", p.UserID, p.MovieTitle, p.Predicted, p.Actual)
}

// Report summarizes one evaluation run over a probe set.
type Report struct {
	RunID       string       `json:"run_id"`
	StartedAt   time.Time    `json:"started_at"`
	Duration    float64      `json:"duration_seconds"`
	Count       int          `json:"count"`
	Correlation float64      `json:"correlation"`
	RMSE        float64      `json:"rmse"`
	MAE         float64      `json:"mae"`
	CachedPairs int          `json:"cached_pairs"`
	Predictions []Prediction `json:"predictions,omitempty"`
}

// Summary returns a copy of the report without the per-probe predictions.
func (r *Report) Summary() Report {
	s := *r
	s.Predictions = nil
	return s
}

type reportJSON struct {
	RunID       string       `json:"run_id"`
	StartedAt   time.Time    `json:"started_at"`
	Duration    float64      `json:"duration_seconds"`
	Count       int          `json:"count"`
	Correlation *float64     `json:"correlation"`
	RMSE        *float64     `json:"rmse"`
	MAE         *float64     `json:"mae"`
	CachedPairs int          `json:"cached_pairs"`
	Predictions []Prediction `json:"predictions,omitempty"`
}

// MarshalJSON encodes NaN measures (zero variance, empty probe set) as null.
func (r Report) MarshalJSON() ([]byte, error) {
	return json.Marshal(reportJSON{
		RunID:       r.RunID,
		StartedAt:   r.StartedAt,
		Duration:    r.Duration,
		Count:       r.Count,
		Correlation: finiteOrNil(r.Correlation),
		RMSE:        finiteOrNil(r.RMSE),
		MAE:         finiteOrNil(r.MAE),
		CachedPairs: r.CachedPairs,
		Predictions: r.Predictions,
	})
}

// UnmarshalJSON restores null measures as NaN.
func (r *Report) UnmarshalJSON(data []byte) error {
	var aux reportJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*r = Report{
		RunID:       aux.RunID,
		StartedAt:   aux.StartedAt,
		Duration:    aux.Duration,
		Count:       aux.Count,
		Correlation: nilToNaN(aux.Correlation),
		RMSE:        nilToNaN(aux.RMSE),
		MAE:         nilToNaN(aux.MAE),
		CachedPairs: aux.CachedPairs,
		Predictions: aux.Predictions,
	}
	return nil
}

func finiteOrNil(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func nilToNaN(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}
