// Movierecs - Item-based Movie Rating Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecs

package recommend

import (
	"context"
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/tomtom215/movierecs/internal/logging"
	"github.com/tomtom215/movierecs/internal/metrics"
	"github.com/tomtom215/movierecs/internal/models"
)

// PredictMany predicts a rating for every probe, in order. The first probe
// that references an unknown user or movie aborts the batch; no partial
// result is returned.
func (e *Engine) PredictMany(ctx context.Context, probes []models.Rating) ([]models.Prediction, error) {
	out := make([]models.Prediction, 0, len(probes))

	for i, p := range probes {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("predict batch: %w", err)
		}

		movie, ok := e.store.Movie(p.MovieID)
		if !ok {
			return nil, fmt.Errorf("probe %d: %w: movie %d", i, ErrUnknownEntity, p.MovieID)
		}

		predicted, err := e.PredictRating(p.UserID, p.MovieID)
		if err != nil {
			return nil, fmt.Errorf("probe %d: %w", i, err)
		}

		out = append(out, models.Prediction{
			UserID:     p.UserID,
			MovieTitle: movie.Title,
			Predicted:  predicted,
			Actual:     p.Rating,
		})
	}

	return out, nil
}

// Correlation returns the Pearson correlation coefficient of predicted and
// actual. The sequences must have equal length. When either sequence has
// zero variance, or fewer than two values are given, the result is NaN.
func Correlation(predicted, actual []float64) (float64, error) {
	if len(predicted) != len(actual) {
		return math.NaN(), fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(predicted), len(actual))
	}
	if len(predicted) < 2 {
		return math.NaN(), nil
	}
	return stat.Correlation(predicted, actual, nil), nil
}

// Evaluate runs PredictMany over probes and summarizes accuracy.
func (e *Engine) Evaluate(ctx context.Context, probes []models.Rating) (*models.Report, error) {
	start := time.Now()
	logger := logging.Ctx(ctx).With().Str("component", "recommend").Logger()
	logger.Info().Int("probes", len(probes)).Msg("evaluation started")

	predictions, err := e.PredictMany(ctx, probes)
	if err != nil {
		return nil, err
	}

	predicted := make([]float64, len(predictions))
	actual := make([]float64, len(predictions))
	for i, p := range predictions {
		predicted[i] = p.Predicted
		actual[i] = p.Actual
	}

	corr, err := Correlation(predicted, actual)
	if err != nil {
		return nil, err
	}

	report := &models.Report{
		RunID:       logging.RunIDFromContext(ctx),
		StartedAt:   start.UTC(),
		Count:       len(predictions),
		Correlation: corr,
		RMSE:        math.NaN(),
		MAE:         math.NaN(),
		CachedPairs: e.cache.Len(),
	}
	if n := float64(len(predictions)); n > 0 {
		report.RMSE = floats.Distance(predicted, actual, 2) / math.Sqrt(n)
		report.MAE = floats.Distance(predicted, actual, 1) / n
	}
	if e.config.KeepPredictions {
		report.Predictions = predictions
	}

	elapsed := time.Since(start)
	report.Duration = elapsed.Seconds()
	metrics.RecordEvaluation(elapsed, report.Count, corr)

	stats := e.cache.Stats()
	logger.Info().
		Int("count", report.Count).
		Float64("correlation", corr).
		Float64("rmse", report.RMSE).
		Int("cached_pairs", stats.Entries).
		Int64("cache_hits", stats.Hits).
		Dur("duration", elapsed).
		Msg("evaluation complete")

	return report, nil
}
