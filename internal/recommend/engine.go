// Movierecs - Item-based Movie Rating Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecs

package recommend

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/movierecs/internal/metrics"
)

// Prediction outcome labels.
const (
	OutcomeObserved = "observed"
	OutcomeWeighted = "weighted"
	OutcomeFallback = "fallback"
)

// Engine predicts ratings from a Store, consulting and filling its
// SimilarityCache on demand.
type Engine struct {
	config *Config
	logger zerolog.Logger

	store *Store
	cache *SimilarityCache
}

// NewEngine creates a prediction engine over store.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(store *Store, cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if store == nil {
		return nil, errors.New("store cannot be nil")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	e := &Engine{
		config: cfg,
		logger: logger.With().Str("component", "recommend").Logger(),
		store:  store,
		cache:  NewSimilarityCache(store, cfg.MaxRatingDiff),
	}

	e.logger.Debug().
		Int("movies", store.NumMovies()).
		Int("users", store.NumUsers()).
		Int("ratings", store.NumRatings()).
		Msg("engine ready")

	return e, nil
}

// Store returns the underlying rating store.
func (e *Engine) Store() *Store { return e.store }

// Cache returns the similarity cache.
func (e *Engine) Cache() *SimilarityCache { return e.cache }

// Similarity returns the memoized similarity between two movies.
func (e *Engine) Similarity(a, b int) (float64, error) {
	return e.cache.Similarity(a, b)
}

// PredictRating returns the rating userID is predicted to give movieID.
//
// An existing rating is returned unchanged. Otherwise the result is the
// similarity-weighted average of the user's other ratings, or the
// configured fallback when the similarity weights sum to zero. The result
// is not clamped to the rating scale.
func (e *Engine) PredictRating(userID, movieID int) (float64, error) {
	rating, outcome, err := e.predict(userID, movieID)
	if err != nil {
		return 0, err
	}

	metrics.RecordPrediction(outcome)
	e.logger.Trace().
		Int("user_id", userID).
		Int("movie_id", movieID).
		Str("outcome", outcome).
		Float64("rating", rating).
		Msg("predicted rating")

	return rating, nil
}

func (e *Engine) predict(userID, movieID int) (float64, string, error) {
	if !e.store.HasUser(userID) {
		return 0, "", fmt.Errorf("%w: user %d", ErrUnknownEntity, userID)
	}
	if !e.store.HasMovie(movieID) {
		return 0, "", fmt.Errorf("%w: movie %d", ErrUnknownEntity, movieID)
	}

	if r, ok := e.store.RatingOf(userID, movieID); ok {
		return r, OutcomeObserved, nil
	}

	var weighted, weights float64
	for _, rated := range e.store.ratedMovies(userID) {
		sim, err := e.cache.Similarity(rated, movieID)
		if err != nil {
			return 0, "", err
		}
		r, _ := e.store.RatingOf(userID, rated)
		weighted += sim * r
		weights += sim
	}

	if weights == 0 {
		return e.config.FallbackRating, OutcomeFallback, nil
	}
	return weighted / weights, OutcomeWeighted, nil
}
