// Movierecs - Item-based Movie Rating Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecs

// Package recommend implements item-based collaborative filtering over a
// sparse user-movie rating matrix.
//
// # Architecture
//
// Data flows one way:
//
//	catalog + training ratings -> Store -> Engine (SimilarityCache) -> Evaluate -> Report
//
// Components:
//   - Store: immutable record of known ratings, indexed by movie (raters)
//     and by user (movie -> rating)
//   - SimilarityCache: memoized, symmetric movie-pair similarity keyed by
//     the canonical pair (min id, max id)
//   - Engine: predicts a rating as a similarity-weighted average of the
//     user's other ratings
//   - PredictMany / Evaluate: batch prediction over probe records and the
//     Pearson correlation between predicted and actual values
//
// # Similarity
//
// The similarity of movies a and b is computed from co-raters only:
//
//	sim(a, b) = 1 - mean(|r(u,a) - r(u,b)|) / MaxRatingDiff
//
// with MaxRatingDiff = 4.5 for the 0.5-5.0 half-star scale. A pair with no
// co-raters has similarity 0. The value is not clamped.
//
// # Prediction
//
// A rating the user already gave is returned unchanged. Otherwise the
// prediction is sum(sim*r) / sum(sim) over the user's rated movies, or
// FallbackRating (2.5) when the weights sum to zero.
//
// # Usage
//
//	store, err := recommend.NewStore(movies, training)
//	engine, err := recommend.NewEngine(store, recommend.DefaultConfig(), logger)
//
//	rating, err := engine.PredictRating(userID, movieID)
//	report, err := engine.Evaluate(ctx, probes)
//
// # Thread Safety
//
// Store is immutable after construction. The similarity cache guards its
// read-check-compute-write sequence with a mutex, so an Engine may be
// shared between goroutines.
package recommend
