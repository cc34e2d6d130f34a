// Movierecs - Item-based Movie Rating Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecs

package metrics

import (
	"fmt"
	"math"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Similarity Cache Metrics
	SimilarityCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "movierecs_similarity_cache_hits_total",
			Help: "Total number of similarity lookups served from the cache",
		},
	)

	SimilarityCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "movierecs_similarity_cache_misses_total",
			Help: "Total number of movie pairs whose similarity was computed",
		},
	)

	SimilarityCacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "movierecs_similarity_cache_entries",
			Help: "Current number of cached movie pairs",
		},
	)

	// Prediction Metrics
	PredictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movierecs_predictions_total",
			Help: "Total number of rating predictions by outcome",
		},
		[]string{"outcome"}, // "observed", "weighted", "fallback"
	)

	EvaluationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "movierecs_evaluation_duration_seconds",
			Help:    "Duration of batch evaluations in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30, 60, 300},
		},
	)

	EvaluationProbes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "movierecs_evaluation_probes",
			Help: "Number of probes in the last evaluation",
		},
	)

	EvaluationCorrelation = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "movierecs_evaluation_correlation",
			Help: "Pearson correlation between predicted and actual ratings in the last evaluation",
		},
	)

	// Loader Metrics
	RecordsLoaded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movierecs_records_loaded_total",
			Help: "Total number of input records loaded",
		},
		[]string{"kind"}, // "movies", "training", "test"
	)

	LoadErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movierecs_load_errors_total",
			Help: "Total number of failed input loads",
		},
		[]string{"kind"},
	)
)

// RecordSimilarityLookup records one similarity cache lookup.
func RecordSimilarityLookup(hit bool, entries int) {
	if hit {
		SimilarityCacheHits.Inc()
	} else {
		SimilarityCacheMisses.Inc()
	}
	SimilarityCacheEntries.Set(float64(entries))
}

// RecordPrediction records one prediction by outcome.
func RecordPrediction(outcome string) {
	PredictionsTotal.WithLabelValues(outcome).Inc()
}

// RecordEvaluation records a completed batch evaluation. A NaN correlation
// (constant sequences) leaves the correlation gauge unchanged.
func RecordEvaluation(duration time.Duration, probes int, correlation float64) {
	EvaluationDuration.Observe(duration.Seconds())
	EvaluationProbes.Set(float64(probes))
	if !math.IsNaN(correlation) {
		EvaluationCorrelation.Set(correlation)
	}
}

// RecordLoad records the outcome of loading one input stream.
func RecordLoad(kind string, records int, err error) {
	if err != nil {
		LoadErrors.WithLabelValues(kind).Inc()
		return
	}
	RecordsLoaded.WithLabelValues(kind).Add(float64(records))
}

// WriteTextfile writes all registered metrics to path in Prometheus text
// format. The file is written atomically.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
