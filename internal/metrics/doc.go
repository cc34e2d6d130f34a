// Movierecs - Item-based Movie Rating Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecs

/*
Package metrics provides Prometheus instrumentation for the prediction engine.

movierecs is a batch job, not a server, so metrics are not scraped over
HTTP. Instead the default registry is written once at the end of a run to
a file in Prometheus text format, suitable for the node_exporter textfile
collector:

	metrics.WriteTextfile("/var/lib/node_exporter/movierecs.prom")

# Available Metrics

Similarity cache:
  - movierecs_similarity_cache_hits_total
  - movierecs_similarity_cache_misses_total (one per computed pair)
  - movierecs_similarity_cache_entries

Prediction:
  - movierecs_predictions_total{outcome="observed|weighted|fallback"}
  - movierecs_evaluation_duration_seconds
  - movierecs_evaluation_probes
  - movierecs_evaluation_correlation

Loading:
  - movierecs_records_loaded_total{kind="movies|training|test"}
  - movierecs_load_errors_total{kind}
*/
package metrics
