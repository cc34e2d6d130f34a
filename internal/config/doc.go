// Movierecs - Item-based Movie Rating Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecs

/*
Package config loads movierecs configuration with Koanf v2.

Sources are layered, later sources overriding earlier ones:

 1. Built-in defaults (structs provider)
 2. YAML config file: $CONFIG_PATH, movierecs.yaml or movierecs.yml
 3. Environment variables (explicit mapping, see envTransformFunc)
 4. Command-line overrides passed to Load

Example config file:

	data:
	  source: csv
	  movies: data/movies.csv
	  training: data/training_ratings.csv
	  test: data/test_ratings.csv
	engine:
	  fallback_rating: 2.5
	  max_rating_diff: 4.5
	  enforce_scale: false
	logging:
	  level: info
	  format: console
	metrics:
	  textfile: /var/lib/node_exporter/movierecs.prom
	report:
	  format: text
	  store_path: /var/lib/movierecs/reports

Environment variables:

	MOVIES_PATH, TRAINING_RATINGS_PATH, TEST_RATINGS_PATH, DATA_SOURCE
	FALLBACK_RATING, MAX_RATING_DIFF, ENFORCE_RATING_SCALE, RATING_MIN, RATING_MAX
	LOG_LEVEL, LOG_FORMAT, LOG_CALLER
	METRICS_TEXTFILE
	REPORT_FORMAT, REPORT_STORE_PATH

The loaded Config is validated with go-playground/validator via the
validation package.
*/
package config
