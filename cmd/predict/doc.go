// Movierecs - Item-based Movie Rating Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecs

/*
Command predict evaluates the item-based rating predictor against a set of
held-out ratings.

It loads a movie catalog, a training rating file and a test rating file,
predicts a rating for every (user, movie) pair in the test file, prints
each prediction as a tuple and finishes with the Pearson correlation
between predicted and actual ratings:

	Rating predictions:
	(1, 'Toy Story (1995)', 4.120689655172414, 4)
	...
	Correlation: 0.4372

# Configuration

Configuration is layered with koanf (highest priority wins):
  - Positional arguments: predict [movies.csv training.csv test.csv]
  - Environment variables (MOVIES_PATH, TRAINING_RATINGS_PATH,
    TEST_RATINGS_PATH, DATA_SOURCE, FALLBACK_RATING, MAX_RATING_DIFF,
    ENFORCE_RATING_SCALE, RATING_MIN, RATING_MAX, LOG_LEVEL, LOG_FORMAT,
    METRICS_TEXTFILE, REPORT_FORMAT, REPORT_STORE_PATH)
  - Config file (movierecs.yaml, or the path in CONFIG_PATH)
  - Built-in defaults

Predictions go to stdout, logs to stderr. Any load or lookup error stops
the run with a non-zero exit status and no partial output.

# Examples

	./predict movies.csv training_ratings.csv test_ratings.csv

	DATA_SOURCE=duckdb REPORT_FORMAT=json ./predict > report.json

	REPORT_STORE_PATH=/var/lib/movierecs/reports \
	METRICS_TEXTFILE=/var/lib/node_exporter/movierecs.prom \
	./predict
*/
package main
