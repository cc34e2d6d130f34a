// Movierecs - Item-based Movie Rating Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecs

// Package ratings loads the three input streams the prediction engine
// consumes: the movie catalog, the training ratings and the test probes.
//
// Each stream is a header row followed by data rows:
//
//	movies.csv:            movieId,title[,extra...]
//	training_ratings.csv:  userId,movieId,rating[,extra...]
//	test_ratings.csv:      userId,movieId,rating[,extra...]
//
// Two readers are provided. CSVReader parses files with encoding/csv
// ('"' quoting, extra columns ignored). DuckDBReader scans the same files
// through DuckDB's read_csv table function in an in-memory database.
//
// Load is atomic: if any stream cannot be opened or parsed, no Dataset is
// returned. An unreadable stream wraps ErrSourceUnavailable; a bad row wraps
// ErrMalformedRecord with the file and line.
package ratings
