// Movierecs - Item-based Movie Rating Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecs

/*
Package models defines the record types shared by the loader, the
prediction engine and the command-line driver.

Key Components:

  - Movie: catalog entry (id, title)
  - Rating: a (user, movie, rating) observation, used for both training
    ratings and test probes
  - Prediction: (user, movie title, predicted, actual) tuple emitted by
    batch prediction
  - Report: summary of one evaluation run

The types carry json tags for report output and validate tags for
go-playground/validator.
*/
package models
