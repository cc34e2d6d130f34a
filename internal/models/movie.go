// Movierecs - Item-based Movie Rating Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecs

package models

// Movie is a single catalog entry.
type Movie struct {
	ID    int    `json:"id" validate:"gte=0"`
	Title string `json:"title"`
}

// String returns the movie title.
func (m Movie) String() string {
	return m.Title
}

// Rating is one (user, movie, rating) observation. The same shape is used
// for training records and for test probes.
type Rating struct {
	UserID  int     `json:"user_id" validate:"gte=0"`
	MovieID int     `json:"movie_id" validate:"gte=0"`
	Rating  float64 `json:"rating"`
}
