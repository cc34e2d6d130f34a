// Movierecs - Item-based Movie Rating Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecs

package recommend

import (
	"fmt"
	"sort"

	"github.com/tomtom215/movierecs/internal/models"
)

// Store is the authoritative record of the movie catalog and the known
// training ratings. It is built once and never modified afterwards.
//
// The two indices are kept consistent: user u appears in raters[m] if and
// only if ratings[u][m] exists.
type Store struct {
	movies  map[int]models.Movie
	raters  map[int][]int
	ratings map[int]map[int]float64
	count   int
}

// NewStore builds a store from a catalog and training ratings.
//
// A rating that references a movie absent from the catalog fails with
// ErrUnknownEntity. A repeated (user, movie) pair keeps the last rating.
func NewStore(movies []models.Movie, training []models.Rating) (*Store, error) {
	s := &Store{
		movies:  make(map[int]models.Movie, len(movies)),
		raters:  make(map[int][]int, len(movies)),
		ratings: make(map[int]map[int]float64),
	}

	for _, m := range movies {
		s.movies[m.ID] = m
	}

	for i, r := range training {
		if _, ok := s.movies[r.MovieID]; !ok {
			return nil, fmt.Errorf("%w: training rating %d references movie %d", ErrUnknownEntity, i, r.MovieID)
		}

		byMovie, ok := s.ratings[r.UserID]
		if !ok {
			byMovie = make(map[int]float64)
			s.ratings[r.UserID] = byMovie
		}
		if _, seen := byMovie[r.MovieID]; !seen {
			s.raters[r.MovieID] = append(s.raters[r.MovieID], r.UserID)
			s.count++
		}
		byMovie[r.MovieID] = r.Rating
	}

	return s, nil
}

// HasMovie reports whether the movie is in the catalog.
func (s *Store) HasMovie(id int) bool {
	_, ok := s.movies[id]
	return ok
}

// HasUser reports whether the user has at least one training rating.
func (s *Store) HasUser(id int) bool {
	_, ok := s.ratings[id]
	return ok
}

// Movie returns the catalog entry for id.
func (s *Store) Movie(id int) (models.Movie, bool) {
	m, ok := s.movies[id]
	return m, ok
}

// RatingOf returns the rating the user gave the movie, if any.
func (s *Store) RatingOf(userID, movieID int) (float64, bool) {
	r, ok := s.ratings[userID][movieID]
	return r, ok
}

// RatingsBy returns a copy of the user's ratings keyed by movie id.
// Unknown users get an empty map.
func (s *Store) RatingsBy(userID int) map[int]float64 {
	src := s.ratings[userID]
	out := make(map[int]float64, len(src))
	for m, r := range src {
		out[m] = r
	}
	return out
}

// RatersOf returns the ids of the users who rated the movie, in load order.
func (s *Store) RatersOf(movieID int) []int {
	src := s.raters[movieID]
	out := make([]int, len(src))
	copy(out, src)
	return out
}

// ratedMovies returns the user's rated movie ids in ascending order so that
// floating point accumulation is reproducible across runs.
func (s *Store) ratedMovies(userID int) []int {
	byMovie := s.ratings[userID]
	ids := make([]int, 0, len(byMovie))
	for m := range byMovie {
		ids = append(ids, m)
	}
	sort.Ints(ids)
	return ids
}

// NumMovies returns the catalog size.
func (s *Store) NumMovies() int { return len(s.movies) }

// NumUsers returns the number of users with at least one rating.
func (s *Store) NumUsers() int { return len(s.ratings) }

// NumRatings returns the number of distinct (user, movie) ratings.
func (s *Store) NumRatings() int { return s.count }
