// Movierecs - Item-based Movie Rating Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecs

package recommend

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"github.com/tomtom215/movierecs/internal/metrics"
)

// pairKey identifies an unordered movie pair; a <= b always holds.
type pairKey struct {
	a, b int
}

func newPairKey(x, y int) pairKey {
	if x > y {
		x, y = y, x
	}
	return pairKey{a: x, b: y}
}

// CacheStats reports similarity cache usage.
type CacheStats struct {
	Hits    int64 `json:"hits"`
	Misses  int64 `json:"misses"`
	Entries int   `json:"entries"`
}

// SimilarityCache memoizes movie-pair similarity. Entries are only ever
// added; a stored score never changes.
type SimilarityCache struct {
	store   *Store
	maxDiff float64

	mu     sync.Mutex
	scores map[pairKey]float64

	hits   atomic.Int64
	misses atomic.Int64
}

// NewSimilarityCache creates an empty cache over store. maxDiff is the
// normalizing constant of the similarity formula.
func NewSimilarityCache(store *Store, maxDiff float64) *SimilarityCache {
	return &SimilarityCache{
		store:   store,
		maxDiff: maxDiff,
		scores:  make(map[pairKey]float64),
	}
}

// Similarity returns the similarity between movies a and b, computing and
// caching it on first use. The result is the same for (a, b) and (b, a).
func (c *SimilarityCache) Similarity(a, b int) (float64, error) {
	if !c.store.HasMovie(b) {
		return 0, fmt.Errorf("%w: movie %d", ErrUnknownEntity, b)
	}
	if !c.store.HasMovie(a) {
		return 0, fmt.Errorf("%w: movie %d", ErrUnknownEntity, a)
	}

	key := newPairKey(a, b)

	// Lookup, compute and insert happen under one lock so a pair is never
	// computed twice.
	c.mu.Lock()
	defer c.mu.Unlock()

	if score, ok := c.scores[key]; ok {
		c.hits.Add(1)
		metrics.RecordSimilarityLookup(true, len(c.scores))
		return score, nil
	}

	score := c.compute(key.a, key.b)
	c.scores[key] = score
	c.misses.Add(1)
	metrics.RecordSimilarityLookup(false, len(c.scores))

	return score, nil
}

// Cached returns the stored similarity for the pair without computing it.
func (c *SimilarityCache) Cached(a, b int) (float64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	score, ok := c.scores[newPairKey(a, b)]
	return score, ok
}

// compute derives the similarity from the users who rated both movies.
// Zero co-raters yields 0.
func (c *SimilarityCache) compute(a, b int) float64 {
	ratersA, ratersB := c.store.raters[a], c.store.raters[b]
	scan, other := a, b
	if len(ratersB) < len(ratersA) {
		ratersA, scan, other = ratersB, b, a
	}

	var sumAbsDiff float64
	var n int
	for _, u := range ratersA {
		rOther, ok := c.store.ratings[u][other]
		if !ok {
			continue
		}
		sumAbsDiff += math.Abs(c.store.ratings[u][scan] - rOther)
		n++
	}

	if n == 0 {
		return 0
	}
	return 1 - (sumAbsDiff/float64(n))/c.maxDiff
}

// Len returns the number of cached pairs.
func (c *SimilarityCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.scores)
}

// Stats returns hit, miss and entry counts.
func (c *SimilarityCache) Stats() CacheStats {
	return CacheStats{
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
		Entries: c.Len(),
	}
}
