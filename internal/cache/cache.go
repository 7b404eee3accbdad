// Package cache holds normalized matches that were already assembled so
// repeat views don't re-run normalization. The cache is owned by the
// caller: capacity is chosen at construction and nothing in the
// normalization core knows it exists.
package cache

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"dotadash/internal/match"
)

// MatchCache is an LRU of normalized matches keyed by match id
type MatchCache struct {
	lru *lru.Cache[int64, *match.Match]
}

// New creates a cache holding at most size matches
func New(size int) (*MatchCache, error) {
	c, err := lru.New[int64, *match.Match](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create match cache: %w", err)
	}
	return &MatchCache{lru: c}, nil
}

// Get returns the cached match for an id, if present
func (c *MatchCache) Get(matchID int64) (*match.Match, bool) {
	return c.lru.Get(matchID)
}

// Add stores a normalized match, evicting the least recently used entry
// when the cache is full
func (c *MatchCache) Add(m *match.Match) {
	c.lru.Add(m.ID, m)
}

// Len returns the number of cached matches
func (c *MatchCache) Len() int {
	return c.lru.Len()
}
