// Outfitcast - Weather-Aware Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitcast

package outfit

import (
	"slices"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/tomtom215/outfitcast/internal/cache"
	"github.com/tomtom215/outfitcast/internal/metrics"
	"github.com/tomtom215/outfitcast/internal/wardrobe"
)

// UniverseCache keeps universes keyed by a fingerprint of their category
// set. A wardrobe with a different attribute set always gets a different
// key, so a cached universe is never reused for other categories.
type UniverseCache struct {
	lru *cache.LRU[uint64, *Universe]
}

// NewUniverseCache creates a cache holding up to capacity universes for ttl.
func NewUniverseCache(capacity int, ttl time.Duration) *UniverseCache {
	return &UniverseCache{lru: cache.NewLRU[uint64, *Universe](capacity, ttl)}
}

// Universe returns the universe for items, building and caching it on a miss.
func (c *UniverseCache) Universe(items ...[]wardrobe.Item) *Universe {
	categories := collectCategories(items...)
	key := fingerprint(categories)

	if u, ok := c.lru.Get(key); ok && slices.Equal(u.categories, categories) {
		metrics.RecordUniverseCache(true)
		return u
	}

	metrics.RecordUniverseCache(false)
	u := newUniverse(categories)
	c.lru.Add(key, u)
	return u
}

// Len returns the number of cached universes.
func (c *UniverseCache) Len() int {
	return c.lru.Len()
}

// Stats returns cache hit/miss statistics.
func (c *UniverseCache) Stats() (hits, misses int64, size int) {
	return c.lru.Stats()
}

func fingerprint(categories []string) uint64 {
	d := xxhash.New()
	for _, c := range categories {
		_, _ = d.WriteString(c)
		_, _ = d.Write([]byte{0})
	}
	return d.Sum64()
}
