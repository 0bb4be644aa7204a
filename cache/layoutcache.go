// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package cache

import (
	"candlekit/chartval"

	lru "github.com/hashicorp/golang-lru/v2"
)

const DefaultMaxEntries = 8

// Key captures every parameter that can affect a computed viewport layout.
// It is a typed struct rather than an encoded string, so adding a new
// layout-affecting parameter is a compile-time visible change for every
// caller that builds keys.
type Key struct {
	StartIdx   int
	EndIdx     int
	DataLen    int
	ChartType  chartval.ChartType
	CandleMode chartval.CandleMode
	Width      int
	Height     int
}

type Stats struct {
	Size       int
	MaxEntries int
	Hits       int
	Misses     int
	HitRate    float64
}

// LayoutCache memoizes expensive viewport layouts under a bounded LRU
// policy. It has no automatic dependency tracking: callers must Invalidate
// whenever data or configuration changes outside the dimensions captured by
// the key. Intended for a single consumer per pane; concurrent mutation is
// not supported.
type LayoutCache struct {
	entries    *lru.Cache[Key, any]
	maxEntries int
	hits       int
	misses     int
}

func NewLayoutCache(maxEntries int) *LayoutCache {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	entries, err := lru.New[Key, any](maxEntries)
	if err != nil {
		panic("invalid layout cache size")
	}
	return &LayoutCache{
		entries:    entries,
		maxEntries: maxEntries,
	}
}

// GetOrCompute returns the cached layout for key, promoting it to most
// recently used. On a miss it invokes compute exactly once, stores the
// result (evicting the least recently used entry if the cache is full) and
// returns it.
func (c *LayoutCache) GetOrCompute(key Key, compute func() any) any {
	if v, ok := c.entries.Get(key); ok {
		c.hits++
		return v
	}
	c.misses++
	v := compute()
	c.entries.Add(key, v)
	return v
}

// Has reports presence without promoting the entry.
func (c *LayoutCache) Has(key Key) bool {
	return c.entries.Contains(key)
}

func (c *LayoutCache) Remove(key Key) {
	c.entries.Remove(key)
}

// Invalidate drops all entries. Hit/miss counters are kept for tuning
// across invalidations.
func (c *LayoutCache) Invalidate() {
	c.entries.Purge()
}

func (c *LayoutCache) Stats() Stats {
	total := c.hits + c.misses
	var hitRate float64
	if total > 0 {
		hitRate = float64(c.hits) / float64(total)
	}
	return Stats{
		Size:       c.entries.Len(),
		MaxEntries: c.maxEntries,
		Hits:       c.hits,
		Misses:     c.misses,
		HitRate:    hitRate,
	}
}
