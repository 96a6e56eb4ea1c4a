// Package cache implements an in-memory store whose entries all expire
// together at a weekly calendar horizon. The upstream publishes fresh data on
// a weekly cadence, so validity is pinned to the calendar rather than to a
// per-entry TTL.
package cache

import (
	"log/slog"
	"sync"
	"time"

	"nfl-data-service/internal/timeutil"
)

type entry struct {
	value      any
	insertedAt time.Time
}

// Cache is a key/value store with a single shared validity window. All
// operations are safe for concurrent use.
type Cache struct {
	mu         sync.Mutex
	entries    map[string]entry
	horizon    time.Time
	ttl        time.Duration
	refreshDay time.Weekday
	minWindow  time.Duration
	now        func() time.Time
	logger     *slog.Logger
}

// Info describes the cache state without exposing the stored values.
type Info struct {
	TotalItems  int      `json:"totalItems"`
	TTLSeconds  int64    `json:"ttlSeconds"`
	TTLHours    float64  `json:"ttlHours"`
	NextRefresh string   `json:"nextRefresh"`
	CachedKeys  []string `json:"cachedKeys"`
}

// New constructs a Cache that refreshes at 00:00 on refreshDay, with the
// validity window floored at minWindow.
func New(refreshDay time.Weekday, minWindow time.Duration, logger *slog.Logger) *Cache {
	return newCache(refreshDay, minWindow, logger, time.Now)
}

func newCache(refreshDay time.Weekday, minWindow time.Duration, logger *slog.Logger, now func() time.Time) *Cache {
	if minWindow <= 0 {
		minWindow = time.Hour
	}
	c := &Cache{
		entries:    make(map[string]entry),
		refreshDay: refreshDay,
		minWindow:  minWindow,
		now:        now,
		logger:     logger,
	}
	c.RecomputeHorizon()
	return c
}

// RecomputeHorizon repins the shared validity window to the next occurrence
// of the refresh weekday at midnight, floored at the minimum window.
func (c *Cache) RecomputeHorizon() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	c.horizon = timeutil.NextWeekdayMidnight(now, c.refreshDay)
	ttl := c.horizon.Sub(now)
	if ttl < c.minWindow {
		ttl = c.minWindow
	}
	c.ttl = ttl
	if c.logger != nil {
		c.logger.Info("cache horizon set",
			slog.String("next_refresh", c.horizon.Format("2006-01-02 15:04")),
			slog.Float64("ttl_hours", ttl.Hours()),
		)
	}
}

// Get returns the value stored under key. A key whose entry has outlived the
// validity window is evicted and reported as a miss.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.insertedAt) >= c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return e.value, true
}

// Put inserts or overwrites the value under key, stamped with the current time.
func (c *Cache) Put(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{value: value, insertedAt: c.now()}
}

// Clear removes every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]entry)
	if c.logger != nil {
		c.logger.Info("cache cleared")
	}
}

// Len reports the number of stored entries, including any not yet evicted
// past the horizon.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Info returns a snapshot of the cache state for introspection endpoints.
func (c *Cache) Info() Info {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	ttlSeconds := int64(c.ttl / time.Second)
	return Info{
		TotalItems:  len(c.entries),
		TTLSeconds:  ttlSeconds,
		TTLHours:    float64(ttlSeconds) / 3600,
		NextRefresh: c.horizon.Format("2006-01-02 15:04"),
		CachedKeys:  keys,
	}
}
