package translation

import (
	"strings"
	"sync"
	"time"

	"github.com/verborum/verborum/internal/language"
)

const (
	// DefaultCacheTTL bounds how long a cached translation stays servable.
	DefaultCacheTTL = time.Hour
	// DefaultCacheMaxSize caps the number of cached translations.
	DefaultCacheMaxSize = 256

	// autoSourceLang is the sentinel for an omitted source language. An
	// explicit source code never collapses onto this cache line.
	autoSourceLang = "auto"

	cacheKeySeparator = "\x1f"
)

type cacheEntry struct {
	result    Result
	createdAt time.Time
}

// Cache is a bounded, TTL-expiring store of successful translations keyed by
// (text, source-or-auto, target, tone). Safe for concurrent use; individual
// Lookup/Store calls are atomic with respect to each other.
type Cache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	ttl     time.Duration
	maxSize int
	now     func() time.Time
}

// NewCache builds a cache with the given TTL and size bound. Non-positive
// values fall back to the defaults.
func NewCache(ttl time.Duration, maxSize int) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if maxSize <= 0 {
		maxSize = DefaultCacheMaxSize
	}
	return &Cache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		maxSize: maxSize,
		now:     time.Now,
	}
}

// Lookup returns the cached result for the request parameters. Expired
// entries are purged on probe and reported as misses.
func (c *Cache) Lookup(text, sourceLang, targetLang string, tone Tone) (Result, bool) {
	if c == nil {
		return Result{}, false
	}
	key := cacheKey(text, sourceLang, targetLang, tone)

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return Result{}, false
	}
	if c.now().Sub(entry.createdAt) >= c.ttl {
		delete(c.entries, key)
		return Result{}, false
	}
	return entry.result, true
}

// Store inserts a successful result. Failed or empty results are never
// cached. When the size bound is exceeded the oldest entries are evicted
// until the bound holds again.
func (c *Cache) Store(text, sourceLang, targetLang string, tone Tone, result Result) {
	if c == nil || !result.OK() {
		return
	}
	key := cacheKey(text, sourceLang, targetLang, tone)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{result: result, createdAt: c.now()}
	for len(c.entries) > c.maxSize {
		c.evictOldestLocked()
	}
}

// Clear removes all entries.
func (c *Cache) Clear() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}

// Len reports the current entry count.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Cache) evictOldestLocked() {
	var (
		oldestKey string
		oldestAt  time.Time
		found     bool
	)
	for key, entry := range c.entries {
		if !found || entry.createdAt.Before(oldestAt) {
			oldestKey = key
			oldestAt = entry.createdAt
			found = true
		}
	}
	if found {
		delete(c.entries, oldestKey)
	}
}

func cacheKey(text, sourceLang, targetLang string, tone Tone) string {
	source := language.NormalizeTag(sourceLang)
	if source == "" {
		source = autoSourceLang
	}
	target := language.NormalizeTag(targetLang)
	if tone == "" {
		tone = ToneDefault
	}
	return strings.Join([]string{text, source, target, string(tone)}, cacheKeySeparator)
}
