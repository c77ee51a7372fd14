package engine

import (
	"sync"

	"github.com/npillmayer/pwss/style/cascade"
)

type cacheEntry struct {
	key   string
	style *cascade.ResolvedStyle
}

// styleCache maps fingerprints to resolved styles for a single stylesheet
// version. It is safe for concurrent use. When full, it is cleared as a
// whole; widgets get restyled far more often than stylesheets reloaded, so
// the cache refills quickly.
type styleCache struct {
	mu       sync.RWMutex
	buckets  map[uint64][]cacheEntry
	size     int
	capacity int
}

func newStyleCache(capacity int) *styleCache {
	return &styleCache{
		buckets:  make(map[uint64][]cacheEntry),
		capacity: capacity,
	}
}

func (c *styleCache) get(fp fingerprint) (*cascade.ResolvedStyle, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, e := range c.buckets[fp.digest] {
		if e.key == fp.key {
			return e.style, true
		}
	}
	return nil, false
}

// put stores a style unless an equal fingerprint is present already. It
// returns the style which ended up in the cache, so that racing resolvers
// agree on one instance.
func (c *styleCache) put(fp fingerprint, rs *cascade.ResolvedStyle) *cascade.ResolvedStyle {
	if c.capacity <= 0 {
		return rs
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, e := range c.buckets[fp.digest] {
		if e.key == fp.key {
			return e.style
		}
	}
	if c.size >= c.capacity {
		tracer().Debugf("style cache full with %d entries, clearing", c.size)
		clear(c.buckets)
		c.size = 0
	}
	c.buckets[fp.digest] = append(c.buckets[fp.digest], cacheEntry{key: fp.key, style: rs})
	c.size++
	return rs
}

func (c *styleCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.size
}
