package cmd

import (
	"sync"
	"time"

	"github.com/audiohw/audiotree/internal/walker"
)

// mcpCacheEntry holds a rendered report with its timestamp.
type mcpCacheEntry struct {
	text      string
	timestamp time.Time
}

// mcpReportCache is a TTL cache for traversal reports, keyed by the option
// bits of the pass that produced them. Hardware can change between calls, so
// the TTL is expected to be short.
type mcpReportCache struct {
	mu      sync.Mutex
	entries map[walker.Options]mcpCacheEntry
	ttl     time.Duration
}

// newMCPReportCache creates a new cache. A ttl of 0 disables caching.
func newMCPReportCache(ttl time.Duration) *mcpReportCache {
	return &mcpReportCache{
		entries: make(map[walker.Options]mcpCacheEntry),
		ttl:     ttl,
	}
}

// report returns the cached text if within TTL, otherwise runs a fresh pass.
func (c *mcpReportCache) report(opts walker.Options, run func() (string, error)) (string, error) {
	if c.ttl == 0 {
		return run()
	}

	c.mu.Lock()
	if entry, ok := c.entries[opts]; ok && time.Since(entry.timestamp) < c.ttl {
		text := entry.text
		c.mu.Unlock()
		return text, nil
	}
	c.mu.Unlock()

	text, err := run()
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	c.entries[opts] = mcpCacheEntry{text: text, timestamp: time.Now()}
	c.mu.Unlock()

	return text, nil
}

// invalidateAll clears the entire cache.
func (c *mcpReportCache) invalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[walker.Options]mcpCacheEntry)
}
