package cache

import (
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2"
	"github.com/windchart/backend-go/internal/config"
	"github.com/windchart/backend-go/internal/models"
)

// MemoryCache is the in-process layer in front of the persistent store
type MemoryCache struct {
	lru   *lru.Cache[string, *models.CacheEntry]
	ttl   time.Duration
	clock Clock
}

func NewMemoryCache(cfg *config.CacheConfig, clock Clock) (*MemoryCache, error) {
	lruCache, err := lru.New[string, *models.CacheEntry](cfg.LRUSize)
	if err != nil {
		return nil, fmt.Errorf("creating LRU cache: %w", err)
	}
	if clock == nil {
		clock = SystemClock{}
	}

	return &MemoryCache{
		lru:   lruCache,
		ttl:   cfg.GetTTL(),
		clock: clock,
	}, nil
}

// Get returns the entry stored under key if it is younger than the TTL
func (c *MemoryCache) Get(key string) (*models.CacheEntry, bool) {
	entry, ok := c.lru.Get(key)
	if !ok {
		return nil, false
	}

	if !entry.IsFresh(c.clock.Now(), c.ttl) {
		c.lru.Remove(key)
		return nil, false
	}

	return entry, true
}

func (c *MemoryCache) Set(key string, entry *models.CacheEntry) {
	c.lru.Add(key, entry)
}

func (c *MemoryCache) Len() int {
	return c.lru.Len()
}

// Clear removes all entries from the LRU cache
func (c *MemoryCache) Clear() {
	c.lru.Purge()
}
