package api

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/creditscope/creditscope/internal/pipeline"
)

// Cache holds recently issued decision results keyed by decision ID so the
// read path can skip the database for hot lookups.
type Cache interface {
	Get(ctx context.Context, id string) (*pipeline.Result, bool)
	Put(ctx context.Context, id string, res *pipeline.Result)
}

// MemoryCache is a thread-safe LRU cache for decision results.
type MemoryCache struct {
	mu      sync.Mutex
	maxSize int
	entries map[string]*cacheEntry
	order   []string // oldest first
}

type cacheEntry struct {
	res *pipeline.Result
}

// NewMemoryCache creates a cache with the given maximum number of entries.
// If maxSize <= 0, it defaults to 128.
func NewMemoryCache(maxSize int) *MemoryCache {
	if maxSize <= 0 {
		maxSize = 128
	}
	return &MemoryCache{
		maxSize: maxSize,
		entries: make(map[string]*cacheEntry),
	}
}

// Get retrieves a decision result from the cache.
func (c *MemoryCache) Get(_ context.Context, id string) (*pipeline.Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[id]
	if !ok {
		return nil, false
	}

	// Move to end (most recently used)
	c.moveToEnd(id)
	return entry.res, true
}

// Put adds a decision result to the cache, evicting the oldest if full.
func (c *MemoryCache) Put(_ context.Context, id string, res *pipeline.Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[id]; ok {
		c.entries[id] = &cacheEntry{res: res}
		c.moveToEnd(id)
		return
	}

	// Evict oldest if at capacity
	for len(c.entries) >= c.maxSize && len(c.order) > 0 {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}

	c.entries[id] = &cacheEntry{res: res}
	c.order = append(c.order, id)
}

func (c *MemoryCache) moveToEnd(id string) {
	for i, k := range c.order {
		if k == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, id)
			return
		}
	}
}

// redisKeyPrefix namespaces decision entries in a shared Redis instance.
const redisKeyPrefix = "creditscope:decision:"

// RedisCache caches decision results in Redis, for deployments where several
// API replicas share one cache. Redis errors degrade to cache misses.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache connects to the given Redis address. A non-positive ttl
// defaults to one hour.
func NewRedisCache(addr string, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &RedisCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    ttl,
	}
}

// Get retrieves a decision result from Redis.
func (c *RedisCache) Get(ctx context.Context, id string) (*pipeline.Result, bool) {
	data, err := c.client.Get(ctx, redisKeyPrefix+id).Bytes()
	if err != nil {
		// redis.Nil and transport errors are both treated as a miss.
		return nil, false
	}
	var res pipeline.Result
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, false
	}
	return &res, true
}

// Put stores a decision result in Redis with the configured TTL.
func (c *RedisCache) Put(ctx context.Context, id string, res *pipeline.Result) {
	data, err := json.Marshal(res)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, redisKeyPrefix+id, data, c.ttl).Err()
}
