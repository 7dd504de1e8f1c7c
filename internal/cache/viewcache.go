package cache

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/karan/societyhub/internal/pkg/logger"
)

// Collection names used as view-cache keys. Admin and resident views of the
// same entity overlap, so a mutation invalidates the whole collection.
const (
	ViewResidents   = "views:residents"
	ViewProperties  = "views:properties"
	ViewBills       = "views:bills"
	ViewPayments    = "views:payments"
	ViewMaintenance = "views:maintenance"
	ViewEvents      = "views:events"
)

// ViewCache caches rendered list views keyed by collection. Backed by Redis
// when a REDIS_URL is configured, by a process-local map otherwise. Entries
// carry a TTL as a backstop against missed invalidations.
type ViewCache struct {
	client *redis.Client
	ttl    time.Duration

	mu    sync.RWMutex
	local map[string]localEntry
}

type localEntry struct {
	payload   []byte
	expiresAt time.Time
}

// NewViewCache creates a view cache. redisURL may be empty.
func NewViewCache(redisURL string, ttl time.Duration) (*ViewCache, error) {
	c := &ViewCache{
		ttl:   ttl,
		local: make(map[string]localEntry),
	}

	if redisURL != "" {
		opt, err := redis.ParseURL(redisURL)
		if err != nil {
			return nil, err
		}
		c.client = redis.NewClient(opt)
	}

	return c, nil
}

// Get returns the cached payload for a collection, or nil on a miss
func (c *ViewCache) Get(ctx context.Context, collection string) []byte {
	if c.client != nil {
		payload, err := c.client.Get(ctx, collection).Bytes()
		if err == redis.Nil {
			return nil
		}
		if err != nil {
			logger.Warn().Err(err).Str("collection", collection).Msg("View cache read failed")
			return nil
		}
		return payload
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.local[collection]
	if !ok || time.Now().After(entry.expiresAt) {
		return nil
	}
	return entry.payload
}

// Set stores a rendered payload for a collection
func (c *ViewCache) Set(ctx context.Context, collection string, payload []byte) {
	if c.client != nil {
		if err := c.client.Set(ctx, collection, payload, c.ttl).Err(); err != nil {
			logger.Warn().Err(err).Str("collection", collection).Msg("View cache write failed")
		}
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.local[collection] = localEntry{
		payload:   payload,
		expiresAt: time.Now().Add(c.ttl),
	}
}

// Invalidate drops the cached views for the given collections. Best effort:
// a failed invalidation only shortens to the TTL backstop.
func (c *ViewCache) Invalidate(ctx context.Context, collections ...string) {
	if c.client != nil {
		if err := c.client.Del(ctx, collections...).Err(); err != nil {
			logger.Warn().Err(err).Strs("collections", collections).Msg("View cache invalidation failed")
		}
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, collection := range collections {
		delete(c.local, collection)
	}
}

// Close releases the Redis client when one is configured
func (c *ViewCache) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}
