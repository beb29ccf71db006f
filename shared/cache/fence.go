package cache

import (
	"context"
	"sync"
)

// Fence orders read-through saves against write invalidations. A reader takes the
// generation before loading from the database and saves only if no invalidation ran
// since; a save that slipped in earlier is removed by that invalidation.
type Fence struct {
	mu         sync.RWMutex
	generation uint64
}

func NewFence() *Fence {
	return &Fence{}
}

func (f *Fence) Generation() uint64 {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.generation
}

// Save stores value under key unless a write invalidated the cache after generation was taken.
// It reports whether the value was stored.
func (f *Fence) Save(ctx context.Context, redisCache RedisCache, key string, value any, ttl int, generation uint64) (bool, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.generation != generation {
		return false, nil
	}

	if err := redisCache.Save(ctx, key, value, ttl); err != nil {
		return false, err //nolint:wrapcheck
	}

	return true, nil
}

// Invalidate advances the generation and runs drop with saves held off.
func (f *Fence) Invalidate(drop func()) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.generation++

	drop()
}
