package cache

import (
	"context"
	"time"
)

// Store is a byte-oriented snapshot cache with per-entry TTL.
// Implementations may be in-memory or shared (Redis); callers treat the
// cache as an optimization only and must tolerate misses and errors.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}
