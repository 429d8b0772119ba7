package interfaces

import (
	"context"
	"time"
)

// CacheProvider stores query results keyed by opaque strings. Implementations
// must be safe for concurrent use.
type CacheProvider interface {
	Get(ctx context.Context, key string) (any, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	// DeleteByPrefix evicts every entry whose key begins with prefix. Mutation
	// layers rely on it to invalidate all filter variants of a resource list
	// in one call.
	DeleteByPrefix(ctx context.Context, prefix string) error
	Clear(ctx context.Context) error
}
