// Package cache holds query results fetched from the backend so admin list
// views survive navigation without refetching. Consistency comes from
// invalidation, not patching: every settled mutation evicts the mutated
// resource's key space before anyone reads again.
package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/aldawaly/go-backoffice/pkg/interfaces"
)

// DefaultTTL bounds how long an admin list entry is served without a
// refetch even when no mutation touched it.
const DefaultTTL = 5 * time.Minute

// ErrMiss is returned by Get when the key is absent or expired.
var ErrMiss = missError{}

type missError struct{}

func (missError) Error() string { return "cache: miss" }

// ListKey builds the cache key for a resource list with its filter
// variant. An empty variant addresses the unfiltered list.
func ListKey(resource, variant string) string {
	if variant == "" {
		return resource + ":list"
	}
	return resource + ":list:" + variant
}

// CategoriesKey builds the cache key for a resource's distinct category
// list. Category keys live under the owning resource's prefix, so any
// mutation of that resource evicts them along with the entity lists.
func CategoriesKey(resource string) string {
	return resource + ":categories"
}

// ItemKey builds the cache key for a single entity.
func ItemKey(resource, id string) string {
	return resource + ":item:" + id
}

// Prefix is the base every key for a resource starts with; mutations
// invalidate it wholesale so no stale filter variant survives.
func Prefix(resource string) string {
	return resource + ":"
}

type entry struct {
	value     any
	expiresAt time.Time
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// Memory is the in-process CacheProvider used by default. Safe for
// concurrent use.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

var _ interfaces.CacheProvider = (*Memory)(nil)

// NewMemory returns an empty in-memory cache.
func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

func (m *Memory) Get(_ context.Context, key string) (any, error) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrMiss
	}
	if e.expired(m.now()) {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		return nil, ErrMiss
	}
	return e.value, nil
}

func (m *Memory) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	e := entry{value: value}
	if ttl > 0 {
		e.expiresAt = m.now().Add(ttl)
	}
	m.mu.Lock()
	m.entries[key] = e
	m.mu.Unlock()
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
	return nil
}

func (m *Memory) DeleteByPrefix(_ context.Context, prefix string) error {
	if prefix == "" {
		return nil
	}
	m.mu.Lock()
	for key := range m.entries {
		if strings.HasPrefix(key, prefix) {
			delete(m.entries, key)
		}
	}
	m.mu.Unlock()
	return nil
}

func (m *Memory) Clear(_ context.Context) error {
	m.mu.Lock()
	m.entries = make(map[string]entry)
	m.mu.Unlock()
	return nil
}

// Len reports the number of live entries. Intended for tests and metrics.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
