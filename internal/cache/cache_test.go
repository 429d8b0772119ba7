package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemory_GetSetDelete(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	if _, err := m.Get(ctx, ListKey("news", "")); !errors.Is(err, ErrMiss) {
		t.Fatalf("expected miss, got %v", err)
	}

	if err := m.Set(ctx, ListKey("news", ""), []string{"a"}, 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	got, err := m.Get(ctx, ListKey("news", ""))
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if items, ok := got.([]string); !ok || len(items) != 1 || items[0] != "a" {
		t.Fatalf("unexpected value: %#v", got)
	}

	if err := m.Delete(ctx, ListKey("news", "")); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := m.Get(ctx, ListKey("news", "")); !errors.Is(err, ErrMiss) {
		t.Fatalf("expected miss after delete, got %v", err)
	}
}

func TestMemory_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	current := time.Unix(1000, 0)
	m.now = func() time.Time { return current }

	if err := m.Set(ctx, ItemKey("products", "p-1"), "v", time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if _, err := m.Get(ctx, ItemKey("products", "p-1")); err != nil {
		t.Fatalf("expected hit before expiry: %v", err)
	}

	current = current.Add(2 * time.Minute)
	if _, err := m.Get(ctx, ItemKey("products", "p-1")); !errors.Is(err, ErrMiss) {
		t.Fatalf("expected miss after expiry, got %v", err)
	}
	if m.Len() != 0 {
		t.Fatalf("expired entry must be dropped, have %d", m.Len())
	}
}

func TestMemory_DeleteByPrefix(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	seed := []string{
		ListKey("news", ""),
		ListKey("news", "search=farm&page=2"),
		ItemKey("news", "n-1"),
		ListKey("products", ""),
	}
	for _, key := range seed {
		if err := m.Set(ctx, key, "v", 0); err != nil {
			t.Fatalf("set %q failed: %v", key, err)
		}
	}

	if err := m.DeleteByPrefix(ctx, Prefix("news")); err != nil {
		t.Fatalf("invalidate failed: %v", err)
	}

	for _, key := range seed[:3] {
		if _, err := m.Get(ctx, key); !errors.Is(err, ErrMiss) {
			t.Fatalf("key %q must be evicted", key)
		}
	}
	if _, err := m.Get(ctx, ListKey("products", "")); err != nil {
		t.Fatalf("unrelated resource must survive: %v", err)
	}
}

func TestMemory_DeleteByPrefixEmptyPrefixIsNoop(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	if err := m.Set(ctx, ListKey("hero", ""), "v", 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := m.DeleteByPrefix(ctx, ""); err != nil {
		t.Fatalf("invalidate failed: %v", err)
	}
	if m.Len() != 1 {
		t.Fatal("empty prefix must not clear the cache")
	}
}
