package session

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"github.com/aldawaly/go-backoffice/internal/permissions"
	_ "github.com/mattn/go-sqlite3"
)

func testUser() *permissions.User {
	return &permissions.User{
		ID:   "u-1",
		Name: "Admin",
		Role: permissions.RoleAdmin,
	}
}

func TestManager_LoginLogout(t *testing.T) {
	ctx := context.Background()
	m, err := NewManager(ctx, NewMemoryStore())
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}

	if m.Token() != "" || m.CurrentUser() != nil {
		t.Fatal("cold start must be unauthenticated")
	}

	if err := m.Login(ctx, "tok-1", testUser()); err != nil {
		t.Fatalf("login: %v", err)
	}
	if m.Token() != "tok-1" {
		t.Fatalf("expected token tok-1, got %q", m.Token())
	}
	if user := m.CurrentUser(); user == nil || user.ID != "u-1" {
		t.Fatalf("unexpected user: %+v", user)
	}

	if err := m.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if m.Token() != "" || m.CurrentUser() != nil {
		t.Fatal("logout must clear token and user")
	}
}

func TestManager_LoginRequiresToken(t *testing.T) {
	ctx := context.Background()
	m, err := NewManager(ctx, NewMemoryStore())
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	if err := m.Login(ctx, "", testUser()); !errors.Is(err, ErrTokenMissing) {
		t.Fatalf("expected ErrTokenMissing, got %v", err)
	}
}

func TestManager_HandleExpiryIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	m, err := NewManager(ctx, store)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	if err := m.Login(ctx, "tok-1", testUser()); err != nil {
		t.Fatalf("login: %v", err)
	}

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.HandleExpiry(ctx)
		}()
	}
	wg.Wait()

	if m.Token() != "" {
		t.Fatal("expiry must clear the token")
	}
	if _, err := store.Load(ctx); !errors.Is(err, ErrNoSession) {
		t.Fatalf("store must be cleared, got %v", err)
	}
}

func TestManager_ResumesPersistedSession(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	first, err := NewManager(ctx, store)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	if err := first.Login(ctx, "tok-9", testUser()); err != nil {
		t.Fatalf("login: %v", err)
	}

	second, err := NewManager(ctx, store)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	if second.Token() != "tok-9" {
		t.Fatal("restarted manager must resume the persisted session")
	}
}

func newTestDB(t *testing.T) *bun.DB {
	t.Helper()

	sqldb, err := sql.Open("sqlite3", "file:session_test?mode=memory&cache=shared&_fk=1")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = sqldb.Close() })

	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestBunStore_RoundTrip(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	store, err := NewBunStore(ctx, newTestDB(t))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if _, err := store.Load(ctx); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession on empty store, got %v", err)
	}

	user := testUser()
	user.Permissions = &permissions.Permissions{
		Resources: permissions.Grants{permissions.ResourceNews: permissions.LevelWrite},
	}
	if err := store.Save(ctx, Snapshot{Token: "tok-1", User: user}); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Token != "tok-1" {
		t.Fatalf("expected token tok-1, got %q", loaded.Token)
	}
	if loaded.User == nil || loaded.User.Permissions == nil {
		t.Fatalf("user grants must round-trip, got %+v", loaded.User)
	}
	if loaded.User.Permissions.Resources[permissions.ResourceNews] != permissions.LevelWrite {
		t.Fatal("news grant must survive the round trip")
	}

	// Save over the existing row, then clear.
	if err := store.Save(ctx, Snapshot{Token: "tok-2", User: nil}); err != nil {
		t.Fatalf("second save: %v", err)
	}
	loaded, err = store.Load(ctx)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded.Token != "tok-2" || loaded.User != nil {
		t.Fatalf("overwrite must replace the row, got %+v", loaded)
	}

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := store.Load(ctx); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession after clear, got %v", err)
	}
}
