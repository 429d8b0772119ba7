package di

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"github.com/aldawaly/go-backoffice/internal/permissions"
	"github.com/aldawaly/go-backoffice/internal/runtimeconfig"
)

func baseConfig() runtimeconfig.Config {
	cfg := runtimeconfig.DefaultConfig()
	cfg.BaseURL = "https://api.example.com"
	return cfg
}

func TestNewContainer_WiresDefaults(t *testing.T) {
	c, err := NewContainer(context.Background(), baseConfig())
	if err != nil {
		t.Fatalf("new container: %v", err)
	}
	defer c.Close()

	if c.Client() == nil {
		t.Fatal("client must be wired")
	}
	if c.Mutations() == nil {
		t.Fatal("mutations must be wired")
	}
	if c.Session() == nil {
		t.Fatal("session manager must be wired")
	}
	if c.Cache() == nil {
		t.Fatal("cache defaults to enabled")
	}
	if c.Gate() == nil {
		t.Fatal("gate must be wired")
	}
	if c.LocaleResolver() == nil || c.Routes() == nil {
		t.Fatal("locale plumbing must be wired")
	}
}

func TestNewContainer_CacheDisabled(t *testing.T) {
	cfg := baseConfig()
	cfg.Cache.Enabled = false

	c, err := NewContainer(context.Background(), cfg)
	if err != nil {
		t.Fatalf("new container: %v", err)
	}
	defer c.Close()

	if c.Cache() != nil {
		t.Fatal("cache must stay nil when disabled")
	}
}

func TestNewContainer_RejectsInvalidConfig(t *testing.T) {
	if _, err := NewContainer(context.Background(), runtimeconfig.DefaultConfig()); !errors.Is(err, runtimeconfig.ErrBaseURLRequired) {
		t.Fatalf("expected ErrBaseURLRequired, got %v", err)
	}
}

func TestNewContainer_BunSessionProvider(t *testing.T) {
	ctx := context.Background()
	sqldb, err := sql.Open("sqlite3", "file:di_container_test?mode=memory&cache=shared&_fk=1")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db := bun.NewDB(sqldb, sqlitedialect.New())

	cfg := baseConfig()
	cfg.Session.Provider = "bun"
	cfg.Session.DSN = "unused-with-injected-db"

	c, err := NewContainer(ctx, cfg, WithBunDB(db))
	if err != nil {
		t.Fatalf("new container: %v", err)
	}
	defer c.Close()

	user := &permissions.User{ID: "u-1", Role: permissions.RoleAdmin}
	if err := c.Session().Login(ctx, "tok-persist", user); err != nil {
		t.Fatalf("login: %v", err)
	}

	// A second container over the same database resumes the session.
	resumed, err := NewContainer(ctx, cfg, WithBunDB(db))
	if err != nil {
		t.Fatalf("resume container: %v", err)
	}
	if resumed.Session().Token() != "tok-persist" {
		t.Fatalf("expected persisted token, got %q", resumed.Session().Token())
	}
}
