package backoffice

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/aldawaly/go-backoffice/internal/api"
	"github.com/aldawaly/go-backoffice/internal/content"
	"github.com/aldawaly/go-backoffice/internal/di"
	"github.com/aldawaly/go-backoffice/internal/permissions"
)

type toastRecorder struct {
	mu        sync.Mutex
	successes []string
	failures  []string
}

func (r *toastRecorder) Success(_ context.Context, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.successes = append(r.successes, msg)
}

func (r *toastRecorder) Error(_ context.Context, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures = append(r.failures, msg)
}

type browserStub struct {
	path     string
	redirect string
}

func (b *browserStub) CurrentPath() string  { return b.path }
func (b *browserStub) Redirect(path string) { b.redirect = path }

func newBackend(t *testing.T, expire *atomic.Bool) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"token":"tok-live","user":{"_id":"u-1","name":"Mona","role":"moderator","permissions":{"resources":{"news":"write"}}}}}`))
	})
	mux.HandleFunc("/news", func(w http.ResponseWriter, r *http.Request) {
		if expire.Load() {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.Method == http.MethodPost {
			_, _ = w.Write([]byte(`{"data":{"_id":"n-1","slug":"grand-opening"}}`))
			return
		}
		_, _ = w.Write([]byte(`{"data":[]}`))
	})
	mux.HandleFunc("/news/admin/all", func(w http.ResponseWriter, r *http.Request) {
		if expire.Load() || r.Header.Get("Authorization") != "Bearer tok-live" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"data":[{"_id":"n-1","slug":"grand-opening"}]}`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestModule_LoginMutateAndExpire(t *testing.T) {
	ctx := context.Background()
	var expire atomic.Bool
	server := newBackend(t, &expire)

	toasts := &toastRecorder{}
	browser := &browserStub{path: "/ar/admin/news"}

	cfg := DefaultConfig()
	cfg.BaseURL = server.URL

	m, err := New(ctx, cfg, di.WithNotifier(toasts), di.WithNavigator(browser))
	if err != nil {
		t.Fatalf("new module: %v", err)
	}
	defer m.Close()

	result, err := m.API().Auth().Login(ctx, "mona@example.com", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := m.Session().Login(ctx, result.Token, result.User); err != nil {
		t.Fatalf("persist session: %v", err)
	}

	items, err := m.API().News().AdminList(ctx)
	if err != nil {
		t.Fatalf("admin list: %v", err)
	}
	if len(items) != 1 || items[0].Slug != "grand-opening" {
		t.Fatalf("unexpected items: %+v", items)
	}

	sidebar := m.Sidebar()
	var sawNews, sawUsers bool
	for _, item := range sidebar {
		if item.Key == "users" {
			sawUsers = true
		}
		for _, child := range item.Children {
			if child.Key == "news" {
				sawNews = true
			}
		}
	}
	if !sawNews {
		t.Fatal("moderator with a news grant must see the news entry")
	}
	if sawUsers {
		t.Fatal("moderators must not see user management")
	}

	created, err := m.Mutations().News.Create(ctx, api.NewsInput{
		Title:       content.Bilingual{AR: "افتتاح", EN: "Grand opening"},
		Description: content.Bilingual{AR: "وصف", EN: "Description"},
		Slug:        "grand-opening",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != "n-1" {
		t.Fatalf("unexpected item: %+v", created)
	}
	if len(toasts.successes) != 1 || toasts.successes[0] != "News item created" {
		t.Fatalf("unexpected toasts: %+v", toasts.successes)
	}

	// The backend starts rejecting the token.
	expire.Store(true)
	_, err = m.API().News().AdminList(ctx)
	if !errors.Is(err, api.ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
	if m.Session().Token() != "" {
		t.Fatal("expired session must be cleared")
	}
	if browser.redirect != "/ar/login" {
		t.Fatalf("expected redirect to /ar/login, got %q", browser.redirect)
	}
	if m.Sidebar() != nil && len(m.Sidebar()) != 0 {
		t.Fatalf("signed-out users see no sidebar, got %d entries", len(m.Sidebar()))
	}
}

func TestModule_GatePagesFollowGrants(t *testing.T) {
	ctx := context.Background()
	var expire atomic.Bool
	server := newBackend(t, &expire)

	cfg := DefaultConfig()
	cfg.BaseURL = server.URL

	m, err := New(ctx, cfg)
	if err != nil {
		t.Fatalf("new module: %v", err)
	}
	defer m.Close()

	user := &permissions.User{
		ID:          "u-2",
		Role:        permissions.RoleModerator,
		Permissions: &permissions.Permissions{Resources: permissions.Grants{permissions.ResourceHero: permissions.LevelRead}},
	}
	if err := m.Session().Login(ctx, "tok-live", user); err != nil {
		t.Fatalf("login: %v", err)
	}

	if d := m.Gate().Page(user, permissions.ResourceHero, permissions.LevelRead); !d.Allowed {
		t.Fatal("read grant must open the hero page")
	}
	if d := m.Gate().Page(user, permissions.ResourceHero, permissions.LevelWrite); d.Allowed {
		t.Fatal("read grant must not open the hero editor")
	}
	d := m.Gate().Page(user, permissions.ResourceNews, permissions.LevelRead)
	if d.Allowed {
		t.Fatal("missing grant must deny")
	}
	if d.Denied.Role != permissions.RoleModerator {
		t.Fatalf("denial must carry the role, got %q", d.Denied.Role)
	}
}

func TestModule_RejectsInvalidConfig(t *testing.T) {
	if _, err := New(context.Background(), DefaultConfig()); !errors.Is(err, ErrBaseURLRequired) {
		t.Fatalf("expected ErrBaseURLRequired, got %v", err)
	}
}
