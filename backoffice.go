// Package backoffice is the data layer behind a bilingual corporate site and
// its admin back-office. It bundles the REST client, the permission-aware
// navigation gate, cache-synchronized mutations, locale-reactive fetching,
// and session persistence behind a single facade.
package backoffice

import (
	"context"

	"github.com/aldawaly/go-backoffice/internal/api"
	"github.com/aldawaly/go-backoffice/internal/di"
	"github.com/aldawaly/go-backoffice/internal/locale"
	"github.com/aldawaly/go-backoffice/internal/mutations"
	"github.com/aldawaly/go-backoffice/internal/navigation"
	"github.com/aldawaly/go-backoffice/internal/session"
	"github.com/aldawaly/go-backoffice/pkg/interfaces"
)

// Client exports the resource client for consumers of the backoffice package.
type Client = api.Client

// Navigator exports the host navigation contract the client redirects through.
type Navigator = api.Navigator

// Mutations exports the wired mutation suites.
type Mutations = mutations.Mutations

// SessionManager exports the session lifecycle manager.
type SessionManager = session.Manager

// LocaleResolver exports the shared locale resolver.
type LocaleResolver = locale.Resolver

// Gate exports the admin access gate.
type Gate = navigation.Gate

// NavItem exports the sidebar entry model.
type NavItem = navigation.Item

// Module is the top level back-office runtime facade.
type Module struct {
	container *di.Container
}

// New constructs the module from the provided configuration and optional DI
// overrides.
func New(ctx context.Context, cfg Config, opts ...Option) (*Module, error) {
	container, err := di.NewContainer(ctx, cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// API returns the configured resource client.
func (m *Module) API() *Client {
	return m.container.Client()
}

// Mutations returns the admin write suites.
func (m *Module) Mutations() *Mutations {
	return m.container.Mutations()
}

// Session returns the session manager.
func (m *Module) Session() *SessionManager {
	return m.container.Session()
}

// Locale returns the resolver public fetchers subscribe to.
func (m *Module) Locale() *LocaleResolver {
	return m.container.LocaleResolver()
}

// Routes returns the localized URL builder.
func (m *Module) Routes() *locale.Routes {
	return m.container.Routes()
}

// Gate returns the admin access gate.
func (m *Module) Gate() *Gate {
	return m.container.Gate()
}

// Cache returns the cache provider; nil when caching is disabled.
func (m *Module) Cache() interfaces.CacheProvider {
	return m.container.Cache()
}

// Sidebar returns the navigation tree pruned to the current user's grants.
func (m *Module) Sidebar() []*NavItem {
	return m.container.Gate().FilterTree(m.Session().CurrentUser(), navigation.DefaultTree())
}

// Close releases resources the module opened itself.
func (m *Module) Close() error {
	return m.container.Close()
}
