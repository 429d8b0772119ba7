// Package di wires the back-office data layer from a validated runtime
// configuration: logging provider, session store, API client, cache,
// mutation suites, and the navigation gate.
package di

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"github.com/aldawaly/go-backoffice/internal/api"
	"github.com/aldawaly/go-backoffice/internal/cache"
	"github.com/aldawaly/go-backoffice/internal/locale"
	"github.com/aldawaly/go-backoffice/internal/logging"
	"github.com/aldawaly/go-backoffice/internal/logging/gologger"
	"github.com/aldawaly/go-backoffice/internal/mutations"
	"github.com/aldawaly/go-backoffice/internal/navigation"
	"github.com/aldawaly/go-backoffice/internal/runtimeconfig"
	"github.com/aldawaly/go-backoffice/internal/session"
	"github.com/aldawaly/go-backoffice/pkg/interfaces"
)

// Container wires module dependencies.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	cacheProvider  interfaces.CacheProvider
	notifier       interfaces.Notifier
	navigator      api.Navigator

	sessionStore session.Store
	sessionMgr   *session.Manager

	bunDB    *bun.DB
	ownsDB   bool
	resolver *locale.Resolver
	routes   *locale.Routes
	client   *api.Client
	writes   *mutations.Mutations
	gate     *navigation.Gate
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithLoggerProvider overrides the configured logging provider.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithCache overrides the default cache provider.
func WithCache(provider interfaces.CacheProvider) Option {
	return func(c *Container) {
		c.cacheProvider = provider
	}
}

// WithNotifier installs the toast surface mutations report through.
func WithNotifier(notifier interfaces.Notifier) Option {
	return func(c *Container) {
		c.notifier = notifier
	}
}

// WithNavigator installs the host's navigation surface; the client uses it
// to redirect to the login view when a session expires.
func WithNavigator(nav api.Navigator) Option {
	return func(c *Container) {
		c.navigator = nav
	}
}

// WithSessionStore overrides the configured session persistence.
func WithSessionStore(store session.Store) Option {
	return func(c *Container) {
		c.sessionStore = store
	}
}

// WithBunDB supplies an already-open database for the bun session provider.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// NewContainer validates the configuration and builds the full data layer.
func NewContainer(ctx context.Context, cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Container{Config: cfg}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.buildLogging(); err != nil {
		return nil, err
	}
	if err := c.buildSession(ctx); err != nil {
		return nil, err
	}
	c.buildCache()
	c.buildClient()
	c.buildMutations()
	c.gate = navigation.NewGate(navigation.WithLogger(logging.NavigationLogger(c.loggerProvider)))
	return c, nil
}

func (c *Container) buildLogging() error {
	if c.loggerProvider != nil {
		return nil
	}
	if !c.Config.Features.Logger {
		c.loggerProvider = noopProvider{}
		return nil
	}
	format := c.Config.Logging.Format
	if strings.EqualFold(strings.TrimSpace(c.Config.Logging.Provider), "console") && format == "" {
		format = "console"
	}
	provider, err := gologger.NewProvider(gologger.Config{
		Level:     c.Config.Logging.Level,
		Format:    format,
		AddSource: c.Config.Logging.AddSource,
		Focus:     c.Config.Logging.Focus,
	})
	if err != nil {
		return fmt.Errorf("di: build logging: %w", err)
	}
	c.loggerProvider = provider
	return nil
}

func (c *Container) buildSession(ctx context.Context) error {
	if c.sessionStore == nil {
		switch strings.ToLower(strings.TrimSpace(c.Config.Session.Provider)) {
		case "bun":
			db := c.bunDB
			if db == nil {
				sqldb, err := sql.Open("sqlite3", c.Config.Session.DSN)
				if err != nil {
					return fmt.Errorf("di: open session database: %w", err)
				}
				db = bun.NewDB(sqldb, sqlitedialect.New())
				c.bunDB = db
				c.ownsDB = true
			}
			store, err := session.NewBunStore(ctx, db)
			if err != nil {
				return fmt.Errorf("di: build session store: %w", err)
			}
			c.sessionStore = store
		default:
			c.sessionStore = session.NewMemoryStore()
		}
	}

	mgr, err := session.NewManager(ctx, c.sessionStore,
		session.WithLogger(logging.SessionLogger(c.loggerProvider)),
	)
	if err != nil {
		return fmt.Errorf("di: build session manager: %w", err)
	}
	c.sessionMgr = mgr
	return nil
}

func (c *Container) buildCache() {
	if c.cacheProvider == nil && c.Config.Cache.Enabled {
		c.cacheProvider = cache.NewMemory()
	}
}

func (c *Container) buildClient() {
	c.resolver = locale.NewResolver(c.Config.DefaultLocale)

	routeConfig := c.Config.Navigation.RouteConfig
	if routeConfig == nil {
		routeConfig = locale.DefaultRouteConfig()
	}
	c.routes = locale.NewRoutes(routeConfig)

	clientOpts := []api.Option{
		api.WithTokenSource(c.sessionMgr),
		api.WithSessionExpirer(c.sessionMgr),
		api.WithLocaleResolver(c.resolver),
		api.WithRoutes(c.routes),
		api.WithLogger(logging.APILogger(c.loggerProvider)),
	}
	if c.Config.Timeout > 0 {
		clientOpts = append(clientOpts, api.WithTimeout(c.Config.Timeout))
	}
	if c.navigator != nil {
		clientOpts = append(clientOpts, api.WithNavigator(c.navigator))
	}
	c.client = api.New(c.Config.BaseURL, clientOpts...)
}

func (c *Container) buildMutations() {
	c.writes = mutations.New(mutations.Config{
		Client:   c.client,
		Cache:    c.cacheProvider,
		Notifier: c.notifier,
		Logger:   logging.MutationsLogger(c.loggerProvider),
		Tracker:  mutations.NewTracker(),
	})
}

// Client returns the configured API client.
func (c *Container) Client() *api.Client { return c.client }

// Mutations returns the wired mutation suites.
func (c *Container) Mutations() *mutations.Mutations { return c.writes }

// Session returns the session manager.
func (c *Container) Session() *session.Manager { return c.sessionMgr }

// Cache returns the cache provider; nil when caching is disabled.
func (c *Container) Cache() interfaces.CacheProvider { return c.cacheProvider }

// LocaleResolver returns the shared locale resolver.
func (c *Container) LocaleResolver() *locale.Resolver { return c.resolver }

// Routes returns the localized URL builder.
func (c *Container) Routes() *locale.Routes { return c.routes }

// Gate returns the admin navigation gate.
func (c *Container) Gate() *navigation.Gate { return c.gate }

// LoggerProvider exposes the logging provider for host integrations.
func (c *Container) LoggerProvider() interfaces.LoggerProvider { return c.loggerProvider }

// Close releases resources the container opened itself. Databases supplied
// through WithBunDB stay open.
func (c *Container) Close() error {
	if c.ownsDB && c.bunDB != nil {
		return c.bunDB.Close()
	}
	return nil
}

type noopProvider struct{}

func (noopProvider) GetLogger(string) interfaces.Logger { return logging.NoOp() }
