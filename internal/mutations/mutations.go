// Package mutations is the only path through which admin writes reach the
// backend. Every mutation validates its payload, executes against the API
// client, and — only after the backend confirms — evicts the mutated
// resource's cache key space and raises a success toast. Failures surface a
// single error toast and leave the cache untouched.
package mutations

import (
	command "github.com/goliatone/go-command"

	"github.com/aldawaly/go-backoffice/internal/api"
	"github.com/aldawaly/go-backoffice/internal/cache"
	"github.com/aldawaly/go-backoffice/internal/logging"
	"github.com/aldawaly/go-backoffice/internal/permissions"
	"github.com/aldawaly/go-backoffice/pkg/interfaces"
)

// Config carries the collaborators every mutation suite shares.
type Config struct {
	Client   *api.Client
	Cache    interfaces.CacheProvider
	Notifier interfaces.Notifier
	Logger   interfaces.Logger
	Tracker  *Tracker
}

func (c *Config) normalize() {
	if c.Logger == nil {
		c.Logger = logging.NoOp()
	}
	if c.Tracker == nil {
		c.Tracker = NewTracker()
	}
}

// Mutations groups the per-resource write suites behind one constructor.
type Mutations struct {
	News     *NewsMutations
	Products *ProductMutations
	Recipes  *RecipeMutations
	Books    *BookMutations
	Hero     *HeroMutations
	Users    *UserMutations

	tracker *Tracker
}

// New wires every resource suite against the shared client, cache, and
// notifier.
func New(cfg Config) *Mutations {
	if cfg.Client == nil {
		panic("mutations: client cannot be nil")
	}
	cfg.normalize()
	return &Mutations{
		News:     newNewsMutations(cfg),
		Products: newProductMutations(cfg),
		Recipes:  newRecipeMutations(cfg),
		Books:    newBookMutations(cfg),
		Hero:     newHeroMutations(cfg),
		Users:    newUserMutations(cfg),
		tracker:  cfg.Tracker,
	}
}

// Pending reports whether any mutation across the suites is in flight.
func (m *Mutations) Pending() bool {
	return m.tracker.Pending()
}

// cachePrefix keys that are not part of the permission enum still get a
// stable key space of their own.
const (
	booksPrefix = "books:"
	usersPrefix = "users:"
)

func resourcePrefix(res permissions.Resource) string {
	return cache.Prefix(string(res))
}

func newSuiteHandler[T command.Message](cfg Config, fn command.CommandFunc[T], prefix, operation, successMsg string) *Handler[T] {
	return NewHandler(fn,
		WithLogger[T](cfg.Logger),
		WithOperation[T](operation),
		WithInvalidation[T](cfg.Cache, func(T) []string { return []string{prefix} }),
		WithNotifier[T](cfg.Notifier, successMsg),
		WithPending[T](cfg.Tracker),
	)
}
