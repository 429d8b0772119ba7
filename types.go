package backoffice

import (
	"github.com/aldawaly/go-backoffice/internal/api"
	"github.com/aldawaly/go-backoffice/internal/cache"
	"github.com/aldawaly/go-backoffice/internal/content"
	"github.com/aldawaly/go-backoffice/internal/di"
	"github.com/aldawaly/go-backoffice/internal/fetch"
	"github.com/aldawaly/go-backoffice/internal/locale"
	"github.com/aldawaly/go-backoffice/internal/mutations"
	"github.com/aldawaly/go-backoffice/internal/navigation"
	"github.com/aldawaly/go-backoffice/internal/permissions"
	"github.com/aldawaly/go-backoffice/internal/session"
	"github.com/aldawaly/go-backoffice/pkg/interfaces"
)

// Bilingual exports the paired ar/en value every localized field uses.
type Bilingual = content.Bilingual

// ListOptions exports the list filter parameters.
type ListOptions = content.ListOptions

// News exports the news entity.
type News = content.News

// Product exports the product entity.
type Product = content.Product

// Recipe exports the recipe entity.
type Recipe = content.Recipe

// Book exports the book entity.
type Book = content.Book

// HeroSlide exports the home-page carousel entry.
type HeroSlide = content.HeroSlide

// NewsInput exports the news create/update payload.
type NewsInput = api.NewsInput

// ProductInput exports the product create/update payload.
type ProductInput = api.ProductInput

// RecipeInput exports the recipe create/update payload.
type RecipeInput = api.RecipeInput

// BookInput exports the book create/update payload.
type BookInput = api.BookInput

// HeroInput exports the hero slide create/update payload.
type HeroInput = api.HeroInput

// UserInput exports the user create/update payload.
type UserInput = api.UserInput

// Upload exports the multipart file part for submissions carrying media.
type Upload = api.Upload

// LoginResult exports the credentials returned by a successful login.
type LoginResult = api.LoginResult

// APIError exports the normalized backend error.
type APIError = api.Error

// Sentinels every normalized backend error unwraps to; match with errors.Is.
var (
	ErrUnauthenticated = api.ErrUnauthenticated
	ErrSessionExpired  = api.ErrSessionExpired
	ErrForbidden       = api.ErrForbidden
	ErrServer          = api.ErrServer
	ErrNetwork         = api.ErrNetwork
)

// SessionExpiredMessage is surfaced verbatim on HTTP 401.
const SessionExpiredMessage = api.SessionExpiredMessage

// UserMessage maps any error from this module to the text a toast shows.
var UserMessage = mutations.UserMessage

// Role exports the account role.
type Role = permissions.Role

// Level exports the per-resource access level.
type Level = permissions.Level

// Resource exports the closed set of permissioned content areas.
type Resource = permissions.Resource

// Grants exports the resource-to-level map carried by a user.
type Grants = permissions.Grants

// Permissions exports the grants envelope.
type Permissions = permissions.Permissions

// User exports the authenticated account.
type User = permissions.User

// Account roles.
const (
	RoleUser      = permissions.RoleUser
	RoleModerator = permissions.RoleModerator
	RoleAdmin     = permissions.RoleAdmin
)

// Access levels, ordered none < read < write.
const (
	LevelNone  = permissions.LevelNone
	LevelRead  = permissions.LevelRead
	LevelWrite = permissions.LevelWrite
)

// Permissioned resources.
const (
	ResourceNews     = permissions.ResourceNews
	ResourceRecipes  = permissions.ResourceRecipes
	ResourceProducts = permissions.ResourceProducts
	ResourceHero     = permissions.ResourceHero
)

// Grant checks, exported for hosts rendering their own chrome.
var (
	HasPermission = permissions.HasPermission
	IsAdmin       = permissions.IsAdmin
)

// Supported locales.
const (
	LocaleArabic  = locale.Arabic
	LocaleEnglish = locale.English
	LocaleDefault = locale.Default
)

// NavDecision exports the gate's per-page verdict.
type NavDecision = navigation.Decision

// NavDenied exports the denial detail a host renders on a blocked page.
type NavDenied = navigation.Denied

// DefaultNavTree exports the built-in sidebar tree before grant filtering.
var DefaultNavTree = navigation.DefaultTree

// SessionStore exports the session persistence contract.
type SessionStore = session.Store

// SessionSnapshot exports the persisted token/user pair.
type SessionSnapshot = session.Snapshot

// Notifier exports the toast contract mutations report through.
type Notifier = interfaces.Notifier

// NotifierFunc exports the function adapter for Notifier.
type NotifierFunc = interfaces.NotifierFunc

// Logger exports the leveled logging contract.
type Logger = interfaces.Logger

// LoggerProvider exports the per-module logger factory contract.
type LoggerProvider = interfaces.LoggerProvider

// CacheProvider exports the cache contract mutations invalidate through.
type CacheProvider = interfaces.CacheProvider

// Cache key builders, exported for hosts wiring read-through fetchers.
var (
	ListKey       = cache.ListKey
	ItemKey       = cache.ItemKey
	CategoriesKey = cache.CategoriesKey
)

// Option exports the DI overrides accepted by New.
type Option = di.Option

// DI overrides, re-exported so hosts can wire their own notifier,
// navigator, cache, session store, or database.
var (
	WithLoggerProvider = di.WithLoggerProvider
	WithCache          = di.WithCache
	WithNotifier       = di.WithNotifier
	WithNavigator      = di.WithNavigator
	WithSessionStore   = di.WithSessionStore
	WithBunDB          = di.WithBunDB
)

// Fetcher exports the locale-reactive public-page query.
type Fetcher[T any] = fetch.Fetcher[T]

// FetchState exports the snapshot a view renders from.
type FetchState[T any] = fetch.State[T]

// LoadFunc exports the query a Fetcher runs.
type LoadFunc[T any] = fetch.LoadFunc[T]

// FetchOption exports the Fetcher configuration hooks.
type FetchOption[T any] = fetch.Option[T]

// NewFetcher binds a query to the resolver's active locale.
func NewFetcher[T any](resolver *LocaleResolver, load LoadFunc[T], opts ...FetchOption[T]) *Fetcher[T] {
	return fetch.NewFetcher(resolver, load, opts...)
}

// WithFetchLogger injects the logger used by background refetches.
func WithFetchLogger[T any](logger Logger) FetchOption[T] {
	return fetch.WithLogger[T](logger)
}

// WithFetchCache enables read-through caching keyed by locale and filters.
func WithFetchCache[T any](store CacheProvider, key func(loc string, opts ListOptions) string) FetchOption[T] {
	return fetch.WithCache[T](store, key)
}

// WithFetchOptions sets the initial filter parameters.
func WithFetchOptions[T any](opts ListOptions) FetchOption[T] {
	return fetch.WithOptions[T](opts)
}
