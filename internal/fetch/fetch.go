// Package fetch drives public-page reads. A Fetcher owns one query — a load
// function plus its filter parameters — and re-runs it whenever the active
// locale or the parameters change. Responses are generation-stamped: a reply
// belonging to a superseded request is dropped wholesale, so a slow Arabic
// response can never overwrite English data the visitor already switched to.
package fetch

import (
	"context"
	"sync"

	"github.com/aldawaly/go-backoffice/internal/cache"
	"github.com/aldawaly/go-backoffice/internal/content"
	"github.com/aldawaly/go-backoffice/internal/locale"
	"github.com/aldawaly/go-backoffice/internal/logging"
	"github.com/aldawaly/go-backoffice/pkg/interfaces"
)

// LoadFunc resolves one page of data for the given locale and filters.
type LoadFunc[T any] func(ctx context.Context, loc string, opts content.ListOptions) (T, error)

// State is the snapshot a view renders from. Data holds the zero value
// until a request succeeds, and resets to it when one fails.
type State[T any] struct {
	Loading bool
	Err     error
	Data    T
}

// Option configures a Fetcher.
type Option[T any] func(*Fetcher[T])

// WithLogger injects the logger used by background refetches.
func WithLogger[T any](logger interfaces.Logger) Option[T] {
	return func(f *Fetcher[T]) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithCache enables read-through caching. key derives the cache key from the
// locale and the active filters.
func WithCache[T any](store interfaces.CacheProvider, key func(loc string, opts content.ListOptions) string) Option[T] {
	return func(f *Fetcher[T]) {
		f.cache = store
		f.cacheKey = key
	}
}

// WithOptions sets the initial filter parameters.
func WithOptions[T any](opts content.ListOptions) Option[T] {
	return func(f *Fetcher[T]) {
		f.opts = opts
	}
}

// Fetcher runs a single query against the backend and republishes its state
// to subscribers. Safe for concurrent use.
type Fetcher[T any] struct {
	load     LoadFunc[T]
	resolver *locale.Resolver
	logger   interfaces.Logger
	cache    interfaces.CacheProvider
	cacheKey func(loc string, opts content.ListOptions) string

	mu          sync.Mutex
	gen         uint64
	published   uint64
	opts        content.ListOptions
	state       State[T]
	subscribers map[int]func(State[T])
	nextSub     int
	stop        func()

	// notifyMu serializes deliveries so listeners observe snapshots in
	// publication order.
	notifyMu sync.Mutex
}

// NewFetcher binds the query to the resolver's active locale. It does not
// fetch until Refresh is called; construct, subscribe, then refresh.
func NewFetcher[T any](resolver *locale.Resolver, load LoadFunc[T], opts ...Option[T]) *Fetcher[T] {
	if load == nil {
		panic("fetch: load function cannot be nil")
	}
	f := &Fetcher[T]{
		load:        load,
		resolver:    resolver,
		logger:      logging.NoOp(),
		subscribers: make(map[int]func(State[T])),
	}
	for _, opt := range opts {
		opt(f)
	}
	if resolver != nil {
		f.stop = resolver.Subscribe(func(string) {
			go f.Refresh(context.Background())
		})
	}
	return f
}

// State returns the current snapshot.
func (f *Fetcher[T]) State() State[T] {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Options returns the active filter parameters.
func (f *Fetcher[T]) Options() content.ListOptions {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.opts
}

// Subscribe registers a listener invoked on every state change. Listeners
// run on the refreshing goroutine and must not call back into the Fetcher
// synchronously. The returned function removes the listener.
func (f *Fetcher[T]) Subscribe(fn func(State[T])) func() {
	f.mu.Lock()
	id := f.nextSub
	f.nextSub++
	f.subscribers[id] = fn
	f.mu.Unlock()
	return func() {
		f.mu.Lock()
		delete(f.subscribers, id)
		f.mu.Unlock()
	}
}

// SetOptions replaces the filter parameters and refetches. The parameters are
// captured by value when the request starts, so late edits never leak into an
// in-flight request.
func (f *Fetcher[T]) SetOptions(ctx context.Context, opts content.ListOptions) {
	f.mu.Lock()
	f.opts = opts
	f.mu.Unlock()
	f.Refresh(ctx)
}

// Refresh re-runs the query with the active locale and parameters. A refresh
// started later supersedes this one: if another call begins before this one's
// response lands, the response is discarded without touching state.
func (f *Fetcher[T]) Refresh(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}

	loc := locale.Default
	if f.resolver != nil {
		loc = f.resolver.Current()
	}

	f.mu.Lock()
	f.gen++
	gen := f.gen
	opts := f.opts
	f.state.Loading = true
	f.state.Err = nil
	snapshot := f.state
	f.mu.Unlock()
	f.notify(gen, snapshot)

	if data, ok := f.fromCache(ctx, loc, opts); ok {
		f.settle(gen, data, nil)
		return
	}

	data, err := f.load(ctx, loc, opts)
	if err != nil {
		f.logger.Warn("fetch.load.failed", "locale", loc, "error", err)
		var zero T
		f.settle(gen, zero, err)
		return
	}
	f.toCache(ctx, loc, opts, data)
	f.settle(gen, data, nil)
}

// Close detaches the fetcher from locale changes.
func (f *Fetcher[T]) Close() {
	if f.stop != nil {
		f.stop()
		f.stop = nil
	}
}

func (f *Fetcher[T]) settle(gen uint64, data T, err error) {
	f.mu.Lock()
	if gen != f.gen {
		// Superseded; a newer request owns the state now.
		f.mu.Unlock()
		return
	}
	f.state = State[T]{Data: data, Err: err}
	snapshot := f.state
	f.mu.Unlock()
	f.notify(gen, snapshot)
}

// notify delivers a snapshot stamped with the refresh generation that
// produced it. Snapshots older than the last published one are dropped, so
// a straggling loading notification can never land after the winning
// refresh settled.
func (f *Fetcher[T]) notify(gen uint64, state State[T]) {
	f.notifyMu.Lock()
	defer f.notifyMu.Unlock()

	f.mu.Lock()
	if gen < f.published {
		f.mu.Unlock()
		return
	}
	f.published = gen
	listeners := make([]func(State[T]), 0, len(f.subscribers))
	for _, fn := range f.subscribers {
		listeners = append(listeners, fn)
	}
	f.mu.Unlock()
	for _, fn := range listeners {
		fn(state)
	}
}

func (f *Fetcher[T]) fromCache(ctx context.Context, loc string, opts content.ListOptions) (T, bool) {
	var zero T
	if f.cache == nil || f.cacheKey == nil {
		return zero, false
	}
	value, err := f.cache.Get(ctx, f.cacheKey(loc, opts))
	if err != nil {
		return zero, false
	}
	data, ok := value.(T)
	return data, ok
}

func (f *Fetcher[T]) toCache(ctx context.Context, loc string, opts content.ListOptions, data T) {
	if f.cache == nil || f.cacheKey == nil {
		return
	}
	if err := f.cache.Set(ctx, f.cacheKey(loc, opts), data, cache.DefaultTTL); err != nil {
		f.logger.Warn("fetch.cache.store_failed", "error", err)
	}
}
