// Package locale derives the active display language from the URL path and
// lets data layers react when navigation changes it.
package locale

import (
	"strings"
	"sync"
)

const (
	Arabic  = "ar"
	English = "en"

	// Default is the site's primary language.
	Default = Arabic
)

// Supported reports whether the value is a locale the site renders.
func Supported(locale string) bool {
	return locale == Arabic || locale == English
}

// FromPath extracts the locale from the first path segment, falling back to
// the default for unknown or missing segments.
func FromPath(path string) string {
	trimmed := strings.TrimPrefix(path, "/")
	segment, _, _ := strings.Cut(trimmed, "/")
	if Supported(segment) {
		return segment
	}
	return Default
}

// Resolver holds the current locale and notifies subscribers on change.
// Safe for concurrent use.
type Resolver struct {
	mu      sync.Mutex
	current string
	nextID  int
	subs    map[int]func(locale string)
}

// NewResolver starts at the given locale, or the default when the value is
// not supported.
func NewResolver(initial string) *Resolver {
	if !Supported(initial) {
		initial = Default
	}
	return &Resolver{
		current: initial,
		subs:    map[int]func(string){},
	}
}

// Current returns the active locale.
func (r *Resolver) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Set switches the active locale and notifies subscribers. Unsupported
// values are ignored; setting the current value again notifies nobody.
func (r *Resolver) Set(locale string) {
	if !Supported(locale) {
		return
	}

	r.mu.Lock()
	if locale == r.current {
		r.mu.Unlock()
		return
	}
	r.current = locale
	listeners := make([]func(string), 0, len(r.subs))
	for _, fn := range r.subs {
		listeners = append(listeners, fn)
	}
	r.mu.Unlock()

	for _, fn := range listeners {
		fn(locale)
	}
}

// Observe resolves the locale from a navigated path and applies it.
func (r *Resolver) Observe(path string) {
	r.Set(FromPath(path))
}

// Subscribe registers a change listener and returns its remover. The
// listener runs outside the resolver lock.
func (r *Resolver) Subscribe(fn func(locale string)) func() {
	if fn == nil {
		return func() {}
	}
	r.mu.Lock()
	id := r.nextID
	r.nextID++
	r.subs[id] = fn
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		delete(r.subs, id)
		r.mu.Unlock()
	}
}
