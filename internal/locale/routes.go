package locale

import (
	"fmt"
	"strings"

	urlkit "github.com/goliatone/go-urlkit"
)

// Route names available in every locale group.
const (
	RouteHome  = "home"
	RouteLogin = "login"
	RouteAdmin = "admin"
)

// DefaultRouteConfig declares the locale-prefixed public routes. Hosts can
// replace it, e.g. to set an absolute base URL.
func DefaultRouteConfig() *urlkit.Config {
	paths := map[string]string{
		RouteHome:  "/",
		RouteLogin: "/login",
		RouteAdmin: "/admin",
	}
	return &urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:  "site",
				Paths: paths,
				Groups: []urlkit.GroupConfig{
					{Name: Arabic, Path: "/" + Arabic, Paths: paths},
					{Name: English, Path: "/" + English, Paths: paths},
				},
			},
		},
	}
}

// Routes builds locale-prefixed URLs through go-urlkit route groups, one
// child group per locale.
type Routes struct {
	manager *urlkit.RouteManager
}

// NewRoutes constructs the route builder. A nil config uses the default.
func NewRoutes(cfg *urlkit.Config) *Routes {
	if cfg == nil {
		cfg = DefaultRouteConfig()
	}
	return &Routes{manager: urlkit.NewRouteManager(cfg)}
}

// Build renders a named route inside the locale's group.
func (r *Routes) Build(localeCode, route string) (string, error) {
	if r == nil || r.manager == nil {
		return "", fmt.Errorf("locale: route manager not configured")
	}
	if !Supported(localeCode) {
		localeCode = Default
	}

	group, err := localeGroup(r.manager, localeCode)
	if err != nil {
		return "", err
	}
	builder, err := safeBuilder(group, route)
	if err != nil {
		return "", err
	}
	return builder.Build()
}

// LoginPath returns the locale-prefixed login route, the target of the
// post-expiry redirect.
func (r *Routes) LoginPath(localeCode string) (string, error) {
	return r.Build(localeCode, RouteLogin)
}

// IsLoginPath reports whether the path already addresses the login view in
// any locale, in which case the expiry redirect is skipped.
func IsLoginPath(path string) bool {
	trimmed := strings.Trim(path, "/")
	if trimmed == RouteLogin {
		return true
	}
	locale, rest, ok := strings.Cut(trimmed, "/")
	return ok && Supported(locale) && rest == RouteLogin
}

func localeGroup(manager *urlkit.RouteManager, localeCode string) (group *urlkit.Group, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("locale: route group %q not found", localeCode)
		}
	}()
	root := manager.Group("site")
	group = root.Group(localeCode)
	return group, err
}

func safeBuilder(group *urlkit.Group, route string) (builder *urlkit.Builder, err error) {
	if group == nil {
		return nil, fmt.Errorf("locale: urlkit group is nil")
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("locale: urlkit builder panic: %v", rec)
		}
	}()
	builder = group.Builder(route)
	return builder, err
}
