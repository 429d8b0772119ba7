package permissions

import (
	"context"
	"errors"
	"strings"
)

// Role identifies the coarse account class assigned by the backend.
type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// Level is the per-resource access grade. Levels are totally ordered:
// none < read < write, and a grant satisfies any requirement at or below it.
type Level string

const (
	LevelNone  Level = "none"
	LevelRead  Level = "read"
	LevelWrite Level = "write"
)

func (l Level) rank() int {
	switch l {
	case LevelNone:
		return 0
	case LevelRead:
		return 1
	case LevelWrite:
		return 2
	default:
		return -1
	}
}

// Satisfies reports whether a grant at level l meets the required level.
// Unknown levels on either side fail closed.
func (l Level) Satisfies(required Level) bool {
	lr, rr := l.rank(), required.rank()
	if lr < 0 || rr < 0 {
		return false
	}
	return lr >= rr
}

// Resource enumerates the permissioned content domains. The set is closed:
// lookups against anything else fail, they never panic. User management is
// deliberately absent; it is gated by role, not by grants.
type Resource string

const (
	ResourceNews     Resource = "news"
	ResourceRecipes  Resource = "recipes"
	ResourceProducts Resource = "products"
	ResourceHero     Resource = "hero"
)

// Resources lists every valid resource in a stable order.
var Resources = []Resource{ResourceNews, ResourceRecipes, ResourceProducts, ResourceHero}

// Valid reports whether the resource belongs to the closed set.
func (r Resource) Valid() bool {
	switch r {
	case ResourceNews, ResourceRecipes, ResourceProducts, ResourceHero:
		return true
	default:
		return false
	}
}

// ParseResource normalizes a wire value into a Resource, failing closed on
// anything outside the enumeration.
func ParseResource(value string) (Resource, bool) {
	r := Resource(strings.ToLower(strings.TrimSpace(value)))
	return r, r.Valid()
}

// Grants maps resources to the granted access level. A missing entry reads
// as none.
type Grants map[Resource]Level

// Permissions is the wire shape the backend attaches to a user.
type Permissions struct {
	Resources Grants `json:"resources"`
}

// User is the authenticated identity the data layer evaluates. Permissions
// may be nil; that reads as all-none, never as an error.
type User struct {
	ID          string       `json:"_id"`
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	Role        Role         `json:"role"`
	Permissions *Permissions `json:"permissions,omitempty"`
}

// HasPermission decides whether user may act on resource at the required
// level. Absent user, unknown resource, unknown required level, and missing
// grants all fail closed.
func HasPermission(user *User, resource Resource, required Level) bool {
	if user == nil {
		return false
	}
	if !resource.Valid() {
		return false
	}
	if required.rank() < 0 {
		return false
	}
	if user.Permissions == nil {
		return false
	}
	granted, ok := user.Permissions.Resources[resource]
	if !ok {
		granted = LevelNone
	}
	return granted.Satisfies(required)
}

// IsAdmin reports whether the user holds the admin role. Moderators are
// denied regardless of their per-resource grants.
func IsAdmin(user *User) bool {
	return user != nil && user.Role == RoleAdmin
}

var ErrPermissionDenied = errors.New("permissions: denied")

// Error carries the failed requirement so gates can render a specific
// message. It unwraps to ErrPermissionDenied for callers that only branch on
// denial.
type Error struct {
	Resource Resource
	Required Level
	Role     Role
}

func (e Error) Error() string {
	if e.Resource == "" {
		return "permission denied: admin role required"
	}
	return "permission denied: " + string(e.Resource) + ":" + string(e.Required)
}

func (e Error) Unwrap() error {
	return ErrPermissionDenied
}

// Checker abstracts permission decisions so callers can be tested with
// recording fakes.
type Checker interface {
	Allowed(resource Resource, required Level) bool
}

type CheckerFunc func(resource Resource, required Level) bool

func (fn CheckerFunc) Allowed(resource Resource, required Level) bool {
	return fn(resource, required)
}

// Allowed lets a User act as its own Checker.
func (u *User) Allowed(resource Resource, required Level) bool {
	return HasPermission(u, resource, required)
}

type contextKey string

const userKey contextKey = "backoffice.permissions.user"

// WithUser stores the authenticated user on the context.
func WithUser(ctx context.Context, user *User) context.Context {
	if ctx == nil || user == nil {
		return ctx
	}
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext returns the authenticated user if available.
func UserFromContext(ctx context.Context) *User {
	if ctx == nil {
		return nil
	}
	user, _ := ctx.Value(userKey).(*User)
	return user
}

// Require enforces a resource requirement against the context user.
func Require(ctx context.Context, resource Resource, required Level) error {
	user := UserFromContext(ctx)
	if HasPermission(user, resource, required) {
		return nil
	}
	err := Error{Resource: resource, Required: required}
	if user != nil {
		err.Role = user.Role
	}
	return err
}

// RequireAdmin enforces the admin-only gate against the context user.
func RequireAdmin(ctx context.Context) error {
	user := UserFromContext(ctx)
	if IsAdmin(user) {
		return nil
	}
	err := Error{}
	if user != nil {
		err.Role = user.Role
	}
	return err
}
