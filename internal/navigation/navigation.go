// Package navigation decides what an authenticated back-office user can see:
// which admin pages open and which sidebar entries render. Decisions delegate
// to the permission grants; the gate never widens what the backend would
// allow, it only saves the user a rejected request.
package navigation

import (
	"sort"

	"github.com/aldawaly/go-backoffice/internal/content"
	"github.com/aldawaly/go-backoffice/internal/logging"
	"github.com/aldawaly/go-backoffice/internal/permissions"
	"github.com/aldawaly/go-backoffice/pkg/interfaces"
)

// Item is one sidebar entry. An empty Resource with AdminOnly unset means the
// entry is visible to every authenticated user. Items without a Path act as
// pure groups and survive only while at least one child does.
type Item struct {
	Key       string
	Label     content.Bilingual
	Path      string
	Resource  permissions.Resource
	AdminOnly bool
	Position  int
	Children  []*Item
}

// Denied is the view-model rendered instead of a protected page. It names
// the caller's role so the message can say who was turned away.
type Denied struct {
	Resource permissions.Resource
	Required permissions.Level
	Role     permissions.Role
}

// Decision is the gate's verdict for one page.
type Decision struct {
	Allowed bool
	Denied  *Denied
}

// GateOption configures a Gate.
type GateOption func(*Gate)

// WithLogger injects the logger used for denial records.
func WithLogger(logger interfaces.Logger) GateOption {
	return func(g *Gate) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// Gate evaluates page access and prunes the sidebar tree.
type Gate struct {
	logger interfaces.Logger
}

// NewGate returns a gate with defaults applied.
func NewGate(opts ...GateOption) *Gate {
	g := &Gate{logger: logging.NoOp()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Page decides whether the user may open a page guarded by the given
// resource and level. A denial carries the user's role for display; an
// anonymous caller is reported with an empty role.
func (g *Gate) Page(user *permissions.User, resource permissions.Resource, required permissions.Level) Decision {
	if permissions.HasPermission(user, resource, required) {
		return Decision{Allowed: true}
	}
	denied := &Denied{Resource: resource, Required: required}
	if user != nil {
		denied.Role = user.Role
	}
	g.logger.Debug("navigation.page.denied",
		"resource", string(resource),
		"required", string(required),
		"role", string(denied.Role),
	)
	return Decision{Denied: denied}
}

// AdminPage guards the user-management surface, which keys off the role
// alone rather than per-resource grants.
func (g *Gate) AdminPage(user *permissions.User) Decision {
	if permissions.IsAdmin(user) {
		return Decision{Allowed: true}
	}
	denied := &Denied{Required: permissions.LevelWrite}
	if user != nil {
		denied.Role = user.Role
	}
	g.logger.Debug("navigation.admin_page.denied", "role", string(denied.Role))
	return Decision{Denied: denied}
}

// visible reports whether the user may see a single entry, children aside.
func (g *Gate) visible(user *permissions.User, item *Item) bool {
	if item.AdminOnly {
		return permissions.IsAdmin(user)
	}
	if item.Resource != "" {
		return permissions.HasPermission(user, item.Resource, permissions.LevelRead)
	}
	return user != nil
}

// FilterTree returns the portion of the sidebar the user may see. Children
// are pruned first; a group whose children all vanish vanishes with them,
// even when the group itself carries no requirement. Items are returned in
// Position order and the input is never modified.
func (g *Gate) FilterTree(user *permissions.User, items []*Item) []*Item {
	out := make([]*Item, 0, len(items))
	for _, item := range items {
		if item == nil || !g.visible(user, item) {
			continue
		}
		kept := *item
		kept.Children = g.FilterTree(user, item.Children)
		if kept.Path == "" && len(kept.Children) == 0 {
			continue
		}
		out = append(out, &kept)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Position < out[j].Position
	})
	return out
}

// DefaultTree is the back-office sidebar: dashboard, the content sections,
// and the admin-only user management entry.
func DefaultTree() []*Item {
	return []*Item{
		{
			Key:      "dashboard",
			Label:    content.Bilingual{AR: "لوحة التحكم", EN: "Dashboard"},
			Path:     "/admin",
			Position: 0,
		},
		{
			Key:      "site-content",
			Label:    content.Bilingual{AR: "المحتوى", EN: "Content"},
			Position: 10,
			Children: []*Item{
				{
					Key:      "news",
					Label:    content.Bilingual{AR: "الأخبار", EN: "News"},
					Path:     "/admin/news",
					Resource: permissions.ResourceNews,
					Position: 0,
				},
				{
					Key:      "recipes",
					Label:    content.Bilingual{AR: "الوصفات", EN: "Recipes"},
					Path:     "/admin/recipes",
					Resource: permissions.ResourceRecipes,
					Position: 1,
				},
				{
					Key:      "products",
					Label:    content.Bilingual{AR: "المنتجات", EN: "Products"},
					Path:     "/admin/products",
					Resource: permissions.ResourceProducts,
					Position: 2,
				},
				{
					Key:      "hero",
					Label:    content.Bilingual{AR: "الشرائح", EN: "Hero slides"},
					Path:     "/admin/hero",
					Resource: permissions.ResourceHero,
					Position: 3,
				},
			},
		},
		{
			Key:      "books",
			Label:    content.Bilingual{AR: "الكتب", EN: "Books"},
			Path:     "/admin/books",
			Position: 20,
		},
		{
			Key:       "users",
			Label:     content.Bilingual{AR: "المستخدمون", EN: "Users"},
			Path:      "/admin/users",
			AdminOnly: true,
			Position:  30,
		},
	}
}
