package navigation

import (
	"testing"

	"github.com/aldawaly/go-backoffice/internal/permissions"
)

func moderatorWith(grants permissions.Grants) *permissions.User {
	return &permissions.User{
		ID:          "u-mod",
		Role:        permissions.RoleModerator,
		Permissions: &permissions.Permissions{Resources: grants},
	}
}

func keys(items []*Item) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Key)
	}
	return out
}

func TestGate_PageAllowsGrantedResource(t *testing.T) {
	gate := NewGate()
	user := moderatorWith(permissions.Grants{permissions.ResourceNews: permissions.LevelRead})

	decision := gate.Page(user, permissions.ResourceNews, permissions.LevelRead)
	if !decision.Allowed {
		t.Fatalf("expected access, got %+v", decision.Denied)
	}
}

func TestGate_PageDenialNamesRole(t *testing.T) {
	gate := NewGate()
	user := moderatorWith(permissions.Grants{})

	decision := gate.Page(user, permissions.ResourceRecipes, permissions.LevelRead)
	if decision.Allowed {
		t.Fatal("expected denial")
	}
	if decision.Denied.Role != permissions.RoleModerator {
		t.Fatalf("denial must carry the caller's role, got %q", decision.Denied.Role)
	}
	if decision.Denied.Resource != permissions.ResourceRecipes {
		t.Fatalf("unexpected resource %q", decision.Denied.Resource)
	}
}

func TestGate_PageDeniesAnonymous(t *testing.T) {
	gate := NewGate()
	decision := gate.Page(nil, permissions.ResourceNews, permissions.LevelRead)
	if decision.Allowed {
		t.Fatal("anonymous access must be denied")
	}
	if decision.Denied.Role != "" {
		t.Fatalf("anonymous denial must carry no role, got %q", decision.Denied.Role)
	}
}

func TestGate_AdminRoleDoesNotBypassContentGrants(t *testing.T) {
	gate := NewGate()
	admin := &permissions.User{
		ID:          "u-admin",
		Role:        permissions.RoleAdmin,
		Permissions: &permissions.Permissions{Resources: permissions.Grants{}},
	}

	if decision := gate.Page(admin, permissions.ResourceNews, permissions.LevelWrite); decision.Allowed {
		t.Fatal("content access follows grants, not role")
	}
	if decision := gate.AdminPage(admin); !decision.Allowed {
		t.Fatal("user management keys off the admin role")
	}
}

func TestGate_AdminPageDeniesModerator(t *testing.T) {
	gate := NewGate()
	user := moderatorWith(permissions.Grants{permissions.ResourceNews: permissions.LevelWrite})

	decision := gate.AdminPage(user)
	if decision.Allowed {
		t.Fatal("moderators must not reach user management")
	}
	if decision.Denied.Role != permissions.RoleModerator {
		t.Fatalf("denial must carry the role, got %q", decision.Denied.Role)
	}
}

func TestGate_FilterTreePrunesUngrantedEntries(t *testing.T) {
	gate := NewGate()
	user := moderatorWith(permissions.Grants{
		permissions.ResourceNews: permissions.LevelRead,
		permissions.ResourceHero: permissions.LevelWrite,
	})

	filtered := gate.FilterTree(user, DefaultTree())

	got := keys(filtered)
	want := []string{"dashboard", "site-content", "books"}
	if len(got) != len(want) {
		t.Fatalf("unexpected top-level entries %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected top-level entries %v", got)
		}
	}

	var group *Item
	for _, item := range filtered {
		if item.Key == "site-content" {
			group = item
		}
	}
	children := keys(group.Children)
	if len(children) != 2 || children[0] != "news" || children[1] != "hero" {
		t.Fatalf("unexpected content entries %v", children)
	}
}

func TestGate_FilterTreeDropsEmptyGroups(t *testing.T) {
	gate := NewGate()
	user := moderatorWith(permissions.Grants{})

	filtered := gate.FilterTree(user, DefaultTree())

	for _, item := range filtered {
		if item.Key == "site-content" {
			t.Fatal("a group whose children are all pruned must vanish")
		}
		if item.Key == "users" {
			t.Fatal("the admin entry must be pruned for moderators")
		}
	}
}

func TestGate_FilterTreeForAnonymous(t *testing.T) {
	gate := NewGate()
	if filtered := gate.FilterTree(nil, DefaultTree()); len(filtered) != 0 {
		t.Fatalf("anonymous users see no sidebar, got %v", keys(filtered))
	}
}

func TestGate_FilterTreeDoesNotMutateInput(t *testing.T) {
	gate := NewGate()
	tree := DefaultTree()
	user := moderatorWith(permissions.Grants{permissions.ResourceNews: permissions.LevelRead})

	_ = gate.FilterTree(user, tree)

	var group *Item
	for _, item := range tree {
		if item.Key == "site-content" {
			group = item
		}
	}
	if len(group.Children) != 4 {
		t.Fatalf("input tree was mutated, children: %v", keys(group.Children))
	}
}
