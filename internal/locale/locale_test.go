package locale

import "testing"

func TestFromPath(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"/ar/news", "ar"},
		{"/en/products/broiler-feed", "en"},
		{"/en", "en"},
		{"/fr/news", "ar"},
		{"/news", "ar"},
		{"/", "ar"},
		{"", "ar"},
	}
	for _, tc := range cases {
		if got := FromPath(tc.path); got != tc.want {
			t.Fatalf("FromPath(%q): expected %q, got %q", tc.path, tc.want, got)
		}
	}
}

func TestResolver_NotifiesOnChangeOnly(t *testing.T) {
	r := NewResolver(Arabic)

	var calls []string
	unsubscribe := r.Subscribe(func(locale string) {
		calls = append(calls, locale)
	})
	defer unsubscribe()

	r.Set(Arabic) // no change
	r.Set(English)
	r.Set(English) // no change
	r.Set("de")    // unsupported, ignored
	r.Observe("/ar/recipes")

	want := []string{"en", "ar"}
	if len(calls) != len(want) {
		t.Fatalf("expected notifications %v, got %v", want, calls)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("expected notifications %v, got %v", want, calls)
		}
	}
	if r.Current() != Arabic {
		t.Fatalf("expected current ar, got %q", r.Current())
	}
}

func TestResolver_Unsubscribe(t *testing.T) {
	r := NewResolver(Arabic)
	calls := 0
	remove := r.Subscribe(func(string) { calls++ })
	r.Set(English)
	remove()
	r.Set(Arabic)
	if calls != 1 {
		t.Fatalf("expected 1 notification after unsubscribe, got %d", calls)
	}
}

func TestRoutes_LoginPath(t *testing.T) {
	routes := NewRoutes(nil)

	for _, localeCode := range []string{Arabic, English} {
		got, err := routes.LoginPath(localeCode)
		if err != nil {
			t.Fatalf("login path for %s: %v", localeCode, err)
		}
		want := "/" + localeCode + "/login"
		if got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	}

	got, err := routes.LoginPath("de")
	if err != nil {
		t.Fatalf("fallback login path: %v", err)
	}
	if got != "/ar/login" {
		t.Fatalf("unsupported locale must fall back to default, got %q", got)
	}
}

func TestIsLoginPath(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"/ar/login", true},
		{"/en/login", true},
		{"/login", true},
		{"/ar/news", false},
		{"/en/login/extra", false},
		{"/", false},
	}
	for _, tc := range cases {
		if got := IsLoginPath(tc.path); got != tc.want {
			t.Fatalf("IsLoginPath(%q): expected %v, got %v", tc.path, tc.want, got)
		}
	}
}
