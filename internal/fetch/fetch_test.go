package fetch

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aldawaly/go-backoffice/internal/cache"
	"github.com/aldawaly/go-backoffice/internal/content"
	"github.com/aldawaly/go-backoffice/internal/locale"
)

func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for !cond() {
		select {
		case <-deadline:
			t.Fatal(msg)
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestFetcher_SuccessPublishesData(t *testing.T) {
	resolver := locale.NewResolver(locale.Arabic)
	f := NewFetcher(resolver, func(_ context.Context, loc string, _ content.ListOptions) ([]string, error) {
		return []string{"item-" + loc}, nil
	})
	defer f.Close()

	f.Refresh(context.Background())

	state := f.State()
	if state.Loading || state.Err != nil {
		t.Fatalf("unexpected state: %+v", state)
	}
	if len(state.Data) != 1 || state.Data[0] != "item-ar" {
		t.Fatalf("unexpected data: %v", state.Data)
	}
}

func TestFetcher_FailureResetsData(t *testing.T) {
	resolver := locale.NewResolver(locale.Arabic)
	loadErr := errors.New("backend unavailable")
	fail := atomic.Bool{}

	f := NewFetcher(resolver, func(_ context.Context, loc string, _ content.ListOptions) ([]string, error) {
		if fail.Load() {
			return nil, loadErr
		}
		return []string{"item-" + loc}, nil
	})
	defer f.Close()

	f.Refresh(context.Background())
	if len(f.State().Data) != 1 {
		t.Fatalf("expected initial data, got %+v", f.State())
	}

	fail.Store(true)
	f.Refresh(context.Background())

	state := f.State()
	if !errors.Is(state.Err, loadErr) {
		t.Fatalf("expected load error, got %v", state.Err)
	}
	if state.Data != nil {
		t.Fatalf("data must reset to zero on failure, got %v", state.Data)
	}
}

func TestFetcher_LocaleChangeRefetches(t *testing.T) {
	resolver := locale.NewResolver(locale.Arabic)
	var seen atomic.Value

	f := NewFetcher(resolver, func(_ context.Context, loc string, _ content.ListOptions) (string, error) {
		seen.Store(loc)
		return "page-" + loc, nil
	})
	defer f.Close()

	f.Refresh(context.Background())
	if got := f.State().Data; got != "page-ar" {
		t.Fatalf("unexpected data %q", got)
	}

	resolver.Set(locale.English)
	waitFor(t, func() bool { return f.State().Data == "page-en" }, "locale change never refetched")
	if seen.Load() != locale.English {
		t.Fatalf("expected an English fetch, saw %v", seen.Load())
	}
}

func TestFetcher_SupersededResponseIsDropped(t *testing.T) {
	resolver := locale.NewResolver(locale.Arabic)
	release := map[string]chan struct{}{
		locale.Arabic:  make(chan struct{}),
		locale.English: make(chan struct{}),
	}
	started := make(chan string, 2)

	f := NewFetcher(resolver, func(_ context.Context, loc string, _ content.ListOptions) (string, error) {
		started <- loc
		<-release[loc]
		return "page-" + loc, nil
	})
	defer f.Close()

	go f.Refresh(context.Background())
	if loc := <-started; loc != locale.Arabic {
		t.Fatalf("expected the Arabic request first, got %s", loc)
	}

	// The visitor switches language while the Arabic request is in flight.
	resolver.Set(locale.English)
	if loc := <-started; loc != locale.English {
		t.Fatalf("expected the English request, got %s", loc)
	}

	close(release[locale.English])
	waitFor(t, func() bool { return f.State().Data == "page-en" }, "English response never landed")

	// The stale Arabic response arrives last and must be discarded.
	close(release[locale.Arabic])
	time.Sleep(50 * time.Millisecond)

	state := f.State()
	if state.Data != "page-en" {
		t.Fatalf("stale response overwrote state: %+v", state)
	}
	if state.Loading || state.Err != nil {
		t.Fatalf("unexpected state after supersession: %+v", state)
	}
}

func TestFetcher_StragglerNotificationIsDropped(t *testing.T) {
	resolver := locale.NewResolver(locale.Arabic)
	f := NewFetcher(resolver, func(_ context.Context, loc string, _ content.ListOptions) (string, error) {
		return "page-" + loc, nil
	})
	defer f.Close()

	var mu sync.Mutex
	var received []State[string]
	f.Subscribe(func(s State[string]) {
		mu.Lock()
		received = append(received, s)
		mu.Unlock()
	})

	f.Refresh(context.Background())
	f.Refresh(context.Background())

	mu.Lock()
	count := len(received)
	mu.Unlock()

	// A loading snapshot from the first refresh arriving out of order must
	// not reach subscribers after the second refresh published.
	f.notify(1, State[string]{Loading: true})

	mu.Lock()
	defer mu.Unlock()
	if len(received) != count {
		t.Fatalf("superseded snapshot delivered: %+v", received[len(received)-1])
	}
	if last := received[count-1]; last.Loading || last.Data != "page-ar" {
		t.Fatalf("unexpected final snapshot %+v", last)
	}
}

func TestFetcher_SetOptionsRefetchesWithNewFilters(t *testing.T) {
	resolver := locale.NewResolver(locale.Arabic)
	var lastSearch atomic.Value

	f := NewFetcher(resolver, func(_ context.Context, _ string, opts content.ListOptions) (int, error) {
		lastSearch.Store(opts.Search)
		return 1, nil
	})
	defer f.Close()

	f.SetOptions(context.Background(), content.ListOptions{Search: "dates"})
	if lastSearch.Load() != "dates" {
		t.Fatalf("expected the new filter, saw %v", lastSearch.Load())
	}
	if opts := f.Options(); opts.Search != "dates" {
		t.Fatalf("unexpected options %+v", opts)
	}
}

func TestFetcher_CacheReadThrough(t *testing.T) {
	resolver := locale.NewResolver(locale.Arabic)
	store := cache.NewMemory()
	var loads atomic.Int32

	key := func(loc string, opts content.ListOptions) string {
		return cache.ListKey("news", loc+":"+opts.Variant())
	}
	f := NewFetcher(resolver, func(_ context.Context, loc string, _ content.ListOptions) (string, error) {
		loads.Add(1)
		return "page-" + loc, nil
	}, WithCache[string](store, key))
	defer f.Close()

	f.Refresh(context.Background())
	f.Refresh(context.Background())

	if loads.Load() != 1 {
		t.Fatalf("expected a single backend load, got %d", loads.Load())
	}
	if f.State().Data != "page-ar" {
		t.Fatalf("unexpected data %q", f.State().Data)
	}
}

func TestFetcher_SubscribeAndUnsubscribe(t *testing.T) {
	resolver := locale.NewResolver(locale.Arabic)
	f := NewFetcher(resolver, func(_ context.Context, loc string, _ content.ListOptions) (string, error) {
		return loc, nil
	})
	defer f.Close()

	var notified atomic.Int32
	stop := f.Subscribe(func(State[string]) { notified.Add(1) })

	f.Refresh(context.Background())
	if notified.Load() == 0 {
		t.Fatal("subscriber never notified")
	}

	seen := notified.Load()
	stop()
	f.Refresh(context.Background())
	if notified.Load() != seen {
		t.Fatal("unsubscribed listener still notified")
	}
}
