package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/mahmutsamiyagmur/flightsystem/internal/domain"
)

// fakeRouteCache is an in-memory stand-in for the Redis route cache.
type fakeRouteCache struct {
	mu            sync.Mutex
	entries       map[string][]domain.Itinerary
	storeErr      error
	lookupErr     error
	stores        int
	invalidations int
}

func newFakeRouteCache() *fakeRouteCache {
	return &fakeRouteCache{entries: map[string][]domain.Itinerary{}}
}

func (f *fakeRouteCache) Lookup(ctx context.Context, q domain.RouteQuery) ([]domain.Itinerary, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.lookupErr != nil {
		return nil, false, f.lookupErr
	}
	routes, ok := f.entries[q.CacheKey()]
	return routes, ok, nil
}

func (f *fakeRouteCache) Store(ctx context.Context, q domain.RouteQuery, routes []domain.Itinerary) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.storeErr != nil {
		return f.storeErr
	}
	f.stores++
	f.entries[q.CacheKey()] = routes
	return nil
}

func (f *fakeRouteCache) InvalidateAll(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.invalidations++
	f.entries = map[string][]domain.Itinerary{}
	return nil
}

// stubFinder counts calls and serves a canned result or error.
type stubFinder struct {
	mu     sync.Mutex
	calls  int
	routes []domain.Itinerary
	err    error
}

func (s *stubFinder) FindRoutes(ctx context.Context, q domain.RouteQuery) ([]domain.Itinerary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.routes, nil
}

func testQuery() domain.RouteQuery {
	return domain.RouteQuery{OriginCode: "IST", DestinationCode: "LHR", TravelDate: monday}
}

func TestCachedFinderServesSecondCallFromCache(t *testing.T) {
	cache := newFakeRouteCache()
	finder := &stubFinder{routes: []domain.Itinerary{{domain.Transportation{ID: 42, Type: domain.TypeFlight}}}}
	cached := NewCachedRouteFinder(finder, cache)

	ctx := context.Background()
	first, err := cached.FindRoutes(ctx, testQuery())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := cached.FindRoutes(ctx, testQuery())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if finder.calls != 1 {
		t.Fatalf("inner finder called %d times, want 1", finder.calls)
	}
	if len(first) != 1 || len(second) != 1 || second[0][0].ID != 42 {
		t.Fatalf("cached result does not match computed result")
	}
}

func TestCachedFinderCachesEmptyResults(t *testing.T) {
	cache := newFakeRouteCache()
	finder := &stubFinder{routes: []domain.Itinerary{}}
	cached := NewCachedRouteFinder(finder, cache)

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		routes, err := cached.FindRoutes(ctx, testQuery())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(routes) != 0 {
			t.Fatalf("got %d routes, want 0", len(routes))
		}
	}

	if finder.calls != 1 {
		t.Fatalf("empty result should be cached; finder called %d times", finder.calls)
	}
}

func TestCachedFinderNeverCachesErrors(t *testing.T) {
	cache := newFakeRouteCache()
	finder := &stubFinder{err: errors.New("store unavailable")}
	cached := NewCachedRouteFinder(finder, cache)

	ctx := context.Background()
	if _, err := cached.FindRoutes(ctx, testQuery()); err == nil {
		t.Fatal("want error, got nil")
	}
	if cache.stores != 0 {
		t.Fatalf("error result was stored in cache")
	}

	// The failure clears; the next call must recompute.
	finder.err = nil
	finder.routes = []domain.Itinerary{}
	if _, err := cached.FindRoutes(ctx, testQuery()); err != nil {
		t.Fatalf("unexpected error after recovery: %v", err)
	}
	if finder.calls != 2 {
		t.Fatalf("finder called %d times, want 2", finder.calls)
	}
}

func TestCachedFinderSurvivesCacheFailures(t *testing.T) {
	cache := newFakeRouteCache()
	cache.storeErr = errors.New("cache write refused")
	cache.lookupErr = errors.New("cache read refused")

	finder := &stubFinder{routes: []domain.Itinerary{{domain.Transportation{ID: 7, Type: domain.TypeFlight}}}}
	cached := NewCachedRouteFinder(finder, cache)

	routes, err := cached.FindRoutes(context.Background(), testQuery())
	if err != nil {
		t.Fatalf("cache failure must not fail the query: %v", err)
	}
	if len(routes) != 1 || routes[0][0].ID != 7 {
		t.Fatalf("computed routes lost on cache failure: %+v", routes)
	}
}

func TestCachedFinderRecomputesAfterInvalidation(t *testing.T) {
	cache := newFakeRouteCache()
	finder := &stubFinder{routes: []domain.Itinerary{}}
	cached := NewCachedRouteFinder(finder, cache)

	ctx := context.Background()
	if _, err := cached.FindRoutes(ctx, testQuery()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := cache.InvalidateAll(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := cached.FindRoutes(ctx, testQuery()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if finder.calls != 2 {
		t.Fatalf("finder called %d times after invalidation, want 2", finder.calls)
	}
}
