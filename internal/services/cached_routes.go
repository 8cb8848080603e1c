package services

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/singleflight"

	"github.com/mahmutsamiyagmur/flightsystem/internal/domain"
	"github.com/mahmutsamiyagmur/flightsystem/internal/ports"
)

// CachedRouteFinder is a read-through cache in front of a RouteFinder.
//
// On a hit the stored itineraries are returned as-is. On a miss the inner
// finder runs, the result (empty included) is stored under the query key,
// and concurrent misses for the same key share one computation. Errors
// are never cached; a later query retries from scratch.
//
// Cache failures degrade rather than fail the query: a broken lookup
// falls through to computation and a failed store is logged, since the
// computed result is still correct.
type CachedRouteFinder struct {
	finder RouteFinder
	cache  ports.RouteCache
	group  singleflight.Group
}

func NewCachedRouteFinder(finder RouteFinder, cache ports.RouteCache) *CachedRouteFinder {
	return &CachedRouteFinder{finder: finder, cache: cache}
}

func (f *CachedRouteFinder) FindRoutes(ctx context.Context, q domain.RouteQuery) ([]domain.Itinerary, error) {
	key := q.CacheKey()

	routes, ok, err := f.cache.Lookup(ctx, q)
	if err != nil {
		log.Printf("route cache lookup failed: key=%s err=%v", key, err)
	} else if ok {
		return routes, nil
	}

	v, err, _ := f.group.Do(key, func() (any, error) {
		computed, err := f.finder.FindRoutes(ctx, q)
		if err != nil {
			return nil, err
		}

		if err := f.cache.Store(ctx, q, computed); err != nil {
			log.Printf("route cache store failed: key=%s err=%v", key, err)
		}
		return computed, nil
	})
	if err != nil {
		return nil, fmt.Errorf("find routes %s: %w", key, err)
	}

	return v.([]domain.Itinerary), nil
}
