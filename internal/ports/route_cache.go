package ports

import (
	"context"

	"github.com/mahmutsamiyagmur/flightsystem/internal/domain"
)

// Port: a shared cache of computed itinerary lists keyed by route query.
//
// Entries are exact-match by (origin code, destination code, travel date).
// There is no partial invalidation: any change to the underlying segment
// data flushes everything.
type RouteCache interface {
	// Look up the itineraries stored for the query. The second return
	// reports whether the key was present; an empty list with ok=true is
	// a valid cached result.
	Lookup(ctx context.Context, q domain.RouteQuery) ([]domain.Itinerary, bool, error)

	// Store the itineraries for the query, replacing any previous entry.
	Store(ctx context.Context, q domain.RouteQuery, routes []domain.Itinerary) error

	// Drop every cached entry.
	InvalidateAll(ctx context.Context) error
}
