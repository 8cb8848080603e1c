package services

import (
	"context"
	"fmt"

	"github.com/mahmutsamiyagmur/flightsystem/internal/domain"
	"github.com/mahmutsamiyagmur/flightsystem/internal/platform/obs"
	"github.com/mahmutsamiyagmur/flightsystem/internal/ports"
)

// RouteFinder answers route queries with an ordered list of itineraries.
// Both the bare composer and its cached wrapper satisfy it, so callers can
// be wired with or without caching.
type RouteFinder interface {
	FindRoutes(ctx context.Context, q domain.RouteQuery) ([]domain.Itinerary, error)
}

// RouteComposer enumerates every valid itinerary between two locations on
// a travel date.
//
// A valid itinerary is built around exactly one flight: optionally one
// non-flight transfer immediately before it, optionally one immediately
// after it, never more than three segments total. Consecutive segments
// must join up, and every segment must operate on the weekday of travel.
//
// The composer is stateless; it reads collaborators at call time and is
// safe for concurrent use.
type RouteComposer struct {
	locations ports.LocationDirectory
	segments  ports.SegmentCatalog
}

func NewRouteComposer(locations ports.LocationDirectory, segments ports.SegmentCatalog) *RouteComposer {
	return &RouteComposer{locations: locations, segments: segments}
}

// FindRoutes resolves the query endpoints, loads the transportations
// operating on the travel weekday and composes all valid itineraries.
//
// Zero itineraries is a normal outcome, not an error. Unknown origin or
// destination codes fail with an error wrapping domain.ErrNotFound that
// names the offending code.
func (c *RouteComposer) FindRoutes(ctx context.Context, q domain.RouteQuery) (_ []domain.Itinerary, err error) {
	defer obs.Time(ctx, "routes.compose")(&err)

	origin, err := c.locations.GetByCode(ctx, q.OriginCode)
	if err != nil {
		return nil, fmt.Errorf("find routes: resolve origin: %w", err)
	}

	destination, err := c.locations.GetByCode(ctx, q.DestinationCode)
	if err != nil {
		return nil, fmt.Errorf("find routes: resolve destination: %w", err)
	}

	weekday := q.Weekday()
	candidates, err := c.segments.ListOperatingOn(ctx, weekday)
	if err != nil {
		return nil, fmt.Errorf("find routes: list transportations for weekday %d: %w", weekday, err)
	}

	var flights, transfers []domain.Transportation
	for _, t := range candidates {
		if t.IsFlight() {
			flights = append(flights, t)
		} else {
			transfers = append(transfers, t)
		}
	}

	routes := []domain.Itinerary{}
	for _, flight := range flights {
		routes = composeAroundFlight(routes, flight, transfers, origin.ID, destination.ID)
	}

	return routes, nil
}

// composeAroundFlight appends every itinerary that uses the given flight
// as its mandatory central leg. Cases, in enumeration order:
//
//  1. flight alone, when it directly connects origin and destination
//  2. transfer + flight, when the flight lands at the destination
//  3. flight + transfer, when the flight departs from the origin
//  4. transfer + flight + transfer, for every before/after combination
func composeAroundFlight(routes []domain.Itinerary, flight domain.Transportation, transfers []domain.Transportation, originID, destinationID int64) []domain.Itinerary {
	if flight.OriginLocationID == originID && flight.DestinationLocationID == destinationID {
		routes = append(routes, domain.Itinerary{flight})
	}

	if flight.DestinationLocationID == destinationID {
		for _, before := range transfersBetween(transfers, originID, flight.OriginLocationID) {
			routes = append(routes, domain.Itinerary{before, flight})
		}
	}

	if flight.OriginLocationID == originID {
		for _, after := range transfersBetween(transfers, flight.DestinationLocationID, destinationID) {
			routes = append(routes, domain.Itinerary{flight, after})
		}
	}

	befores := transfersBetween(transfers, originID, flight.OriginLocationID)
	afters := transfersBetween(transfers, flight.DestinationLocationID, destinationID)
	for _, before := range befores {
		for _, after := range afters {
			routes = append(routes, domain.Itinerary{before, flight, after})
		}
	}

	return routes
}

// transfersBetween selects the non-flight segments running from one
// location to another, preserving catalog order.
func transfersBetween(transfers []domain.Transportation, fromID, toID int64) []domain.Transportation {
	var out []domain.Transportation
	for _, t := range transfers {
		if t.OriginLocationID == fromID && t.DestinationLocationID == toID {
			out = append(out, t)
		}
	}
	return out
}
