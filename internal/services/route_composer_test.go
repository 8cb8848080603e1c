package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/mahmutsamiyagmur/flightsystem/internal/adapters/repositories"
	"github.com/mahmutsamiyagmur/flightsystem/internal/domain"
)

var (
	monday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	sunday = time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
)

// composerFixture seeds an in-memory store with the canonical network:
//
//	TAK --BUS/SUBWAY--> IST --FLIGHT--> LHR --UBER--> WEM
//
// The flight runs Mon/Wed/Fri, the transfers run Monday and Sunday.
func composerFixture(t *testing.T) *RouteComposer {
	t.Helper()

	ctx := context.Background()
	store := repositories.NewMemoryStore()

	locations := map[string]domain.Location{}
	for _, loc := range []domain.Location{
		{Name: "Taksim Square", Country: "Turkey", City: "Istanbul", LocationCode: "TAK"},
		{Name: "Istanbul Airport", Country: "Turkey", City: "Istanbul", LocationCode: "IST"},
		{Name: "Heathrow Airport", Country: "UK", City: "London", LocationCode: "LHR"},
		{Name: "Wembley Stadium", Country: "UK", City: "London", LocationCode: "WEM"},
	} {
		created, err := store.Create(ctx, loc)
		if err != nil {
			t.Fatalf("seed location %s: %v", loc.LocationCode, err)
		}
		locations[loc.LocationCode] = created
	}

	segments := store.Transportations()
	seed := func(originCode, destinationCode string, kind domain.TransportationType, days []int) {
		_, err := segments.Create(ctx, domain.Transportation{
			OriginLocationID:        locations[originCode].ID,
			OriginLocationCode:      originCode,
			DestinationLocationID:   locations[destinationCode].ID,
			DestinationLocationCode: destinationCode,
			Type:                    kind,
			OperatingDays:           days,
		})
		if err != nil {
			t.Fatalf("seed transportation %s->%s: %v", originCode, destinationCode, err)
		}
	}

	seed("TAK", "IST", domain.TypeBus, []int{1, 7})
	seed("TAK", "IST", domain.TypeSubway, []int{1, 7})
	seed("IST", "LHR", domain.TypeFlight, []int{1, 3, 5})
	seed("LHR", "WEM", domain.TypeUber, []int{1, 7})

	return NewRouteComposer(store, segments)
}

func findRoutes(t *testing.T, c *RouteComposer, origin, destination string, date time.Time) []domain.Itinerary {
	t.Helper()

	routes, err := c.FindRoutes(context.Background(), domain.RouteQuery{
		OriginCode:      origin,
		DestinationCode: destination,
		TravelDate:      date,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return routes
}

// assertWellFormed checks the invariants every returned itinerary must
// satisfy: endpoints match the query, segments chain up, exactly one
// flight, length 1..3, and every segment operates on the travel weekday.
func assertWellFormed(t *testing.T, routes []domain.Itinerary, origin, destination string, weekday int) {
	t.Helper()

	for i, it := range routes {
		if len(it) < 1 || len(it) > 3 {
			t.Errorf("route %d: length %d outside 1..3", i, len(it))
		}
		if it[0].OriginLocationCode != origin {
			t.Errorf("route %d: starts at %s, want %s", i, it[0].OriginLocationCode, origin)
		}
		if it[len(it)-1].DestinationLocationCode != destination {
			t.Errorf("route %d: ends at %s, want %s", i, it[len(it)-1].DestinationLocationCode, destination)
		}
		if !it.Connected() {
			t.Errorf("route %d: segments are not connected", i)
		}

		flights := 0
		for _, seg := range it {
			if seg.IsFlight() {
				flights++
			}
			if !seg.OperatesOn(weekday) {
				t.Errorf("route %d: segment %d does not operate on weekday %d", i, seg.ID, weekday)
			}
		}
		if flights != 1 {
			t.Errorf("route %d: has %d flights, want exactly 1", i, flights)
		}
	}
}

func TestFindRoutesDirectFlight(t *testing.T) {
	c := composerFixture(t)

	routes := findRoutes(t, c, "IST", "LHR", monday)

	if len(routes) != 1 {
		t.Fatalf("got %d routes, want 1", len(routes))
	}
	if len(routes[0]) != 1 || routes[0][0].Type != domain.TypeFlight {
		t.Fatalf("want a single direct flight, got %+v", routes[0])
	}
	assertWellFormed(t, routes, "IST", "LHR", 1)
}

func TestFindRoutesBeforeTransferOptions(t *testing.T) {
	c := composerFixture(t)

	routes := findRoutes(t, c, "TAK", "LHR", monday)

	if len(routes) != 2 {
		t.Fatalf("got %d routes, want 2", len(routes))
	}
	if routes[0][0].Type != domain.TypeBus {
		t.Errorf("first route starts with %s, want BUS", routes[0][0].Type)
	}
	if routes[1][0].Type != domain.TypeSubway {
		t.Errorf("second route starts with %s, want SUBWAY", routes[1][0].Type)
	}
	for i, r := range routes {
		if len(r) != 2 || !r[1].IsFlight() {
			t.Errorf("route %d: want [transfer, flight], got %+v", i, r)
		}
	}
	assertWellFormed(t, routes, "TAK", "LHR", 1)
}

func TestFindRoutesAfterTransfer(t *testing.T) {
	c := composerFixture(t)

	routes := findRoutes(t, c, "IST", "WEM", monday)

	if len(routes) != 1 {
		t.Fatalf("got %d routes, want 1", len(routes))
	}
	if len(routes[0]) != 2 || !routes[0][0].IsFlight() || routes[0][1].Type != domain.TypeUber {
		t.Fatalf("want [flight, uber], got %+v", routes[0])
	}
	assertWellFormed(t, routes, "IST", "WEM", 1)
}

func TestFindRoutesThreeLegCombinations(t *testing.T) {
	c := composerFixture(t)

	routes := findRoutes(t, c, "TAK", "WEM", monday)

	if len(routes) != 2 {
		t.Fatalf("got %d routes, want 2 (one per before-transfer)", len(routes))
	}
	for i, r := range routes {
		if len(r) != 3 {
			t.Errorf("route %d: length %d, want 3", i, len(r))
		}
	}
	assertWellFormed(t, routes, "TAK", "WEM", 1)
}

func TestFindRoutesNoFlightOnDate(t *testing.T) {
	c := composerFixture(t)

	// Transfers run on Sunday but the only flight does not.
	routes := findRoutes(t, c, "IST", "LHR", sunday)

	if len(routes) != 0 {
		t.Fatalf("got %d routes, want 0", len(routes))
	}
}

func TestFindRoutesUnknownCode(t *testing.T) {
	c := composerFixture(t)

	_, err := c.FindRoutes(context.Background(), domain.RouteQuery{
		OriginCode:      "IST",
		DestinationCode: "ZZZ",
		TravelDate:      monday,
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "ZZZ") {
		t.Fatalf("error should name the unknown code, got %q", err)
	}
}

func TestFindRoutesIdempotent(t *testing.T) {
	c := composerFixture(t)

	first := findRoutes(t, c, "TAK", "WEM", monday)
	second := findRoutes(t, c, "TAK", "WEM", monday)

	if len(first) != len(second) {
		t.Fatalf("route counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if len(first[i]) != len(second[i]) {
			t.Errorf("route %d lengths differ", i)
			continue
		}
		for j := range first[i] {
			if first[i][j].ID != second[i][j].ID {
				t.Errorf("route %d segment %d differs between calls", i, j)
			}
		}
	}
}
