package domain

import (
	"testing"
	"time"
)

func TestItineraryConnected(t *testing.T) {
	bus := Transportation{OriginLocationID: 1, DestinationLocationID: 2}
	flight := Transportation{OriginLocationID: 2, DestinationLocationID: 3}
	uber := Transportation{OriginLocationID: 3, DestinationLocationID: 4}

	if !(Itinerary{bus, flight, uber}).Connected() {
		t.Error("chained segments should be connected")
	}
	if (Itinerary{bus, uber}).Connected() {
		t.Error("gap between segments should not be connected")
	}
	if !(Itinerary{flight}).Connected() {
		t.Error("single segment is trivially connected")
	}
}

func TestISOWeekday(t *testing.T) {
	cases := []struct {
		date time.Time
		want int
	}{
		{time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), 1},  // Monday
		{time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC), 6},  // Saturday
		{time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC), 7},  // Sunday
		{time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC), 4}, // Thursday
	}

	for _, c := range cases {
		if got := ISOWeekday(c.date); got != c.want {
			t.Errorf("ISOWeekday(%s) = %d, want %d", c.date.Format("2006-01-02"), got, c.want)
		}
	}
}

func TestRouteQueryCacheKey(t *testing.T) {
	q := RouteQuery{
		OriginCode:      "IST",
		DestinationCode: "LHR",
		TravelDate:      time.Date(2026, 3, 2, 15, 4, 5, 0, time.UTC),
	}

	if got, want := q.CacheKey(), "IST-LHR-2026-03-02"; got != want {
		t.Errorf("CacheKey() = %q, want %q", got, want)
	}
	if got := q.Weekday(); got != 1 {
		t.Errorf("Weekday() = %d, want 1", got)
	}
}
