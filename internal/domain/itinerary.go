package domain

import "time"

// An ordered, connected sequence of transportations forming one complete
// journey. Itineraries are derived per query and never persisted.
type Itinerary []Transportation

// Report whether every consecutive pair of segments joins up
// (destination of segment i equals origin of segment i+1).
func (it Itinerary) Connected() bool {
	for i := 1; i < len(it); i++ {
		if it[i-1].DestinationLocationID != it[i].OriginLocationID {
			return false
		}
	}
	return true
}

// The lookup key for one route search: origin code, destination code and
// the calendar day of travel.
type RouteQuery struct {
	OriginCode      string
	DestinationCode string
	TravelDate      time.Time
}

// CacheKey renders the query as a stable cache key, e.g. "IST-LHR-2026-03-02".
func (q RouteQuery) CacheKey() string {
	return q.OriginCode + "-" + q.DestinationCode + "-" + q.TravelDate.Format("2006-01-02")
}

// Weekday returns the ISO day of week (1=Monday .. 7=Sunday) of the travel date.
func (q RouteQuery) Weekday() int {
	return ISOWeekday(q.TravelDate)
}

// ISOWeekday converts time.Weekday (Sunday=0) to the 1..7 Monday-first
// numbering used by operating-day sets.
func ISOWeekday(t time.Time) int {
	if wd := int(t.Weekday()); wd != 0 {
		return wd
	}
	return 7
}
