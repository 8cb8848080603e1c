package domain

// Category of a scheduled transportation. The set is open: routing only
// distinguishes FLIGHT from everything else.
type TransportationType string

const (
	TypeFlight TransportationType = "FLIGHT"
	TypeBus    TransportationType = "BUS"
	TypeSubway TransportationType = "SUBWAY"
	TypeUber   TransportationType = "UBER"
)

// A scheduled, directed edge between two locations, available on a fixed
// subset of weekdays (1=Monday .. 7=Sunday).
//
// Endpoints are value references by location id; the codes are carried
// alongside so itineraries can be rendered without another directory
// lookup.
type Transportation struct {
	ID                      int64
	OriginLocationID        int64
	OriginLocationCode      string
	DestinationLocationID   int64
	DestinationLocationCode string
	Type                    TransportationType
	OperatingDays           []int
}

// Report whether the transportation runs on the given ISO weekday.
func (t Transportation) OperatesOn(weekday int) bool {
	for _, d := range t.OperatingDays {
		if d == weekday {
			return true
		}
	}
	return false
}

func (t Transportation) IsFlight() bool {
	return t.Type == TypeFlight
}
