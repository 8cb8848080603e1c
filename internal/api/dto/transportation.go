package dto

import "github.com/mahmutsamiyagmur/flightsystem/internal/domain"

type TransportationRequest struct {
	OriginLocationID      int64  `json:"origin_location_id" validate:"required,gt=0"`
	DestinationLocationID int64  `json:"destination_location_id" validate:"required,gt=0"`
	TransportationType    string `json:"transportation_type" validate:"required,uppercase"`
	OperatingDays         []int  `json:"operating_days" validate:"required,min=1,max=7,unique,dive,gte=1,lte=7"`
}

type TransportationResponse struct {
	ID                      int64  `json:"id"`
	OriginLocationID        int64  `json:"origin_location_id"`
	OriginLocationCode      string `json:"origin_location_code"`
	DestinationLocationID   int64  `json:"destination_location_id"`
	DestinationLocationCode string `json:"destination_location_code"`
	TransportationType      string `json:"transportation_type"`
	OperatingDays           []int  `json:"operating_days"`
}

type ListTransportationsResponse struct {
	Transportations []TransportationResponse `json:"transportations"`
}

func FromTransportation(t domain.Transportation) TransportationResponse {
	return TransportationResponse{
		ID:                      t.ID,
		OriginLocationID:        t.OriginLocationID,
		OriginLocationCode:      t.OriginLocationCode,
		DestinationLocationID:   t.DestinationLocationID,
		DestinationLocationCode: t.DestinationLocationCode,
		TransportationType:      string(t.Type),
		OperatingDays:           t.OperatingDays,
	}
}

// FromItineraries renders composed routes as nested arrays of segment
// descriptors, the shape the search endpoint serves.
func FromItineraries(routes []domain.Itinerary) [][]TransportationResponse {
	out := make([][]TransportationResponse, 0, len(routes))
	for _, it := range routes {
		segs := make([]TransportationResponse, 0, len(it))
		for _, t := range it {
			segs = append(segs, FromTransportation(t))
		}
		out = append(out, segs)
	}
	return out
}
