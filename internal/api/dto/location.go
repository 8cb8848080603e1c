package dto

import "github.com/mahmutsamiyagmur/flightsystem/internal/domain"

type LocationRequest struct {
	Name         string `json:"name" validate:"required"`
	Country      string `json:"country" validate:"required"`
	City         string `json:"city" validate:"required"`
	LocationCode string `json:"location_code" validate:"required,alphanum,uppercase"`
}

type LocationResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Country      string `json:"country"`
	City         string `json:"city"`
	LocationCode string `json:"location_code"`
}

type ListLocationsResponse struct {
	Locations []LocationResponse `json:"locations"`
}

func FromLocation(loc domain.Location) LocationResponse {
	return LocationResponse{
		ID:           loc.ID,
		Name:         loc.Name,
		Country:      loc.Country,
		City:         loc.City,
		LocationCode: loc.LocationCode,
	}
}
