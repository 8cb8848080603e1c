package ports

import (
	"context"

	"github.com/mahmutsamiyagmur/flightsystem/internal/domain"
)

// Port: read-only resolution of location codes for route composition.
type LocationDirectory interface {
	// Resolve a location code to its record. Returns an error wrapping
	// domain.ErrNotFound when the code is unknown.
	GetByCode(ctx context.Context, code string) (domain.Location, error)
}
