package ports

import (
	"context"

	"github.com/mahmutsamiyagmur/flightsystem/internal/domain"
)

// Port: read-only access to scheduled transportations for a given weekday.
type SegmentCatalog interface {
	// Return every transportation operating on the given ISO weekday (1..7).
	ListOperatingOn(ctx context.Context, weekday int) ([]domain.Transportation, error)

	// Return transportations operating on the given weekday that depart
	// from the given origin location.
	ListOperatingFrom(ctx context.Context, weekday int, originID int64) ([]domain.Transportation, error)
}
