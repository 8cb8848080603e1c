package ports

import (
	"context"

	"github.com/mahmutsamiyagmur/flightsystem/internal/domain"
)

// Port: full persistence boundary for transportations. Embeds the
// read-only catalog used by route composition.
type TransportationRepository interface {
	SegmentCatalog

	List(ctx context.Context) ([]domain.Transportation, error)
	GetByID(ctx context.Context, id int64) (domain.Transportation, error)
	ListByEndpoints(ctx context.Context, originID, destinationID int64) ([]domain.Transportation, error)
	Create(ctx context.Context, t domain.Transportation) (domain.Transportation, error)
	Update(ctx context.Context, t domain.Transportation) (domain.Transportation, error)
	Delete(ctx context.Context, id int64) error
}
