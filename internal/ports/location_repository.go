package ports

import (
	"context"

	"github.com/mahmutsamiyagmur/flightsystem/internal/domain"
)

// Port: full persistence boundary for locations. Embeds the read-only
// directory used by route composition.
type LocationRepository interface {
	LocationDirectory

	List(ctx context.Context) ([]domain.Location, error)
	GetByID(ctx context.Context, id int64) (domain.Location, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	Create(ctx context.Context, loc domain.Location) (domain.Location, error)
	Update(ctx context.Context, loc domain.Location) (domain.Location, error)
	Delete(ctx context.Context, id int64) error
}
