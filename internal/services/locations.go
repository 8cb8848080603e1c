package services

import (
	"context"
	"fmt"

	"github.com/mahmutsamiyagmur/flightsystem/internal/domain"
	"github.com/mahmutsamiyagmur/flightsystem/internal/ports"
)

// LocationService manages the location directory. Itineraries embed
// location codes, so every successful mutation flushes the route cache
// before it is acknowledged.
type LocationService struct {
	repo  ports.LocationRepository
	cache ports.RouteCache
}

func NewLocationService(repo ports.LocationRepository, cache ports.RouteCache) *LocationService {
	return &LocationService{repo: repo, cache: cache}
}

func (s *LocationService) List(ctx context.Context) ([]domain.Location, error) {
	return s.repo.List(ctx)
}

func (s *LocationService) GetByID(ctx context.Context, id int64) (domain.Location, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *LocationService) GetByCode(ctx context.Context, code string) (domain.Location, error) {
	return s.repo.GetByCode(ctx, code)
}

func (s *LocationService) Create(ctx context.Context, loc domain.Location) (domain.Location, error) {
	taken, err := s.repo.ExistsByCode(ctx, loc.LocationCode)
	if err != nil {
		return domain.Location{}, fmt.Errorf("create location: check code %q: %w", loc.LocationCode, err)
	}
	if taken {
		return domain.Location{}, fmt.Errorf("create location: code %q: %w", loc.LocationCode, domain.ErrConflict)
	}

	created, err := s.repo.Create(ctx, loc)
	if err != nil {
		return domain.Location{}, fmt.Errorf("create location: %w", err)
	}

	if err := s.invalidate(ctx); err != nil {
		return domain.Location{}, fmt.Errorf("create location: %w", err)
	}
	return created, nil
}

func (s *LocationService) Update(ctx context.Context, loc domain.Location) (domain.Location, error) {
	existing, err := s.repo.GetByID(ctx, loc.ID)
	if err != nil {
		return domain.Location{}, fmt.Errorf("update location: %w", err)
	}

	// A code change may only move to an unclaimed code.
	if existing.LocationCode != loc.LocationCode {
		taken, err := s.repo.ExistsByCode(ctx, loc.LocationCode)
		if err != nil {
			return domain.Location{}, fmt.Errorf("update location: check code %q: %w", loc.LocationCode, err)
		}
		if taken {
			return domain.Location{}, fmt.Errorf("update location: code %q: %w", loc.LocationCode, domain.ErrConflict)
		}
	}

	updated, err := s.repo.Update(ctx, loc)
	if err != nil {
		return domain.Location{}, fmt.Errorf("update location: %w", err)
	}

	if err := s.invalidate(ctx); err != nil {
		return domain.Location{}, fmt.Errorf("update location: %w", err)
	}
	return updated, nil
}

func (s *LocationService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete location: %w", err)
	}
	return s.invalidate(ctx)
}

// invalidate flushes cached routes. A failure here fails the mutation:
// acknowledging a write while stale itineraries remain servable would
// break the consistency contract.
func (s *LocationService) invalidate(ctx context.Context) error {
	if err := s.cache.InvalidateAll(ctx); err != nil {
		return fmt.Errorf("invalidate route cache: %w", err)
	}
	return nil
}
