package services

import (
	"context"
	"fmt"
	"time"

	"github.com/mahmutsamiyagmur/flightsystem/internal/domain"
	"github.com/mahmutsamiyagmur/flightsystem/internal/ports"
)

// TransportationService manages scheduled transportations. Every
// successful mutation flushes the route cache before it is acknowledged,
// so no later query can serve itineraries built from stale segments.
type TransportationService struct {
	repo      ports.TransportationRepository
	locations ports.LocationRepository
	cache     ports.RouteCache
}

func NewTransportationService(repo ports.TransportationRepository, locations ports.LocationRepository, cache ports.RouteCache) *TransportationService {
	return &TransportationService{repo: repo, locations: locations, cache: cache}
}

func (s *TransportationService) List(ctx context.Context) ([]domain.Transportation, error) {
	return s.repo.List(ctx)
}

func (s *TransportationService) GetByID(ctx context.Context, id int64) (domain.Transportation, error) {
	return s.repo.GetByID(ctx, id)
}

// ListByEndpoints returns every transportation running between two
// locations named by code, regardless of operating day.
func (s *TransportationService) ListByEndpoints(ctx context.Context, originCode, destinationCode string) ([]domain.Transportation, error) {
	origin, err := s.locations.GetByCode(ctx, originCode)
	if err != nil {
		return nil, fmt.Errorf("list transportations: resolve origin: %w", err)
	}

	destination, err := s.locations.GetByCode(ctx, destinationCode)
	if err != nil {
		return nil, fmt.Errorf("list transportations: resolve destination: %w", err)
	}

	return s.repo.ListByEndpoints(ctx, origin.ID, destination.ID)
}

// ListAvailableFrom returns the transportations departing the given
// location on the weekday of the given date.
func (s *TransportationService) ListAvailableFrom(ctx context.Context, originCode string, date time.Time) ([]domain.Transportation, error) {
	origin, err := s.locations.GetByCode(ctx, originCode)
	if err != nil {
		return nil, fmt.Errorf("list available transportations: resolve origin: %w", err)
	}

	return s.repo.ListOperatingFrom(ctx, domain.ISOWeekday(date), origin.ID)
}

func (s *TransportationService) Create(ctx context.Context, t domain.Transportation) (domain.Transportation, error) {
	if err := s.resolveEndpoints(ctx, &t); err != nil {
		return domain.Transportation{}, fmt.Errorf("create transportation: %w", err)
	}

	created, err := s.repo.Create(ctx, t)
	if err != nil {
		return domain.Transportation{}, fmt.Errorf("create transportation: %w", err)
	}

	if err := s.invalidate(ctx); err != nil {
		return domain.Transportation{}, fmt.Errorf("create transportation: %w", err)
	}
	return created, nil
}

func (s *TransportationService) Update(ctx context.Context, t domain.Transportation) (domain.Transportation, error) {
	if _, err := s.repo.GetByID(ctx, t.ID); err != nil {
		return domain.Transportation{}, fmt.Errorf("update transportation: %w", err)
	}

	if err := s.resolveEndpoints(ctx, &t); err != nil {
		return domain.Transportation{}, fmt.Errorf("update transportation: %w", err)
	}

	updated, err := s.repo.Update(ctx, t)
	if err != nil {
		return domain.Transportation{}, fmt.Errorf("update transportation: %w", err)
	}

	if err := s.invalidate(ctx); err != nil {
		return domain.Transportation{}, fmt.Errorf("update transportation: %w", err)
	}
	return updated, nil
}

func (s *TransportationService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete transportation: %w", err)
	}
	return s.invalidate(ctx)
}

// resolveEndpoints verifies both endpoint locations exist and fills in
// their codes so stored rows round-trip with renderable endpoints.
func (s *TransportationService) resolveEndpoints(ctx context.Context, t *domain.Transportation) error {
	origin, err := s.locations.GetByID(ctx, t.OriginLocationID)
	if err != nil {
		return fmt.Errorf("resolve origin location: %w", err)
	}

	destination, err := s.locations.GetByID(ctx, t.DestinationLocationID)
	if err != nil {
		return fmt.Errorf("resolve destination location: %w", err)
	}

	t.OriginLocationCode = origin.LocationCode
	t.DestinationLocationCode = destination.LocationCode
	return nil
}

// invalidate flushes cached routes. A failure fails the mutation; see the
// consistency note on the type.
func (s *TransportationService) invalidate(ctx context.Context) error {
	if err := s.cache.InvalidateAll(ctx); err != nil {
		return fmt.Errorf("invalidate route cache: %w", err)
	}
	return nil
}
