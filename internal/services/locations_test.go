package services

import (
	"context"
	"errors"
	"testing"

	"github.com/mahmutsamiyagmur/flightsystem/internal/adapters/repositories"
	"github.com/mahmutsamiyagmur/flightsystem/internal/domain"
)

func TestLocationCreateRejectsDuplicateCode(t *testing.T) {
	store := repositories.NewMemoryStore()
	cache := newFakeRouteCache()
	svc := NewLocationService(store, cache)

	ctx := context.Background()
	if _, err := svc.Create(ctx, domain.Location{Name: "Istanbul Airport", Country: "Turkey", City: "Istanbul", LocationCode: "IST"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := svc.Create(ctx, domain.Location{Name: "Imitation Airport", Country: "Turkey", City: "Istanbul", LocationCode: "IST"})
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("want ErrConflict, got %v", err)
	}

	if cache.invalidations != 1 {
		t.Fatalf("cache invalidated %d times, want 1 (only the successful create)", cache.invalidations)
	}
}

func TestLocationUpdateChecksCodeCollision(t *testing.T) {
	store := repositories.NewMemoryStore()
	cache := newFakeRouteCache()
	svc := NewLocationService(store, cache)

	ctx := context.Background()
	ist, err := svc.Create(ctx, domain.Location{Name: "Istanbul Airport", Country: "Turkey", City: "Istanbul", LocationCode: "IST"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Create(ctx, domain.Location{Name: "Heathrow Airport", Country: "UK", City: "London", LocationCode: "LHR"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ist.LocationCode = "LHR"
	if _, err := svc.Update(ctx, ist); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("want ErrConflict, got %v", err)
	}

	// Renaming without touching the code is fine.
	ist.LocationCode = "IST"
	ist.Name = "Istanbul Grand Airport"
	if _, err := svc.Update(ctx, ist); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
