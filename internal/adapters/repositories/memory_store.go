package repositories

import (
	"context"
	"fmt"
	"sync"

	"github.com/mahmutsamiyagmur/flightsystem/internal/domain"
)

// MemoryStore is an in-memory implementation of both repository ports,
// used by tests and local experiments in place of Postgres.
type MemoryStore struct {
	mu              sync.RWMutex
	nextLocationID  int64
	nextSegmentID   int64
	locations       []domain.Location
	transportations []domain.Transportation
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextLocationID: 1, nextSegmentID: 1}
}

func (m *MemoryStore) List(ctx context.Context) ([]domain.Location, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]domain.Location(nil), m.locations...), nil
}

func (m *MemoryStore) GetByID(ctx context.Context, id int64) (domain.Location, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, loc := range m.locations {
		if loc.ID == id {
			return loc, nil
		}
	}
	return domain.Location{}, fmt.Errorf("location id=%d: %w", id, domain.ErrNotFound)
}

func (m *MemoryStore) GetByCode(ctx context.Context, code string) (domain.Location, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, loc := range m.locations {
		if loc.LocationCode == code {
			return loc, nil
		}
	}
	return domain.Location{}, fmt.Errorf("location code %q: %w", code, domain.ErrNotFound)
}

func (m *MemoryStore) ExistsByCode(ctx context.Context, code string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, loc := range m.locations {
		if loc.LocationCode == code {
			return true, nil
		}
	}
	return false, nil
}

func (m *MemoryStore) Create(ctx context.Context, loc domain.Location) (domain.Location, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	loc.ID = m.nextLocationID
	m.nextLocationID++
	m.locations = append(m.locations, loc)
	return loc, nil
}

func (m *MemoryStore) Update(ctx context.Context, loc domain.Location) (domain.Location, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.locations {
		if m.locations[i].ID == loc.ID {
			m.locations[i] = loc
			return loc, nil
		}
	}
	return domain.Location{}, fmt.Errorf("location id=%d: %w", loc.ID, domain.ErrNotFound)
}

func (m *MemoryStore) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.locations {
		if m.locations[i].ID == id {
			m.locations = append(m.locations[:i], m.locations[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("location id=%d: %w", id, domain.ErrNotFound)
}

// Transportations returns a segment-side view of the same store so one
// MemoryStore can back both repository ports.
func (m *MemoryStore) Transportations() *MemoryTransportations {
	return &MemoryTransportations{store: m}
}

// MemoryTransportations implements the TransportationRepository port over
// a MemoryStore.
type MemoryTransportations struct {
	store *MemoryStore
}

func (m *MemoryTransportations) List(ctx context.Context) ([]domain.Transportation, error) {
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()
	return append([]domain.Transportation(nil), m.store.transportations...), nil
}

func (m *MemoryTransportations) GetByID(ctx context.Context, id int64) (domain.Transportation, error) {
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()

	for _, t := range m.store.transportations {
		if t.ID == id {
			return t, nil
		}
	}
	return domain.Transportation{}, fmt.Errorf("transportation id=%d: %w", id, domain.ErrNotFound)
}

func (m *MemoryTransportations) ListByEndpoints(ctx context.Context, originID, destinationID int64) ([]domain.Transportation, error) {
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()

	var out []domain.Transportation
	for _, t := range m.store.transportations {
		if t.OriginLocationID == originID && t.DestinationLocationID == destinationID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *MemoryTransportations) ListOperatingOn(ctx context.Context, weekday int) ([]domain.Transportation, error) {
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()

	var out []domain.Transportation
	for _, t := range m.store.transportations {
		if t.OperatesOn(weekday) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *MemoryTransportations) ListOperatingFrom(ctx context.Context, weekday int, originID int64) ([]domain.Transportation, error) {
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()

	var out []domain.Transportation
	for _, t := range m.store.transportations {
		if t.OriginLocationID == originID && t.OperatesOn(weekday) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *MemoryTransportations) Create(ctx context.Context, t domain.Transportation) (domain.Transportation, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	t.ID = m.store.nextSegmentID
	m.store.nextSegmentID++
	m.store.transportations = append(m.store.transportations, t)
	return t, nil
}

func (m *MemoryTransportations) Update(ctx context.Context, t domain.Transportation) (domain.Transportation, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	for i := range m.store.transportations {
		if m.store.transportations[i].ID == t.ID {
			m.store.transportations[i] = t
			return t, nil
		}
	}
	return domain.Transportation{}, fmt.Errorf("transportation id=%d: %w", t.ID, domain.ErrNotFound)
}

func (m *MemoryTransportations) Delete(ctx context.Context, id int64) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	for i := range m.store.transportations {
		if m.store.transportations[i].ID == id {
			m.store.transportations = append(m.store.transportations[:i], m.store.transportations[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("transportation id=%d: %w", id, domain.ErrNotFound)
}
