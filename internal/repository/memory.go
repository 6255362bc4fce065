package repository

import (
	"context"

	"claimdesk/pkg/contracts/domain"
)

// MemoryRepository keeps claim cases in a process-local map. GetAllCases
// preserves insertion order. The backing map is not safe for concurrent
// mutation; callers sharing an instance across goroutines must serialize
// access themselves.
type MemoryRepository struct {
	cases map[string]*domain.ClaimCase
	order []string
}

// NewMemoryRepository creates an empty in-memory store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{cases: make(map[string]*domain.ClaimCase)}
}

// Save stores the case under its tracking number, replacing any prior
// record wholesale. Saving an already-known tracking number keeps its
// original position in the insertion order.
func (r *MemoryRepository) Save(_ context.Context, c *domain.ClaimCase) error {
	key := c.TrackingNumber().Value()
	if _, ok := r.cases[key]; !ok {
		r.order = append(r.order, key)
	}
	r.cases[key] = c
	return nil
}

// GetByTracking returns the case for the tracking number, or (nil, nil)
// when absent.
func (r *MemoryRepository) GetByTracking(_ context.Context, tracking domain.TrackingNumber) (*domain.ClaimCase, error) {
	return r.cases[tracking.Value()], nil
}

// GetAllCases returns every stored case in insertion order.
func (r *MemoryRepository) GetAllCases(_ context.Context) ([]*domain.ClaimCase, error) {
	out := make([]*domain.ClaimCase, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.cases[key])
	}
	return out, nil
}
