package repository

import (
	"context"
	"errors"

	"claimdesk/pkg/contracts/domain"
)

// ErrReadOnly is returned by Save on implementations that only import
// externally produced data.
var ErrReadOnly = errors.New("repository is read-only")

// ClaimRepository stores and retrieves claim cases keyed by tracking number.
//
// A missing tracking number is not an error: GetByTracking returns
// (nil, nil) when no case exists for the key.
type ClaimRepository interface {
	// Save stores or wholesale-overwrites the case under its tracking
	// number. Read-only implementations return ErrReadOnly.
	Save(ctx context.Context, c *domain.ClaimCase) error

	// GetByTracking looks up a case by exact tracking number.
	GetByTracking(ctx context.Context, tracking domain.TrackingNumber) (*domain.ClaimCase, error)

	// GetAllCases returns every known case. Order is implementation
	// defined unless documented otherwise.
	GetAllCases(ctx context.Context) ([]*domain.ClaimCase, error)
}
