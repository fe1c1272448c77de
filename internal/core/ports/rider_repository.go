package ports

import (
	"context"

	"mtaani/internal/core/domain/model/kernel"
	"mtaani/internal/core/domain/model/rider"
)

// RiderRepository defines the persistence contract for rider aggregates.
type RiderRepository interface {
	// Add persists a new rider aggregate to storage.
	Add(ctx context.Context, aggregate *rider.Rider) error

	// Update persists changes to an existing rider aggregate.
	Update(ctx context.Context, aggregate *rider.Rider) error

	// Get retrieves a rider aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error)

	// GetAllWithTodayEarnings retrieves every rider with a non-zero daily
	// earnings counter. Used by the midnight reset job.
	GetAllWithTodayEarnings(ctx context.Context) ([]*rider.Rider, error)

	// GetAllOnline retrieves every rider currently flagged online. Fallback
	// source for nearby-rider discovery when the location feed is down.
	GetAllOnline(ctx context.Context) ([]*rider.Rider, error)
}
