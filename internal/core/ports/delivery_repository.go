// Package ports defines the contracts between the application core and
// infrastructure: repositories, the unit of work, the event publisher, and
// the rider location feed. Adapters implement them; use cases depend on
// them.
package ports

import (
	"context"
	"time"

	"mtaani/internal/core/domain/model/delivery"
	"mtaani/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery
// aggregates.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate to storage.
	// The delivery must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery aggregate.
	// The delivery must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// UpdateIfPending persists the aggregate only if the stored row is
	// still in pending status. Returns false without error when another
	// writer moved the row first; this is the single-winner guarantee
	// behind concurrent accepts.
	UpdateIfPending(ctx context.Context, aggregate *delivery.Delivery) (bool, error)

	// Get retrieves a delivery aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetByCode retrieves a delivery aggregate by its external code.
	GetByCode(ctx context.Context, code string) (*delivery.Delivery, error)

	// GetAllPending retrieves every delivery still in pending status.
	// Feeds the rider discovery query.
	GetAllPending(ctx context.Context) ([]*delivery.Delivery, error)

	// GetActiveByRider retrieves the rider's deliveries in accepted,
	// picked_up, or in_transit status.
	GetActiveByRider(ctx context.Context, riderID kernel.UUID) ([]*delivery.Delivery, error)

	// GetTrackingEvents retrieves the full tracking log for a delivery,
	// oldest first.
	GetTrackingEvents(ctx context.Context, deliveryID kernel.UUID) ([]delivery.TrackingEvent, error)

	// CountDeliveredByCustomer counts the customer's completed deliveries.
	// Used to flag repeat customers at creation time.
	CountDeliveredByCustomer(ctx context.Context, customerID kernel.UUID) (int64, error)

	// SumRiderEarningsSince totals the rider share of deliveries completed
	// at or after the given instant. Backs the earnings summary query.
	SumRiderEarningsSince(ctx context.Context, riderID kernel.UUID, since time.Time) (float64, error)
}
