package queries

import (
	"errors"
	"time"

	"mtaani/internal/core/domain/model/kernel"
	"mtaani/internal/pkg/guard"
)

var ErrGetRiderActiveDeliveriesQueryIsNotConstructed = errors.New(
	"GetRiderActiveDeliveriesQuery must be created via NewGetRiderActiveDeliveriesQuery constructor",
)

// GetRiderActiveDeliveriesQuery asks for the rider's current workload: every
// delivery they have accepted and not yet completed or cancelled.
type GetRiderActiveDeliveriesQuery struct {
	riderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRiderActiveDeliveriesQuery creates the query for the given rider.
func NewGetRiderActiveDeliveriesQuery(riderID kernel.UUID) (GetRiderActiveDeliveriesQuery, error) {
	if err := riderID.Validate(); err != nil {
		return GetRiderActiveDeliveriesQuery{}, err
	}

	return GetRiderActiveDeliveriesQuery{
		riderID: riderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetRiderActiveDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetRiderActiveDeliveriesQueryIsNotConstructed)
}

func (q GetRiderActiveDeliveriesQuery) RiderID() kernel.UUID { return q.riderID }

// GetRiderActiveDeliveriesQueryResponse is one delivery on the rider's
// active plate, oldest acceptance first.
type GetRiderActiveDeliveriesQueryResponse struct {
	ID            kernel.UUID
	Code          string
	Status        string
	Pickup        kernel.GeoPoint
	Dropoff       kernel.GeoPoint
	DistanceKm    float64
	RiderEarnings float64
	PaymentMethod string
	AcceptedAt    *time.Time
}
