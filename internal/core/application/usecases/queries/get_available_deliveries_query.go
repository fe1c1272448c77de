// Package queries contains the read side of the application: use cases that
// return read models without mutating state. The tracking and earnings
// queries go straight to the database with raw SQL; the available-deliveries
// query goes through the domain because eligibility rules (selection
// windows, rejections) live there.
package queries

import (
	"errors"

	"mtaani/internal/core/domain/model/kernel"
	"mtaani/internal/pkg/guard"
)

var ErrGetAvailableDeliveriesQueryIsNotConstructed = errors.New(
	"GetAvailableDeliveriesQuery must be created via NewGetAvailableDeliveriesQuery constructor",
)

// GetAvailableDeliveriesQuery asks for the pending deliveries a rider can
// pick up right now, nearest pickup first.
type GetAvailableDeliveriesQuery struct {
	riderID kernel.UUID
	limit   int

	guard guard.ConstructorGuard
}

// NewGetAvailableDeliveriesQuery creates the query. A limit of zero or less
// falls back to the matcher's default cap.
func NewGetAvailableDeliveriesQuery(riderID kernel.UUID, limit int) (GetAvailableDeliveriesQuery, error) {
	if err := riderID.Validate(); err != nil {
		return GetAvailableDeliveriesQuery{}, err
	}

	return GetAvailableDeliveriesQuery{
		riderID: riderID,
		limit:   limit,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetAvailableDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableDeliveriesQueryIsNotConstructed)
}

func (q GetAvailableDeliveriesQuery) RiderID() kernel.UUID { return q.riderID }

func (q GetAvailableDeliveriesQuery) Limit() int { return q.limit }

// GetAvailableDeliveriesQueryResponse is one delivery the rider may accept.
// PickupDistanceKm is measured from the rider's last reported position.
type GetAvailableDeliveriesQueryResponse struct {
	ID                 kernel.UUID
	Code               string
	Pickup             kernel.GeoPoint
	Dropoff            kernel.GeoPoint
	PickupDistanceKm   float64
	TripDistanceKm     float64
	TotalFare          float64
	RiderEarnings      float64
	PackageSize        string
	PackageDescription string
	PaymentMethod      string
	PreferredRider     bool
}
