package queries

import (
	"errors"

	"mtaani/internal/core/domain/model/kernel"
	"mtaani/internal/pkg/guard"
)

var ErrGetRiderEarningsQueryIsNotConstructed = errors.New(
	"GetRiderEarningsQuery must be created via NewGetRiderEarningsQuery constructor",
)

// GetRiderEarningsQuery asks for a rider's earnings summary.
type GetRiderEarningsQuery struct {
	riderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRiderEarningsQuery creates the query for the given rider.
func NewGetRiderEarningsQuery(riderID kernel.UUID) (GetRiderEarningsQuery, error) {
	if err := riderID.Validate(); err != nil {
		return GetRiderEarningsQuery{}, err
	}

	return GetRiderEarningsQuery{
		riderID: riderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetRiderEarningsQuery) Validate() error {
	return q.guard.Validate(ErrGetRiderEarningsQueryIsNotConstructed)
}

func (q GetRiderEarningsQuery) RiderID() kernel.UUID { return q.riderID }

// GetRiderEarningsQueryResponse is the earnings read model: the ledger
// accumulators kept on the rider row plus the week window, delivered-trip
// count, and rating derived from the deliveries table.
type GetRiderEarningsQueryResponse struct {
	RiderID        kernel.UUID
	EarningsToday  float64
	EarningsWeek   float64
	EarningsTotal  float64
	DeliveredCount int64
	RatingAvg      float64
	RatingCount    int
}
