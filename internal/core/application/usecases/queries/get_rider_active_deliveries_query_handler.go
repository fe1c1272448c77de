package queries

import (
	"context"

	"mtaani/internal/core/ports"
	"mtaani/internal/pkg/errs"
)

// GetRiderActiveDeliveriesQueryHandler lists the rider's accepted,
// picked-up, and in-transit deliveries, oldest acceptance first.
type GetRiderActiveDeliveriesQueryHandler struct {
	deliveryRepository ports.DeliveryRepository
}

// NewGetRiderActiveDeliveriesQueryHandler creates a handler for rider
// workload queries.
func NewGetRiderActiveDeliveriesQueryHandler(
	deliveryRepository ports.DeliveryRepository,
) (GetRiderActiveDeliveriesQueryHandler, error) {
	if deliveryRepository == nil {
		return GetRiderActiveDeliveriesQueryHandler{},
			errs.NewValueIsRequiredError("deliveryRepository")
	}

	return GetRiderActiveDeliveriesQueryHandler{deliveryRepository: deliveryRepository}, nil
}

// Handle returns the rider's active deliveries.
func (h GetRiderActiveDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetRiderActiveDeliveriesQuery,
) ([]GetRiderActiveDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	active, err := h.deliveryRepository.GetActiveByRider(ctx, query.RiderID())
	if err != nil {
		return nil, err
	}

	responses := make([]GetRiderActiveDeliveriesQueryResponse, 0, len(active))
	for _, d := range active {
		responses = append(responses, GetRiderActiveDeliveriesQueryResponse{
			ID:            d.ID(),
			Code:          d.Code(),
			Status:        d.Status().String(),
			Pickup:        d.Pickup(),
			Dropoff:       d.Dropoff(),
			DistanceKm:    d.DistanceKm(),
			RiderEarnings: d.Fare().RiderEarnings(),
			PaymentMethod: d.PaymentMethod().String(),
			AcceptedAt:    d.AcceptedAt(),
		})
	}

	return responses, nil
}
