package queries

import (
	"context"

	"mtaani/internal/core/domain/services"
	"mtaani/internal/core/ports"
	"mtaani/internal/pkg/clock"
	"mtaani/internal/pkg/errs"
)

// GetAvailableDeliveriesQueryHandler lists deliveries a rider can accept.
// Unlike the other query handlers it loads aggregates through the repository
// and delegates to the proximity matcher, because acceptance eligibility
// (rejections, customer selection windows) is domain logic that raw SQL
// would have to duplicate.
type GetAvailableDeliveriesQueryHandler struct {
	deliveryRepository ports.DeliveryRepository
	riderRepository    ports.RiderRepository
	matcher            services.ProximityMatcher
	clock              clock.Clock
}

// NewGetAvailableDeliveriesQueryHandler creates a handler for rider
// discovery queries.
func NewGetAvailableDeliveriesQueryHandler(
	deliveryRepository ports.DeliveryRepository,
	riderRepository ports.RiderRepository,
	matcher services.ProximityMatcher,
	clk clock.Clock,
) (GetAvailableDeliveriesQueryHandler, error) {
	if deliveryRepository == nil {
		return GetAvailableDeliveriesQueryHandler{},
			errs.NewValueIsRequiredError("deliveryRepository")
	}
	if riderRepository == nil {
		return GetAvailableDeliveriesQueryHandler{},
			errs.NewValueIsRequiredError("riderRepository")
	}
	if clk == nil {
		return GetAvailableDeliveriesQueryHandler{},
			errs.NewValueIsRequiredError("clock")
	}

	return GetAvailableDeliveriesQueryHandler{
		deliveryRepository: deliveryRepository,
		riderRepository:    riderRepository,
		matcher:            matcher,
		clock:              clk,
	}, nil
}

// Handle returns the rider's accessible pending deliveries, nearest pickup
// first. An offline or unverified rider gets an empty result, not an error.
func (h GetAvailableDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableDeliveriesQuery,
) ([]GetAvailableDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	requestingRider, err := h.riderRepository.Get(ctx, query.RiderID())
	if err != nil {
		return nil, err
	}

	pending, err := h.deliveryRepository.GetAllPending(ctx)
	if err != nil {
		return nil, err
	}

	candidates, err := h.matcher.FindCandidates(requestingRider, pending, h.clock.Now(), query.Limit())
	if err != nil {
		return nil, err
	}

	responses := make([]GetAvailableDeliveriesQueryResponse, 0, len(candidates))
	for _, candidate := range candidates {
		d := candidate.Delivery
		responses = append(responses, GetAvailableDeliveriesQueryResponse{
			ID:                 d.ID(),
			Code:               d.Code(),
			Pickup:             d.Pickup(),
			Dropoff:            d.Dropoff(),
			PickupDistanceKm:   candidate.DistanceKm,
			TripDistanceKm:     d.DistanceKm(),
			TotalFare:          d.Fare().TotalFare(),
			RiderEarnings:      d.Fare().RiderEarnings(),
			PackageSize:        d.Package().Size().String(),
			PackageDescription: d.Package().Description(),
			PaymentMethod:      d.PaymentMethod().String(),
			PreferredRider:     d.PreferredRiders().Contains(requestingRider.ID()),
		})
	}

	return responses, nil
}
