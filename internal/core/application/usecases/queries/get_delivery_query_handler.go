package queries

import (
	"context"

	"mtaani/internal/core/domain/model/delivery"
	"mtaani/internal/core/ports"
	"mtaani/internal/pkg/errs"
)

// GetDeliveryQueryHandler serves the delivery detail view. It loads the
// aggregate through the repository so the read model and the write model
// can never disagree on enum labels or fare breakdowns.
type GetDeliveryQueryHandler struct {
	deliveryRepository ports.DeliveryRepository
}

// NewGetDeliveryQueryHandler creates a handler for delivery detail queries.
func NewGetDeliveryQueryHandler(
	deliveryRepository ports.DeliveryRepository,
) (GetDeliveryQueryHandler, error) {
	if deliveryRepository == nil {
		return GetDeliveryQueryHandler{}, errs.NewValueIsRequiredError("deliveryRepository")
	}

	return GetDeliveryQueryHandler{deliveryRepository: deliveryRepository}, nil
}

// Handle returns the delivery identified by the code.
func (h GetDeliveryQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryQuery,
) (GetDeliveryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveryQueryResponse{}, err
	}

	aggregate, err := h.deliveryRepository.GetByCode(ctx, query.Code())
	if err != nil {
		return GetDeliveryQueryResponse{}, err
	}

	return toDeliveryResponse(aggregate), nil
}

func toDeliveryResponse(d *delivery.Delivery) GetDeliveryQueryResponse {
	return GetDeliveryQueryResponse{
		ID:                 d.ID(),
		Code:               d.Code(),
		Status:             d.Status().String(),
		CustomerID:         d.CustomerID(),
		RiderID:            d.RiderID(),
		Pickup:             d.Pickup(),
		Dropoff:            d.Dropoff(),
		DistanceKm:         d.DistanceKm(),
		BaseFare:           d.Fare().BaseFare(),
		DistanceFare:       d.Fare().DistanceFare(),
		TotalFare:          d.Fare().TotalFare(),
		PlatformFee:        d.Fare().PlatformFee(),
		RiderEarnings:      d.Fare().RiderEarnings(),
		PackageType:        d.Package().Type(),
		PackageDescription: d.Package().Description(),
		PackageSize:        d.Package().Size().String(),
		PaymentMethod:      d.PaymentMethod().String(),
		PaymentStatus:      d.PaymentStatus().String(),
		AssignmentMode:     d.AssignmentMode().String(),
		SelectionExpiresAt: d.SelectionExpiresAt(),
		RepeatCustomer:     d.RepeatCustomer(),
		CreatedAt:          d.CreatedAt(),
		AcceptedAt:         d.AcceptedAt(),
		DeliveredAt:        d.DeliveredAt(),
		CancellationReason: d.CancellationReason(),
	}
}
