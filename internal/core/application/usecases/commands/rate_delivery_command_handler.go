package commands

import (
	"context"
)

// RateDeliveryCommandHandler records post-delivery ratings. A customer
// rating also folds into the rider's running average in the same
// transaction, so the ledger can never drift from the per-delivery record.
// Rider-to-customer ratings live on the delivery alone.
type RateDeliveryCommandHandler struct {
	uowFactory UoWFactory
}

// NewRateDeliveryCommandHandler creates the handler.
func NewRateDeliveryCommandHandler(uowFactory UoWFactory) RateDeliveryCommandHandler {
	return RateDeliveryCommandHandler{uowFactory: uowFactory}
}

// Handle applies the rating in the direction implied by the actor.
func (h *RateDeliveryCommandHandler) Handle(ctx context.Context, cmd RateDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()

	aggregate, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	switch {
	case aggregate.CustomerID().IsEqual(cmd.ActorID()):
		rating, rateErr := aggregate.RateRider(cmd.Value(), cmd.Review())
		if rateErr != nil {
			return rateErr
		}

		riderRepo := uow.RiderRepository()
		rated, getErr := riderRepo.Get(ctx, *aggregate.RiderID())
		if getErr != nil {
			return getErr
		}
		if err = rated.RecordRating(rating.Value()); err != nil {
			return err
		}
		if err = riderRepo.Update(ctx, rated); err != nil {
			return err
		}

	case aggregate.RiderID() != nil && aggregate.RiderID().IsEqual(cmd.ActorID()):
		if _, err = aggregate.RateCustomer(cmd.Value(), cmd.Review()); err != nil {
			return err
		}

	default:
		return ErrUnauthorized
	}

	if err = deliveryRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
