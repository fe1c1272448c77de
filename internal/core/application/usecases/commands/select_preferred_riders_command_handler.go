package commands

import (
	"context"

	"mtaani/internal/pkg/clock"
)

// SelectPreferredRidersCommandHandler applies a customer's rider selection
// to a pending delivery. Only the delivery's own customer may do this.
type SelectPreferredRidersCommandHandler struct {
	uowFactory DeliveryUoWFactory
	clock      clock.Clock
}

// NewSelectPreferredRidersCommandHandler creates the handler.
func NewSelectPreferredRidersCommandHandler(
	uowFactory DeliveryUoWFactory,
	clk clock.Clock,
) SelectPreferredRidersCommandHandler {
	return SelectPreferredRidersCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

// Handle loads the delivery, checks the actor, and opens the selection
// window. Fails with ErrUnauthorized for anyone but the delivery's
// customer and with delivery.ErrNotPending once a rider has accepted.
func (h *SelectPreferredRidersCommandHandler) Handle(
	ctx context.Context,
	cmd SelectPreferredRidersCommand,
) error {
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

	if !aggregate.CustomerID().IsEqual(cmd.CustomerID()) {
		return ErrUnauthorized
	}

	if err = aggregate.SelectPreferredRiders(cmd.RiderIDs(), h.clock.Now()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
