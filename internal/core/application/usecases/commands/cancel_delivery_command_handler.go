package commands

import (
	"context"
	"log/slog"

	"mtaani/internal/core/domain/model/delivery"
	"mtaani/internal/core/ports"
	"mtaani/internal/pkg/clock"
)

// CancelDeliveryCommandHandler cancels a delivery on behalf of its customer
// or its assigned rider.
type CancelDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	publisher  ports.EventPublisher
	clock      clock.Clock
	logger     *slog.Logger
}

// NewCancelDeliveryCommandHandler creates the handler.
func NewCancelDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	publisher ports.EventPublisher,
	clk clock.Clock,
	logger *slog.Logger,
) CancelDeliveryCommandHandler {
	return CancelDeliveryCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		clock:      clk,
		logger:     logger.With("component", "cancel_delivery_handler"),
	}
}

// Handle cancels the delivery after checking the actor is a party to it.
func (h *CancelDeliveryCommandHandler) Handle(ctx context.Context, cmd CancelDeliveryCommand) error {
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

	isCustomer := aggregate.CustomerID().IsEqual(cmd.ActorID())
	isAssignedRider := aggregate.RiderID() != nil && aggregate.RiderID().IsEqual(cmd.ActorID())
	if !isCustomer && !isAssignedRider {
		return ErrUnauthorized
	}

	if err = aggregate.Cancel(cmd.Reason(), h.clock.Now()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.publisher.PublishDeliveryEvent(ctx, aggregate, delivery.EventCancelled); err != nil {
		h.logger.WarnContext(ctx, "event publish failed",
			"delivery_id", cmd.DeliveryID().String(), "error", err)
	}

	return nil
}
