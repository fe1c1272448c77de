package commands

import (
	"context"
	"log/slog"

	"mtaani/internal/core/domain/model/delivery"
	"mtaani/internal/core/ports"
	"mtaani/internal/pkg/clock"
)

// UpdateDeliveryStatusCommandHandler advances a delivery through pickup,
// transit, and completion. Only the assigned rider may advance. When the
// target is delivered, the rider's earnings credit is written inside the
// same transaction as the status change; either both land or neither does.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
	clock      clock.Clock
	logger     *slog.Logger
}

// NewUpdateDeliveryStatusCommandHandler creates the handler.
func NewUpdateDeliveryStatusCommandHandler(
	uowFactory UoWFactory,
	publisher ports.EventPublisher,
	clk clock.Clock,
	logger *slog.Logger,
) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		clock:      clk,
		logger:     logger.With("component", "update_delivery_status_handler"),
	}
}

// Handle advances the delivery to the command's target status.
func (h *UpdateDeliveryStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateDeliveryStatusCommand,
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

	if aggregate.RiderID() == nil || !aggregate.RiderID().IsEqual(cmd.RiderID()) {
		return ErrUnauthorized
	}

	now := h.clock.Now()
	var event string

	switch cmd.Target() {
	case delivery.StatusPickedUp:
		if err = aggregate.MarkPickedUp(now); err != nil {
			return err
		}
		event = delivery.EventPickedUp

	case delivery.StatusInTransit:
		if err = aggregate.MarkInTransit(now); err != nil {
			return err
		}
		event = delivery.EventInTransit

	case delivery.StatusDelivered:
		earnings, deliverErr := aggregate.MarkDelivered(now)
		if deliverErr != nil {
			return deliverErr
		}
		event = delivery.EventDelivered

		riderRepo := uow.RiderRepository()
		claimer, getErr := riderRepo.Get(ctx, cmd.RiderID())
		if getErr != nil {
			return getErr
		}
		if err = claimer.CreditEarnings(earnings); err != nil {
			return err
		}
		if err = riderRepo.Update(ctx, claimer); err != nil {
			return err
		}

	default:
		// unreachable, the command constructor rejects other targets
		return ErrUpdateDeliveryStatusCommandIsNotConstructed
	}

	if err = deliveryRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.publisher.PublishDeliveryEvent(ctx, aggregate, event); err != nil {
		h.logger.WarnContext(ctx, "event publish failed",
			"delivery_id", cmd.DeliveryID().String(), "event", event, "error", err)
	}

	return nil
}
