package commands

import (
	"context"
	"log/slog"

	"mtaani/internal/core/domain/model/delivery"
	"mtaani/internal/core/ports"
	"mtaani/internal/pkg/clock"
)

// RejectDeliveryCommandHandler records rider rejections. Repeat rejections
// by the same rider are absorbed; exhausting a customer's preferred set
// silently reopens the delivery to the general pool.
type RejectDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	publisher  ports.EventPublisher
	clock      clock.Clock
	logger     *slog.Logger
}

// NewRejectDeliveryCommandHandler creates the handler.
func NewRejectDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	publisher ports.EventPublisher,
	clk clock.Clock,
	logger *slog.Logger,
) RejectDeliveryCommandHandler {
	return RejectDeliveryCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		clock:      clk,
		logger:     logger.With("component", "reject_delivery_handler"),
	}
}

// Handle records the rejection against a pending delivery.
func (h *RejectDeliveryCommandHandler) Handle(ctx context.Context, cmd RejectDeliveryCommand) error {
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

	wasCustomerSelected := aggregate.AssignmentMode() == delivery.AssignmentCustomerSelected

	if err = aggregate.RejectByRider(cmd.RiderID(), cmd.Reason(), h.clock.Now()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if wasCustomerSelected && aggregate.AssignmentMode() == delivery.AssignmentAuto {
		h.logger.InfoContext(ctx, "preferred riders exhausted, delivery reopened",
			"delivery_id", cmd.DeliveryID().String())
	}

	if err = h.publisher.PublishDeliveryEvent(ctx, aggregate, delivery.EventRejected); err != nil {
		h.logger.WarnContext(ctx, "event publish failed",
			"delivery_id", cmd.DeliveryID().String(), "error", err)
	}

	return nil
}
