package commands

import (
	"context"
	"log/slog"

	"mtaani/internal/core/domain/model/delivery"
	"mtaani/internal/core/ports"
	"mtaani/internal/pkg/clock"
)

// AcceptDeliveryCommandHandler resolves the accept race. Any number of
// riders may issue this command for the same delivery concurrently; exactly
// one wins. The in-memory eligibility checks run first, then the write is
// conditioned on the stored row still being pending. A losing rider gets
// ErrDeliveryNoLongerAvailable, never a torn state.
type AcceptDeliveryCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
	clock      clock.Clock
	logger     *slog.Logger
}

// NewAcceptDeliveryCommandHandler creates the handler.
func NewAcceptDeliveryCommandHandler(
	uowFactory UoWFactory,
	publisher ports.EventPublisher,
	clk clock.Clock,
	logger *slog.Logger,
) AcceptDeliveryCommandHandler {
	return AcceptDeliveryCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		clock:      clk,
		logger:     logger.With("component", "accept_delivery_handler"),
	}
}

// Handle processes one rider's claim.
func (h *AcceptDeliveryCommandHandler) Handle(ctx context.Context, cmd AcceptDeliveryCommand) error {
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
	riderRepo := uow.RiderRepository()

	aggregate, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	claimer, err := riderRepo.Get(ctx, cmd.RiderID())
	if err != nil {
		return err
	}
	if !claimer.IsVerified() {
		return ErrUnauthorized
	}

	now := h.clock.Now()
	if err = aggregate.Accept(cmd.RiderID(), now); err != nil {
		return err
	}

	won, err := deliveryRepo.UpdateIfPending(ctx, aggregate)
	if err != nil {
		return err
	}
	if !won {
		h.logger.InfoContext(ctx, "accept race lost",
			"delivery_id", cmd.DeliveryID().String(),
			"rider_id", cmd.RiderID().String())
		return ErrDeliveryNoLongerAvailable
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.publisher.PublishDeliveryEvent(ctx, aggregate, delivery.EventAccepted); err != nil {
		h.logger.WarnContext(ctx, "event publish failed",
			"delivery_id", cmd.DeliveryID().String(), "error", err)
	}

	return nil
}
