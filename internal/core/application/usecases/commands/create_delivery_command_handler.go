package commands

import (
	"context"
	"log/slog"

	"mtaani/internal/core/domain/model/delivery"
	"mtaani/internal/core/ports"
	"mtaani/internal/pkg/clock"
)

// CreateDeliveryCommandHandler creates deliveries in pending status. The
// external code, the repeat-customer flag, the distance, and the full fare
// breakdown are all fixed here at creation time.
type CreateDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	codeGen    delivery.CodeGenerator
	publisher  ports.EventPublisher
	clock      clock.Clock
	logger     *slog.Logger
}

// NewCreateDeliveryCommandHandler creates a handler for delivery creation.
func NewCreateDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	codeGen delivery.CodeGenerator,
	publisher ports.EventPublisher,
	clk clock.Clock,
	logger *slog.Logger,
) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
		codeGen:    codeGen,
		publisher:  publisher,
		clock:      clk,
		logger:     logger.With("component", "create_delivery_handler"),
	}
}

// Handle creates the delivery and returns the persisted aggregate so the
// caller can render the code and fare quote.
func (h *CreateDeliveryCommandHandler) Handle(
	ctx context.Context,
	cmd CreateDeliveryCommand,
) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()

	completed, err := deliveryRepo.CountDeliveredByCustomer(ctx, cmd.CustomerID())
	if err != nil {
		return nil, err
	}

	aggregate, err := delivery.NewDelivery(
		cmd.DeliveryID(),
		h.codeGen.NextCode(),
		cmd.CustomerID(),
		cmd.Pickup(),
		cmd.Dropoff(),
		cmd.Package(),
		cmd.PaymentMethod(),
		completed > 0,
		h.clock.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err = deliveryRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if err = h.publisher.PublishDeliveryEvent(ctx, aggregate, delivery.EventCreated); err != nil {
		h.logger.WarnContext(ctx, "event publish failed",
			"delivery_id", aggregate.ID().String(), "error", err)
	}

	return aggregate, nil
}
