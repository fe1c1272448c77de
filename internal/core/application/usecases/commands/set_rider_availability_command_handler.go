package commands

import (
	"context"
	"log/slog"

	"mtaani/internal/core/ports"
)

// SetRiderAvailabilityCommandHandler flips a rider online or offline and
// keeps the geo feed consistent: offline riders are dropped from the feed
// so discovery never routes work to them.
type SetRiderAvailabilityCommandHandler struct {
	uowFactory RiderUoWFactory
	feed       ports.RiderLocationFeed
	logger     *slog.Logger
}

// NewSetRiderAvailabilityCommandHandler creates the handler.
func NewSetRiderAvailabilityCommandHandler(
	uowFactory RiderUoWFactory,
	feed ports.RiderLocationFeed,
	logger *slog.Logger,
) SetRiderAvailabilityCommandHandler {
	return SetRiderAvailabilityCommandHandler{
		uowFactory: uowFactory,
		feed:       feed,
		logger:     logger.With("component", "set_rider_availability_handler"),
	}
}

// Handle toggles the rider's availability.
func (h *SetRiderAvailabilityCommandHandler) Handle(
	ctx context.Context,
	cmd SetRiderAvailabilityCommand,
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

	riderRepo := uow.RiderRepository()

	aggregate, err := riderRepo.Get(ctx, cmd.RiderID())
	if err != nil {
		return err
	}

	if cmd.Online() {
		aggregate.GoOnline()
	} else {
		aggregate.GoOffline()
	}

	if err = riderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if !cmd.Online() {
		if err = h.feed.Remove(ctx, cmd.RiderID()); err != nil {
			h.logger.WarnContext(ctx, "geo feed removal failed",
				"rider_id", cmd.RiderID().String(), "error", err)
		}
	} else if loc := aggregate.Location(); loc != nil {
		if err = h.feed.UpdateLocation(ctx, cmd.RiderID(), *loc); err != nil {
			h.logger.WarnContext(ctx, "geo feed update failed",
				"rider_id", cmd.RiderID().String(), "error", err)
		}
	}

	return nil
}
