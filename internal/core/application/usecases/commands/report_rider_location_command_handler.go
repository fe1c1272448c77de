package commands

import (
	"context"
	"log/slog"

	"mtaani/internal/core/ports"
	"mtaani/internal/pkg/clock"
)

// ReportRiderLocationCommandHandler records a rider position fix in the
// rider aggregate and mirrors it into the geo feed. The database write is
// authoritative; a feed failure is logged and absorbed because the feed
// can always be rebuilt from the table.
type ReportRiderLocationCommandHandler struct {
	uowFactory RiderUoWFactory
	feed       ports.RiderLocationFeed
	clock      clock.Clock
	logger     *slog.Logger
}

// NewReportRiderLocationCommandHandler creates the handler.
func NewReportRiderLocationCommandHandler(
	uowFactory RiderUoWFactory,
	feed ports.RiderLocationFeed,
	clk clock.Clock,
	logger *slog.Logger,
) ReportRiderLocationCommandHandler {
	return ReportRiderLocationCommandHandler{
		uowFactory: uowFactory,
		feed:       feed,
		clock:      clk,
		logger:     logger.With("component", "report_rider_location_handler"),
	}
}

// Handle stores the position fix.
func (h *ReportRiderLocationCommandHandler) Handle(
	ctx context.Context,
	cmd ReportRiderLocationCommand,
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

	if err = aggregate.ReportLocation(cmd.Location(), h.clock.Now()); err != nil {
		return err
	}

	if err = riderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.feed.UpdateLocation(ctx, cmd.RiderID(), cmd.Location()); err != nil {
		h.logger.WarnContext(ctx, "geo feed update failed",
			"rider_id", cmd.RiderID().String(), "error", err)
	}

	return nil
}
