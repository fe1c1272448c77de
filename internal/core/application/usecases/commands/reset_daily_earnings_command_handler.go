package commands

import (
	"context"
	"log/slog"
)

// ResetDailyEarningsCommandHandler zeroes the daily accumulator of every
// rider who earned something today. Lifetime totals are untouched. All
// resets commit in one transaction so a crash never leaves half the fleet
// reset.
type ResetDailyEarningsCommandHandler struct {
	uowFactory RiderUoWFactory
	logger     *slog.Logger
}

// NewResetDailyEarningsCommandHandler creates the handler.
func NewResetDailyEarningsCommandHandler(
	uowFactory RiderUoWFactory,
	logger *slog.Logger,
) ResetDailyEarningsCommandHandler {
	return ResetDailyEarningsCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "reset_daily_earnings_handler"),
	}
}

// Handle performs the reset.
func (h *ResetDailyEarningsCommandHandler) Handle(
	ctx context.Context,
	cmd ResetDailyEarningsCommand,
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

	riders, err := riderRepo.GetAllWithTodayEarnings(ctx)
	if err != nil {
		return err
	}

	for _, aggregate := range riders {
		aggregate.ResetDailyEarnings()
		if err = riderRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "daily rider earnings reset", "riders", len(riders))
	return nil
}
