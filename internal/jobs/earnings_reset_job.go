package jobs

import (
	"context"
	"log/slog"

	"mtaani/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// EarningsResetJob zeroes every rider's daily earnings accumulator at
// midnight. Lifetime totals survive the reset.
type EarningsResetJob struct {
	handler commands.ResetDailyEarningsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewEarningsResetJob creates the midnight reset job.
func NewEarningsResetJob(
	handler commands.ResetDailyEarningsCommandHandler,
	logger *slog.Logger,
) *EarningsResetJob {
	return &EarningsResetJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "earnings_reset_job"),
	}
}

// Start schedules the job to run at midnight every day.
func (j *EarningsResetJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * *", func() {
		ctx := context.Background()
		cmd := commands.NewResetDailyEarningsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Daily earnings reset failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Earnings reset job started (running at midnight)")
	return nil
}

// Stop stops the job.
func (j *EarningsResetJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Earnings reset job stopped")
}
