// Package jobs provides the scheduled background tasks of the delivery
// platform, built on github.com/robfig/cron/v3.
//
// There is a single job today: EarningsResetJob, which zeroes the riders'
// daily earnings accumulators at midnight. Jobs are managed through
// JobManager:
//
//	jobManager := jobs.NewJobManager(resetHandler, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs

import (
	"fmt"
	"log/slog"

	"mtaani/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	earningsResetJob *EarningsResetJob
}

// NewJobManager creates a job manager with all required jobs wired up.
func NewJobManager(
	resetHandler commands.ResetDailyEarningsCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		earningsResetJob: NewEarningsResetJob(resetHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.earningsResetJob.Start(); err != nil {
		return fmt.Errorf("failed to start earnings reset job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.earningsResetJob.Stop()
}
