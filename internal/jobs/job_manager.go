package jobs

import (
	"fmt"
	"log/slog"

	"foodly/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	staleCartReaperJob *StaleCartReaperJob
}

// NewJobManager creates a job manager. An empty reaperSchedule leaves the
// reaper disabled.
func NewJobManager(
	reapHandler commands.ReapStaleCartsCommandHandler,
	reaperSchedule string,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{}
	if reaperSchedule != "" {
		jm.staleCartReaperJob = NewStaleCartReaperJob(reapHandler, reaperSchedule, logger)
	}
	return jm
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.staleCartReaperJob == nil {
		return nil
	}
	if err := jm.staleCartReaperJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale cart reaper job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.staleCartReaperJob != nil {
		jm.staleCartReaperJob.Stop()
	}
}
