package jobs

import (
	"context"
	"log/slog"

	"foodly/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleCartReaperJob periodically deletes abandoned carts.
// Cart creation already reaps inline, so the job only keeps the table small
// on instances that see few new carts.
type StaleCartReaperJob struct {
	handler  commands.ReapStaleCartsCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStaleCartReaperJob creates the job. schedule is a six-field cron
// expression with seconds, e.g. "0 */5 * * * *".
func NewStaleCartReaperJob(
	handler commands.ReapStaleCartsCommandHandler,
	schedule string,
	logger *slog.Logger,
) *StaleCartReaperJob {
	return &StaleCartReaperJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "stale_cart_reaper_job"),
	}
}

// Start registers the job on its schedule and starts the scheduler.
func (j *StaleCartReaperJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.Run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale cart reaper job started", "schedule", j.schedule)
	return nil
}

// Run performs a single sweep.
func (j *StaleCartReaperJob) Run() {
	ctx := context.Background()

	removed, err := j.handler.Handle(ctx, commands.NewReapStaleCartsCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale cart reaper job failed", "error", err)
		return
	}
	if removed > 0 {
		j.logger.InfoContext(ctx, "Stale carts removed", "count", removed)
	}
}

// Stop stops the scheduler. A sweep in progress runs to completion.
func (j *StaleCartReaperJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Stale cart reaper job stopped")
}
