// Package jobs provides scheduled background tasks for the ordering service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. StaleCartReaperJob - Deletes carts untouched for longer than the staleness window
//
// # Usage
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(reapHandler, "0 */5 * * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use six-field cron expressions with a leading seconds field.
// The reaper is disabled unless a schedule is configured; opening a cart
// reaps stale carts anyway, so correctness never depends on the job.
//
// Enabling a schedule starts the cron scheduler goroutine inside the server
// process. Deployments that must not run in-process background work leave
// REAPER_SCHEDULE empty and rely on the reaping done by cart creation.
package jobs
