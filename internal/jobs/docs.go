// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance the request path cannot cover.
//
// # Available Jobs
//
// 1. PrescriptionReminderJob - Runs every 15 minutes and logs pharmacies
// sitting on pending prescription reviews, so stalled orders surface in the
// operational logs before customers complain.
//
// 2. SessionCleanupJob - Runs hourly and deletes expired session tokens.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(reminderJob, cleanupJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Job errors are logged and the schedule keeps running; a failed run never
// stops the job. Failed job starts stop any already running jobs.
package jobs
