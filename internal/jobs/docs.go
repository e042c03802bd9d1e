// Package jobs provides scheduled background tasks for the admin client.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to keep the session's read models current while the client is running.
//
// # Available Jobs
//
// 1. OrderRefreshJob - Periodically reloads the in-memory order collection from the backend
// 2. NotificationPollJob - Periodically polls the notification feed and reports unread counts
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(refreshHandler, notificationsHandler, schedules, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are six-field cron expressions (with seconds) supplied through
// configuration, so refresh and poll cadence can be tuned per deployment.
//
// # Error Handling
//
// - The refresh job inherits the list read path's never-fail semantics; a
//   backend outage shows up as an empty collection, not a job error
// - The poll job logs fetch problems and keeps its schedule
// - Failed job starts will stop any already running jobs
package jobs
