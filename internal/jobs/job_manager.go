package jobs

import (
	"fmt"
	"log/slog"

	"applemart/internal/core/application/usecases/commands"
	"applemart/internal/core/application/usecases/queries"
)

// Schedules carries the cron expressions for the background jobs.
type Schedules struct {
	OrderRefresh     string
	NotificationPoll string
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderRefreshJob     *OrderRefreshJob
	notificationPollJob *NotificationPollJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes use-case handlers as dependencies to wire up the job execution.
func NewJobManager(
	refreshHandler commands.RefreshOrdersCommandHandler,
	notificationsHandler queries.GetNotificationsQueryHandler,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderRefreshJob:     NewOrderRefreshJob(refreshHandler, schedules.OrderRefresh, logger),
		notificationPollJob: NewNotificationPollJob(notificationsHandler, schedules.NotificationPoll, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start order refresh job: %w", err)
	}

	if err := jm.notificationPollJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.orderRefreshJob.Stop()
		return fmt.Errorf("failed to start notification poll job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderRefreshJob.Stop()
	jm.notificationPollJob.Stop()
}
