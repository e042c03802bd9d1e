package jobs

import (
	"context"
	"log/slog"

	"applemart/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// NotificationPollJob periodically polls the notification feed and logs the
// unread count, mirroring the badge the admin UI renders from the same data.
type NotificationPollJob struct {
	handler  queries.GetNotificationsQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewNotificationPollJob creates a job that polls notifications on the given
// six-field cron schedule.
func NewNotificationPollJob(handler queries.GetNotificationsQueryHandler, schedule string, logger *slog.Logger) *NotificationPollJob {
	return &NotificationPollJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "notification_poll_job"),
	}
}

// Start begins the periodic notification poll.
func (j *NotificationPollJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		query := queries.NewGetNotificationsQuery(true)

		unread, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Notification poll job failed", "error", err)
			return
		}

		if len(unread) > 0 {
			j.logger.InfoContext(ctx, "Unread notifications pending", "count", len(unread))
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification poll job started", "schedule", j.schedule)
	return nil
}

// Stop stops the notification poll job.
func (j *NotificationPollJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification poll job stopped")
}
