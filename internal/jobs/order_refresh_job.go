package jobs

import (
	"context"
	"log/slog"

	"applemart/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderRefreshJob periodically reloads the in-memory order collection from
// the backend, so transitions performed elsewhere become visible without an
// operator-triggered refresh.
type OrderRefreshJob struct {
	handler  commands.RefreshOrdersCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderRefreshJob creates a job that refreshes orders on the given
// six-field cron schedule.
func NewOrderRefreshJob(handler commands.RefreshOrdersCommandHandler, schedule string, logger *slog.Logger) *OrderRefreshJob {
	return &OrderRefreshJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_refresh_job"),
	}
}

// Start begins the periodic order refresh.
func (j *OrderRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewRefreshOrdersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Order refresh job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order refresh job started", "schedule", j.schedule)
	return nil
}

// Stop stops the order refresh job.
func (j *OrderRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order refresh job stopped")
}
