package jobs

import (
	"context"
	"log/slog"

	"storefront/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// UnreadOrdersJob periodically counts orders nobody has looked at yet and
// logs the backlog for operator visibility. New orders land in "processing"
// unread; a growing count means placements are outpacing fulfillment.
type UnreadOrdersJob struct {
	handler queries.CountUnreadOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewUnreadOrdersJob creates a new job for monitoring the unread backlog.
// Uses CountUnreadOrdersQueryHandler to poll the count every minute.
func NewUnreadOrdersJob(handler queries.CountUnreadOrdersQueryHandler, logger *slog.Logger) *UnreadOrdersJob {
	return &UnreadOrdersJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "unread_orders_job"),
	}
}

// Start begins the unread orders job to run every minute.
func (j *UnreadOrdersJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		query := queries.NewCountUnreadOrdersQuery()

		count, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Unread orders job failed", "error", err)
			return
		}

		if count > 0 {
			j.logger.InfoContext(ctx, "Unread orders pending", "count", count)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Unread orders job started (running every minute)")
	return nil
}

// Stop stops the unread orders job.
func (j *UnreadOrdersJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Unread orders job stopped")
}
