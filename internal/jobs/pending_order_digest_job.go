package jobs

import (
	"context"
	"log/slog"

	"marketplace/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// PendingOrderDigestJob periodically logs the number of open orders.
// Runs every minute so operators see backlog growth in the logs.
type PendingOrderDigestJob struct {
	handler queries.CountUncompletedOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPendingOrderDigestJob creates the digest job.
func NewPendingOrderDigestJob(
	handler queries.CountUncompletedOrdersQueryHandler,
	logger *slog.Logger,
) *PendingOrderDigestJob {
	return &PendingOrderDigestJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "pending_order_digest_job"),
	}
}

// Start begins the digest job to run every minute.
func (j *PendingOrderDigestJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		query := queries.NewCountUncompletedOrdersQuery()

		count, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Pending order digest failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Pending order digest", "openOrders", count)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending order digest job started (running every minute)")
	return nil
}

// Stop stops the digest job.
func (j *PendingOrderDigestJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending order digest job stopped")
}
