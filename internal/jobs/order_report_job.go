package jobs

import (
	"context"
	"log/slog"

	"foodorder/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OrderReportJob periodically logs a snapshot of order counts per status.
// Runs every minute so operators can follow order throughput from the logs.
type OrderReportJob struct {
	handler queries.GetOrderStatsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderReportJob creates a new job for reporting order statistics.
// Uses GetOrderStatsQueryHandler to count orders per status every minute.
func NewOrderReportJob(handler queries.GetOrderStatsQueryHandler, logger *slog.Logger) *OrderReportJob {
	return &OrderReportJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "order_report_job"),
	}
}

// Start begins the order report job to run every minute.
func (j *OrderReportJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetOrderStatsQuery()

		stats, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Order report job failed", "error", err)
			return
		}

		for _, stat := range stats {
			j.logger.InfoContext(ctx, "Order report",
				"status", stat.Status.String(),
				"count", stat.Count,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order report job started (running every minute)")
	return nil
}

// Stop stops the order report job.
func (j *OrderReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order report job stopped")
}
