package jobs

import (
	"context"
	"log/slog"

	"resty/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DashboardSnapshotJob periodically recomputes the dashboard summary and
// logs it, giving operators a minute-by-minute trace of service load without
// polling the API.
type DashboardSnapshotJob struct {
	handler queries.GetDashboardStatsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDashboardSnapshotJob creates a job that snapshots the dashboard stats
// every minute.
func NewDashboardSnapshotJob(handler queries.GetDashboardStatsQueryHandler, logger *slog.Logger) *DashboardSnapshotJob {
	return &DashboardSnapshotJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "dashboard_snapshot_job"),
	}
}

// Start begins the dashboard snapshot job to run every minute.
func (j *DashboardSnapshotJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		stats, err := j.handler.Handle(ctx, queries.NewGetDashboardStatsQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Dashboard snapshot job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Dashboard snapshot",
			"active_orders", stats.ActiveOrders,
			"total_orders", stats.TotalOrders,
			"revenue_today", stats.RevenueToday.StringFixed(2),
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dashboard snapshot job started (running every minute)")
	return nil
}

// Stop stops the dashboard snapshot job.
func (j *DashboardSnapshotJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Dashboard snapshot job stopped")
}
