package jobs

import (
	"context"
	"log/slog"
	"time"

	"resty/internal/core/application/usecases/queries"
	"resty/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// OverdueOrderAlertJob watches for orders still in the kitchen past their
// estimated ready time and logs a warning per overdue order, so the floor
// notices slipping ETAs without watching the board.
type OverdueOrderAlertJob struct {
	handler queries.SearchOrdersQueryHandler
	clock   ports.Clock
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverdueOrderAlertJob creates a job that checks for overdue orders
// every minute.
func NewOverdueOrderAlertJob(
	handler queries.SearchOrdersQueryHandler,
	clock ports.Clock,
	logger *slog.Logger,
) *OverdueOrderAlertJob {
	return &OverdueOrderAlertJob{
		handler: handler,
		clock:   clock,
		cron:    cron.New(),
		logger:  logger.With("component", "overdue_order_alert_job"),
	}
}

// Start begins the overdue order check to run every minute.
func (j *OverdueOrderAlertJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		query, err := queries.NewSearchOrdersQuery("", "")
		if err != nil {
			j.logger.ErrorContext(ctx, "Overdue order alert job failed", "error", err)
			return
		}

		orders, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Overdue order alert job failed", "error", err)
			return
		}

		now := j.clock.Now()
		for _, o := range orders {
			if o.IsTerminal || !now.After(o.EstimatedReadyTime) {
				continue
			}
			j.logger.WarnContext(ctx, "Order past estimated ready time",
				"order_id", o.ID,
				"status", o.Status,
				"table", o.TableNumber,
				"overdue", now.Sub(o.EstimatedReadyTime).Round(time.Second).String(),
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue order alert job started (running every minute)")
	return nil
}

// Stop stops the overdue order check.
func (j *OverdueOrderAlertJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue order alert job stopped")
}
