package jobs

import (
	"fmt"
	"log/slog"

	"resty/internal/core/application/usecases/queries"
	"resty/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	dashboardSnapshotJob *DashboardSnapshotJob
	overdueOrderAlertJob *OverdueOrderAlertJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	dashboardStatsHandler queries.GetDashboardStatsQueryHandler,
	searchOrdersHandler queries.SearchOrdersQueryHandler,
	clock ports.Clock,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		dashboardSnapshotJob: NewDashboardSnapshotJob(dashboardStatsHandler, logger),
		overdueOrderAlertJob: NewOverdueOrderAlertJob(searchOrdersHandler, clock, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.dashboardSnapshotJob.Start(); err != nil {
		return fmt.Errorf("failed to start dashboard snapshot job: %w", err)
	}

	if err := jm.overdueOrderAlertJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.dashboardSnapshotJob.Stop()
		return fmt.Errorf("failed to start overdue order alert job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.dashboardSnapshotJob.Stop()
	jm.overdueOrderAlertJob.Stop()
}
