// Package jobs provides scheduled background tasks for the restaurant service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the order pipeline.
//
// # Available Jobs
//
// 1. DashboardSnapshotJob - Runs every minute to recompute and log the dashboard summary
// 2. OverdueOrderAlertJob - Runs every minute to flag orders past their estimated ready time
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(dashboardStatsHandler, searchOrdersHandler, clock, logger)
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
// Both jobs use the cron expression "* * * * *" which means they run every
// minute. Dashboard numbers and ETA alerts do not need sub-minute freshness.
//
// # Error Handling
//
// - Both jobs log failures and keep their schedule; a failed tick never stops the job
// - Failed job starts will stop any already running jobs
package jobs
