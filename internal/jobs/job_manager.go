// Package jobs provides the scheduled background tasks of the order
// tracking service, built on github.com/robfig/cron/v3.
//
// The only job today is StatusReportJob, which refreshes the per-status
// order gauge and logs a population summary every 15 seconds. Jobs are
// managed through JobManager, which starts and stops them as a unit.
package jobs

import (
	"fmt"
	"log/slog"

	"ordertrack/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	statusReportJob *StatusReportJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(listOrdersHandler queries.ListOrdersQueryHandler, logger *slog.Logger) *JobManager {
	return &JobManager{
		statusReportJob: NewStatusReportJob(listOrdersHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.statusReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start status report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.statusReportJob.Stop()
}
