package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	orderStatusReportJob *OrderStatusReportJob
}

func NewJobManager(orderStatusReportJob *OrderStatusReportJob) *JobManager {
	return &JobManager{
		orderStatusReportJob: orderStatusReportJob,
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.orderStatusReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start order status report job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderStatusReportJob.Stop()
}
