package jobs

import (
	"fmt"
)

// JobManager owns the background work of the service: the scheduled stats
// job and the delivery worker's goroutines.
type JobManager struct {
	recordStatsJob *RecordStatsJob
	deliveryWorker *DeliveryWorker
}

func NewJobManager(recordStatsJob *RecordStatsJob, deliveryWorker *DeliveryWorker) *JobManager {
	return &JobManager{
		recordStatsJob: recordStatsJob,
		deliveryWorker: deliveryWorker,
	}
}

// StartAll starts the scheduled jobs. The delivery worker needs no start:
// it spawns goroutines on Dispatch.
func (jm *JobManager) StartAll() error {
	if err := jm.recordStatsJob.Start(); err != nil {
		return fmt.Errorf("failed to start record stats job: %w", err)
	}
	return nil
}

// StopAll stops the scheduler, interrupts pending deliveries and waits for
// every worker goroutine to exit.
func (jm *JobManager) StopAll() {
	jm.recordStatsJob.Stop()
	jm.deliveryWorker.Stop()
	jm.deliveryWorker.Wait()
}
