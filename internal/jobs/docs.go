// Package jobs provides the background work of the courier service.
//
// # Available Jobs
//
//  1. DeliveryWorker - one goroutine per submitted shipment; waits the
//     configured delay, then marks the shipment Delivered and inserts it into
//     the record store
//  2. RecordStatsJob - cron job (github.com/robfig/cron/v3) logging record
//     counts, every minute by default
//
// # Usage
//
//	worker := jobs.NewDeliveryWorker(deliverHandler, 2*time.Second, logger)
//	statsJob := jobs.NewRecordStatsJob(statsHandler, "@every 1m", logger)
//	jobManager := jobs.NewJobManager(statsJob, worker)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Interruption
//
// StopAll interrupts deliveries still waiting out their delay. Those
// shipments are dropped and logged at warn level; they never reach the
// store. Completed deliveries are unaffected.
package jobs
