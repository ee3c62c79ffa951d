// Package jobs provides scheduled background tasks for the address service.
//
// Jobs are built on github.com/robfig/cron/v3. The only job today is
// AddressValidationJob, which geocodes addresses that were stored without
// being confirmed by the provider and marks the recognised ones valid.
//
// # Usage
//
//	job := jobs.NewAddressValidationJob(handler, "@every 5m", 100, logger)
//	jobManager := jobs.NewJobManager(job)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use the standard five-field cron syntax or descriptors such as
// "@every 5m". A tick that fires while the previous batch is still running is
// skipped.
//
// # Error Handling
//
// A failed batch is logged and the cursor restarts from the beginning on the
// next tick. Addresses the provider rejects stay pending and are retried on
// the next pass over the backlog.
package jobs
