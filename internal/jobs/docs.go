// Package jobs provides scheduled background tasks for the mailroom engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the service.
//
// # Available Jobs
//
// 1. CapacityReconciliationJob - Periodically recounts the lockers of every
// site and repairs the denormalized counters when they have drifted
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(reconcileHandler, "*/5 * * * *", logger)
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
// The reconciliation schedule is a standard five-field cron expression taken
// from configuration. Counter drift is an accepted consequence of the
// non-transactional locker create and delete paths, so the job is a repair
// loop, not a correctness requirement on the hot path.
//
// # Error Handling
//
// - Per-site reconciliation failures are joined and logged; one bad site
// does not stop the pass
// - Failed job starts report the error to the caller
package jobs
