// Package jobs provides scheduled background tasks for the print shop system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations the order lifecycle does not cover inline.
//
// # Available Jobs
//
// 1. TotalsAuditJob - Re-verifies the expected cash-on-delivery amount of every
// non-archived order against its items and delivery fee, logging and repairing
// any drift it finds.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(uowFactory, recalculateTotalsHandler, "0 0 3 * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The audit job uses a six-field cron expression with seconds. The default
// schedule runs nightly at 03:00, outside shop hours.
//
// # Error Handling
//
// The audit job treats every failure as unexpected and logs it; a drifted
// total is a warning since the job exists precisely to repair those.
package jobs
