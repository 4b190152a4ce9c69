// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the order pipeline.
//
// # Available Jobs
//
// 1. PendingOrderDigestJob - Runs every minute and logs how many orders are
// still open (not delivered and not cancelled) so operators notice a growing
// backlog without watching the dashboard.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(countUncompletedOrdersHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The digest job only observes state, so failures are logged and the next
// tick simply retries.
package jobs
