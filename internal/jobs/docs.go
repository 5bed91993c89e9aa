// Package jobs provides scheduled background tasks for the order engine.
//
// Jobs are cron-based, built on github.com/robfig/cron/v3, and managed
// through JobManager:
//
//	jobManager := jobs.NewJobManager(expireHandler, ttl, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// The single job today is StaleOrderExpiryJob, which runs every minute and
// cancels Pending orders older than the configured time-to-live. Customers
// abandon checkouts; without the sweep those orders would sit Pending
// forever and block restaurant dashboards.
package jobs
