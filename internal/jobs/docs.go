// Package jobs provides scheduled background tasks for the storefront.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around order intake.
//
// # Available Jobs
//
// 1. UnreadOrdersJob - Runs every minute to report the backlog of orders no
// operator has looked at yet
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(countUnreadOrdersHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Job errors are logged and the schedule keeps running; a failed poll is
// recovered by the next tick.
package jobs
