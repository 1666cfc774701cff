// Package jobs provides scheduled background tasks for the service order
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. SurveyReminderJob - Sweeps surveys still awaiting completion and stamps
// a reminder on each, on a configurable schedule.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(sendSurveyRemindersHandler, schedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// An empty sweep (no surveys awaiting completion) is a normal outcome and is
// not logged as an error. Only infrastructure failures are reported.
package jobs
