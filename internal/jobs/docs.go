// Package jobs provides scheduled background tasks for the sample tracking
// service.
//
// Jobs use github.com/robfig/cron/v3 with a seconds field and are managed
// through JobManager:
//
//	sweep := jobs.NewOverdueSweepJob(pendingHandler, cfg.OverdueSweepSchedule, log)
//	jobManager := jobs.NewJobManager(sweep)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal(err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// OverdueSweepJob runs the Pending Sample Collection report with
// overdue_only and logs the number of overdue lines and the total overdue
// quantity per school. It runs daily at 07:00 unless configured otherwise.
package jobs
