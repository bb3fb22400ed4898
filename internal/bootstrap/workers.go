package bootstrap

import (
	"log/slog"
	"time"

	"github.com/osse101/ColorRush_Go/internal/scheduler"
	"github.com/osse101/ColorRush_Go/internal/worker"
)

// StartBackgroundJobs starts the worker pool and schedules the periodic session report.
func StartBackgroundJobs(sessions worker.SessionCounter, interval time.Duration) (*worker.Pool, *scheduler.Scheduler) {
	pool := worker.NewPool(WorkerPoolSize, WorkerPoolQueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	sched.Schedule(interval, worker.NewSessionReportJob(sessions))
	slog.Info(LogMsgSessionReportScheduled, "interval", interval)

	return pool, sched
}
