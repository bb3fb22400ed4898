package scheduler

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/osse101/ColorRush_Go/internal/worker"
)

// Scheduler enqueues jobs on a worker pool at fixed intervals
type Scheduler struct {
	workerPool *worker.Pool
	clock      clockwork.Clock
	quit       chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
}

// New creates a new scheduler on the real clock
func New(pool *worker.Pool) *Scheduler {
	return NewWithClock(pool, clockwork.NewRealClock())
}

// NewWithClock creates a scheduler driven by clock
func NewWithClock(pool *worker.Pool, clock clockwork.Clock) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		clock:      clock,
		quit:       make(chan struct{}),
	}
}

// Schedule registers a job to run every interval. The first run happens one interval from now.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	ticker := s.clock.NewTicker(interval)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer ticker.Stop()

		for {
			select {
			case <-ticker.Chan():
				// Blocks while the pool queue is full; a stopped pool returns immediately.
				if !s.workerPool.Enqueue(job) {
					return
				}
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop stops all scheduled jobs
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.quit) })
	s.wg.Wait()
}
