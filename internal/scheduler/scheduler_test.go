package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ColorRush_Go/internal/worker"
)

// MockJob is a simple job for testing
type MockJob struct {
	RunCount atomic.Int32
	Done     chan struct{}
}

func (m *MockJob) Process(ctx context.Context) error {
	m.RunCount.Add(1)
	select {
	case m.Done <- struct{}{}:
	default:
	}
	return nil
}

func waitRun(t *testing.T, job *MockJob) {
	t.Helper()
	select {
	case <-job.Done:
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for job execution")
	}
}

func TestScheduler(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	clock := clockwork.NewFakeClock()
	sched := NewWithClock(pool, clock)
	defer sched.Stop()

	job := &MockJob{Done: make(chan struct{}, 10)}
	sched.Schedule(30*time.Second, job)

	require.NoError(t, clock.BlockUntilContext(context.Background(), 1))
	assert.Equal(t, int32(0), job.RunCount.Load())

	clock.Advance(30 * time.Second)
	waitRun(t, job)
	clock.Advance(30 * time.Second)
	waitRun(t, job)

	assert.Equal(t, int32(2), job.RunCount.Load())
}

func TestScheduler_RealClock(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	defer sched.Stop()

	job := &MockJob{Done: make(chan struct{}, 10)}
	sched.Schedule(10*time.Millisecond, job)

	waitRun(t, job)
	waitRun(t, job)
	assert.GreaterOrEqual(t, job.RunCount.Load(), int32(2))
}

func TestScheduler_StopIsIdempotent(t *testing.T) {
	pool := worker.NewPool(1, 1)
	sched := New(pool)
	sched.Schedule(time.Hour, &MockJob{Done: make(chan struct{}, 1)})

	sched.Stop()
	sched.Stop()
}
