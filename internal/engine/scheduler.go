package engine

import (
	"context"
	"sync"

	"Attirra/internal/logger"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"
)

// Scheduler runs slow work on a bounded worker pool and hands results back
// to the render thread, which drains them once per frame.
type Scheduler struct {
	pool pond.Pool

	mu    sync.Mutex
	queue []func()
}

func NewScheduler(ctx context.Context, workers int) *Scheduler {
	if workers < 1 {
		workers = 1
	}
	return &Scheduler{pool: pond.NewPool(workers, pond.WithContext(ctx))}
}

// Background runs task on a worker. Panics are logged, not propagated.
func (s *Scheduler) Background(task func()) {
	s.pool.Submit(func() {
		defer func() {
			if r := recover(); r != nil {
				logger.Log.Error("Background task panicked", zap.Any("panic", r))
			}
		}()
		task()
	})
}

// Main queues task for the next Drain. Safe from any goroutine.
func (s *Scheduler) Main(task func()) {
	s.mu.Lock()
	s.queue = append(s.queue, task)
	s.mu.Unlock()
}

// Drain runs every queued task in submission order and returns how many ran.
// Tasks queued while draining wait for the next call.
func (s *Scheduler) Drain() int {
	s.mu.Lock()
	tasks := s.queue
	s.queue = nil
	s.mu.Unlock()

	for _, task := range tasks {
		task()
	}
	return len(tasks)
}

// Stop waits for running background tasks and rejects new ones.
func (s *Scheduler) Stop() {
	s.pool.StopAndWait()
}
