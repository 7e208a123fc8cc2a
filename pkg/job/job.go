// Package job runs periodic background tasks until their context is done.
package job

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"github.com/samandr77/microservices/alvaras/pkg/logger"
)

type job struct {
	name     string
	interval time.Duration
	fn       func(ctx context.Context) error
}

type Scheduler struct {
	jobs []job
	wg   sync.WaitGroup
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

func (s *Scheduler) Register(name string, interval time.Duration, fn func(ctx context.Context) error) *Scheduler {
	return s.TryRegister(true, name, interval, fn)
}

// TryRegister skips the job when it is disabled or has no interval.
func (s *Scheduler) TryRegister(enabled bool, name string, interval time.Duration, fn func(ctx context.Context) error) *Scheduler {
	if !enabled || interval <= 0 {
		return s
	}

	s.jobs = append(s.jobs, job{
		name:     name,
		interval: interval,
		fn:       fn,
	})

	return s
}

// Start runs every job once right away and then on its interval.
func (s *Scheduler) Start(ctx context.Context) {
	for _, j := range s.jobs {
		s.wg.Add(1)

		go s.run(ctx, j)
	}
}

func (s *Scheduler) run(ctx context.Context, j job) {
	defer s.wg.Done()

	ctx = logger.SetCommand(ctx, j.name)
	l := slog.Default().With("job", j.name)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		l.DebugContext(ctx, "job started")

		err := s.withRecover(ctx, l, j)
		if err != nil {
			l.ErrorContext(ctx, fmt.Sprintf("job failed: %s", err))
		} else {
			l.DebugContext(ctx, "job finished")
		}

		select {
		case <-ctx.Done():
			l.DebugContext(ctx, "job stopped by ctx")
			return
		case <-ticker.C:
		}
	}
}

func (s *Scheduler) withRecover(ctx context.Context, l *slog.Logger, j job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			l.ErrorContext(ctx, "job panic", "error", r, "stack", string(debug.Stack()))
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	return j.fn(ctx)
}

// Wait blocks until every started job has returned.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}
