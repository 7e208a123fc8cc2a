package job_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/alvaras/pkg/job"
)

func TestScheduler(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var ok, failing, panicking, disabled atomic.Int32

	s := job.NewScheduler().
		Register("ok", time.Millisecond, func(context.Context) error {
			ok.Add(1)
			return nil
		}).
		Register("failing", time.Millisecond, func(context.Context) error {
			failing.Add(1)
			return errors.New("boom")
		}).
		Register("panicking", time.Millisecond, func(context.Context) error {
			panicking.Add(1)
			panic("boom")
		}).
		TryRegister(false, "disabled", time.Millisecond, func(context.Context) error {
			disabled.Add(1)
			return nil
		}).
		Register("no interval", 0, func(context.Context) error {
			disabled.Add(1)
			return nil
		})

	s.Start(ctx)

	require.Eventually(t, func() bool {
		return ok.Load() >= 2 && failing.Load() >= 2 && panicking.Load() >= 2
	}, time.Second, time.Millisecond)

	cancel()
	s.Wait()

	require.Zero(t, disabled.Load())
}

func TestScheduler_RunsImmediately(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})

	s := job.NewScheduler().Register("hourly", time.Hour, func(context.Context) error {
		close(done)
		return nil
	})

	s.Start(ctx)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("job did not run on start")
	}

	cancel()
	s.Wait()
}
