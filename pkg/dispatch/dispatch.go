// Package dispatch runs fire-and-forget background tasks. The request path
// schedules work here and returns immediately; task errors are logged and
// counted but never reach the caller. There is no queue bound and no retry.
package dispatch

import (
	"context"
	"sync"

	"go-contact-backend/pkg/logger"
	"go-contact-backend/pkg/metrics"
)

type Runner struct {
	wg sync.WaitGroup
}

func NewRunner() *Runner {
	return &Runner{}
}

// Go runs fn on its own goroutine. A hung task blocks only itself. Panics
// are recovered so one bad task cannot take the process down.
func (r *Runner) Go(label string, fn func(ctx context.Context) error) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer func() {
			if rec := recover(); rec != nil {
				logger.Log.Error("background task panicked", "task", label, "panic", rec)
				metrics.BackgroundTaskPanics.WithLabelValues(label).Inc()
			}
		}()
		if err := fn(context.Background()); err != nil {
			logger.Log.Error("background task failed", "task", label, "error", err)
		}
	}()
}

// Shutdown waits for in-flight tasks to finish, or gives up when ctx expires.
func (r *Runner) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
