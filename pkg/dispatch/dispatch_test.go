package dispatch_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"go-contact-backend/pkg/dispatch"
)

func TestRunnerExecutesTasks(t *testing.T) {
	r := dispatch.NewRunner()
	var ran atomic.Bool

	r.Go("test", func(ctx context.Context) error {
		ran.Store(true)
		return nil
	})

	assert.NoError(t, r.Shutdown(context.Background()))
	assert.True(t, ran.Load())
}

func TestRunnerKeepsFailuresToItself(t *testing.T) {
	r := dispatch.NewRunner()

	r.Go("failing", func(ctx context.Context) error {
		return errors.New("smtp unreachable")
	})
	r.Go("panicking", func(ctx context.Context) error {
		panic("boom")
	})

	// Neither failure mode must escape the runner
	assert.NoError(t, r.Shutdown(context.Background()))
}

func TestShutdownHonorsDeadline(t *testing.T) {
	r := dispatch.NewRunner()
	release := make(chan struct{})

	r.Go("slow", func(ctx context.Context) error {
		<-release
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := r.Shutdown(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(release)
	assert.NoError(t, r.Shutdown(context.Background()))
}
