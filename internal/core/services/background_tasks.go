package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/nttbank/account-service/internal/middleware"
)

// BackgroundTasks runs fire-and-forget work that must outlive the request that started it.
// Tasks keep the request's values (logger, request id) but not its cancellation or deadline.
// Errors and panics are logged and never reported back to the caller.
type BackgroundTasks struct {
	wg sync.WaitGroup
}

func NewBackgroundTasks() *BackgroundTasks {
	return &BackgroundTasks{}
}

// Go starts fn on its own goroutine. A positive timeout bounds the task's context.
func (b *BackgroundTasks) Go(parent context.Context, name string, timeout time.Duration, fn func(ctx context.Context) error) {
	ctx := context.WithoutCancel(parent)
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()

		cancel := context.CancelFunc(func() {})
		if timeout > 0 {
			ctx, cancel = context.WithTimeout(ctx, timeout)
		}
		defer cancel()

		logger := middleware.GetLoggerFromCtx(ctx).With(slog.String("task", name))
		defer func() {
			if r := recover(); r != nil {
				logger.Error("Background task panicked", slog.String("panic", fmt.Sprint(r)))
			}
		}()

		if err := fn(ctx); err != nil {
			logger.Error("Background task failed", slog.String("error", err.Error()))
			return
		}
		logger.Debug("Background task finished")
	}()
}

// Wait blocks until every started task has returned or ctx is done.
func (b *BackgroundTasks) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		b.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("background tasks still running: %w", ctx.Err())
	}
}
