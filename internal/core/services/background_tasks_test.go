package services_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nttbank/account-service/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackgroundTasks_SurvivesParentCancellation(t *testing.T) {
	tasks := services.NewBackgroundTasks()
	parent, cancel := context.WithCancel(context.Background())
	cancel()

	var ran atomic.Bool
	tasks.Go(parent, "detached", time.Second, func(ctx context.Context) error {
		if ctx.Err() == nil {
			ran.Store(true)
		}
		return nil
	})

	ctx, stop := context.WithTimeout(context.Background(), time.Second)
	defer stop()
	require.NoError(t, tasks.Wait(ctx))
	assert.True(t, ran.Load())
}

func TestBackgroundTasks_AppliesTimeout(t *testing.T) {
	tasks := services.NewBackgroundTasks()

	var deadline atomic.Bool
	tasks.Go(context.Background(), "bounded", 10*time.Millisecond, func(ctx context.Context) error {
		<-ctx.Done()
		deadline.Store(errors.Is(ctx.Err(), context.DeadlineExceeded))
		return ctx.Err()
	})

	ctx, stop := context.WithTimeout(context.Background(), time.Second)
	defer stop()
	require.NoError(t, tasks.Wait(ctx))
	assert.True(t, deadline.Load())
}

func TestBackgroundTasks_RecoversPanics(t *testing.T) {
	tasks := services.NewBackgroundTasks()
	tasks.Go(context.Background(), "panicky", 0, func(context.Context) error {
		panic("boom")
	})

	ctx, stop := context.WithTimeout(context.Background(), time.Second)
	defer stop()
	assert.NoError(t, tasks.Wait(ctx))
}

func TestBackgroundTasks_WaitHonoursDeadline(t *testing.T) {
	tasks := services.NewBackgroundTasks()
	release := make(chan struct{})
	defer close(release)

	tasks.Go(context.Background(), "slow", 0, func(context.Context) error {
		<-release
		return nil
	})

	ctx, stop := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer stop()
	assert.ErrorIs(t, tasks.Wait(ctx), context.DeadlineExceeded)
}
