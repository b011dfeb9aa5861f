package jobs

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestQueueProcessesJobs(t *testing.T) {
	defer goleak.VerifyNone(t)

	var processed int32
	var wg sync.WaitGroup
	wg.Add(3)
	q := NewQueue("test", func(ctx context.Context, job Job) error {
		atomic.AddInt32(&processed, 1)
		return nil
	}, QueueConfig{Workers: 2, OnResult: func(job Job, err error) {
		assert.NoError(t, err)
		wg.Done()
	}})
	q.Start(context.Background())

	for i := 0; i < 3; i++ {
		require.NoError(t, q.Enqueue(Job{ID: "job", Type: "notify"}))
	}
	wg.Wait()
	q.Stop()

	assert.Equal(t, int32(3), atomic.LoadInt32(&processed))
}

func TestQueueRetriesThenReportsFailure(t *testing.T) {
	defer goleak.VerifyNone(t)

	var attempts int32
	done := make(chan error, 1)
	q := NewQueue("retry", func(ctx context.Context, job Job) error {
		atomic.AddInt32(&attempts, 1)
		return errors.New("boom")
	}, QueueConfig{MaxRetries: 2, RetryDelay: time.Millisecond, OnResult: func(job Job, err error) {
		done <- err
	}})
	q.Start(context.Background())
	require.NoError(t, q.Enqueue(Job{ID: "1"}))

	select {
	case err := <-done:
		assert.EqualError(t, err, "boom")
	case <-time.After(2 * time.Second):
		t.Fatal("job never reported")
	}
	q.Stop()
	assert.Equal(t, int32(3), atomic.LoadInt32(&attempts))
}

func TestQueueRejectsWhenClosed(t *testing.T) {
	defer goleak.VerifyNone(t)

	q := NewQueue("closed", func(ctx context.Context, job Job) error { return nil }, QueueConfig{})
	assert.ErrorIs(t, q.Enqueue(Job{}), ErrQueueClosed)

	q.Start(context.Background())
	q.Stop()
	assert.ErrorIs(t, q.Enqueue(Job{}), ErrQueueClosed)
	q.Stop()
}

func TestQueueStopCancelsPendingRetries(t *testing.T) {
	defer goleak.VerifyNone(t)

	started := make(chan struct{}, 1)
	q := NewQueue("slow-retry", func(ctx context.Context, job Job) error {
		started <- struct{}{}
		return errors.New("fail")
	}, QueueConfig{MaxRetries: 5, RetryDelay: time.Hour})
	q.Start(context.Background())
	require.NoError(t, q.Enqueue(Job{ID: "1"}))
	<-started
	q.Stop()
}

func TestQueueTryEnqueueDoesNotWait(t *testing.T) {
	defer goleak.VerifyNone(t)

	started := make(chan struct{}, 1)
	release := make(chan struct{})
	q := NewQueue("test", func(ctx context.Context, job Job) error {
		started <- struct{}{}
		select {
		case <-release:
		case <-ctx.Done():
		}
		return nil
	}, QueueConfig{Workers: 1, BufferSize: 1})

	assert.ErrorIs(t, q.TryEnqueue(Job{ID: "early"}), ErrQueueClosed)

	q.Start(context.Background())
	require.NoError(t, q.TryEnqueue(Job{ID: "1"}))
	<-started
	require.NoError(t, q.TryEnqueue(Job{ID: "2"}))
	assert.ErrorIs(t, q.TryEnqueue(Job{ID: "3"}), ErrQueueFull)
	assert.Equal(t, 1, q.Len())

	close(release)
	q.Stop()
}
