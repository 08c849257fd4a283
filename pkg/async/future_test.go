package async_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrcraft/pkg/async"
)

func TestAsync_ReturnsValue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	future := async.Async(ctx, 21, func(ctx context.Context, n int) (int, error) {
		return n * 2, nil
	})

	value, err := future.Await()
	require.NoError(t, err)
	assert.Equal(t, 42, value)
}

func TestAsync_ErrorPropagation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	expectedErr := errors.New("computation failed")

	future := async.Async(ctx, "input", func(ctx context.Context, s string) (string, error) {
		return "", expectedErr
	})

	_, err := future.Await()
	assert.ErrorIs(t, err, expectedErr)
}

func TestAsync_ContextCancellation(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	future := async.Async(ctx, 1, func(ctx context.Context, n int) (int, error) {
		return n, nil
	})

	_, err := future.Await()
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAwaitWithTimeout(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	future := async.Async(ctx, struct{}{}, func(ctx context.Context, _ struct{}) (int, error) {
		time.Sleep(200 * time.Millisecond)
		return 1, nil
	})

	_, err := future.AwaitWithTimeout(20 * time.Millisecond)
	assert.ErrorIs(t, err, async.ErrTimeout)

	// The future still completes after the timeout
	value, err := future.Await()
	require.NoError(t, err)
	assert.Equal(t, 1, value)
}

func TestIsComplete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	blocker := make(chan struct{})
	future := async.Async(ctx, struct{}{}, func(ctx context.Context, _ struct{}) (bool, error) {
		<-blocker
		return true, nil
	})

	assert.False(t, future.IsComplete())
	close(blocker)

	_, err := future.Await()
	require.NoError(t, err)
	assert.True(t, future.IsComplete())
}

func TestResolved(t *testing.T) {
	t.Parallel()

	future := async.Resolved("ready")
	assert.True(t, future.IsComplete())

	value, err := future.Await()
	require.NoError(t, err)
	assert.Equal(t, "ready", value)
}

func TestRejected(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("nope")
	future := async.Rejected[string](sentinel)
	assert.True(t, future.IsComplete())

	_, err := future.Await()
	assert.ErrorIs(t, err, sentinel)
}

func TestWaitAll(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	futures := []*async.Future[int]{
		async.Async(ctx, 1, func(ctx context.Context, n int) (int, error) { return n, nil }),
		async.Async(ctx, 2, func(ctx context.Context, n int) (int, error) { return n, nil }),
		async.Async(ctx, 3, func(ctx context.Context, n int) (int, error) { return n, nil }),
	}

	values, err := async.WaitAll(futures...)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, values)
}

func TestWaitAll_FirstError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	sentinel := errors.New("second failed")
	futures := []*async.Future[int]{
		async.Async(ctx, 1, func(ctx context.Context, n int) (int, error) { return n, nil }),
		async.Async(ctx, 2, func(ctx context.Context, n int) (int, error) { return 0, sentinel }),
	}

	_, err := async.WaitAll(futures...)
	assert.ErrorIs(t, err, sentinel)
}

func TestWaitAny(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	slow := async.Async(ctx, struct{}{}, func(ctx context.Context, _ struct{}) (string, error) {
		time.Sleep(300 * time.Millisecond)
		return "slow", nil
	})
	fast := async.Async(ctx, struct{}{}, func(ctx context.Context, _ struct{}) (string, error) {
		return "fast", nil
	})

	index, value, err := async.WaitAny(slow, fast)
	require.NoError(t, err)
	assert.Equal(t, 1, index)
	assert.Equal(t, "fast", value)
}

func TestWaitAny_Empty(t *testing.T) {
	t.Parallel()

	index, _, err := async.WaitAny[int]()
	assert.Equal(t, -1, index)
	assert.ErrorIs(t, err, async.ErrNoFutures)
}
