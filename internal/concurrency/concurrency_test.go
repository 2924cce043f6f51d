package concurrency

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestNewPool(t *testing.T) {
	t.Cleanup(func() {
		goleak.VerifyNone(t)
	})

	t.Run("runs_all_tasks", func(t *testing.T) {
		p := NewPool(context.Background(), 4)
		var n atomic.Int32
		for i := 0; i < 10; i++ {
			p.Go(func(ctx context.Context) error {
				n.Add(1)
				return nil
			})
		}
		require.NoError(t, p.Wait())
		require.Equal(t, int32(10), n.Load())
	})

	t.Run("returns_first_error", func(t *testing.T) {
		p := NewPool(context.Background(), 2)
		expected := context.DeadlineExceeded
		p.Go(func(ctx context.Context) error { return nil })
		p.Go(func(ctx context.Context) error { return expected })
		require.ErrorIs(t, p.Wait(), expected)
	})
}
