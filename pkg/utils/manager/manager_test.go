package manager

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestAddAndWait(t *testing.T) {
	mgr := New(zap.NewNop())

	var value atomic.Int32
	mgr.Add(context.Background(), "worker", func(ctx context.Context) {
		time.Sleep(100 * time.Millisecond)
		value.Store(11)
	})

	mgr.Wait()
	require.Equal(t, int32(11), value.Load(), "manager did not wait for go routine to complete")
}

func TestAddWithContextCancel(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	mgr := New(zap.New(core))

	ctx, cancel := context.WithCancel(context.Background())
	var stopped atomic.Bool
	mgr.Add(ctx, "server", func(ctx context.Context) {
		<-ctx.Done()
		stopped.Store(true)
	})

	go cancel()
	mgr.Wait()
	require.True(t, stopped.Load(), "manager did not wait for go routine to complete when context is cancelled")
	require.Equal(t, 1, logs.FilterField(zap.String("component", "server")).Len())
}

func TestWaitWithTimeout(t *testing.T) {
	mgr := New(zap.NewNop())

	release := make(chan struct{})
	mgr.Add(context.Background(), "slow", func(ctx context.Context) {
		<-release
	})

	err := mgr.WaitWithTimeout(100 * time.Millisecond)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	close(release)
	require.NoError(t, mgr.WaitWithTimeout(time.Second))
}
