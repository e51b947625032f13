package lock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestWithDelay(t *testing.T) {
	t.Run(`runs and returns the code error`, func(t *testing.T) {
		expected := errors.New("boom")
		ok, err := WithDelay(context.Background(), "run", time.Second, func() error { return expected })
		require.True(t, ok)
		require.ErrorIs(t, err, expected)

		ok, err = WithDelay(context.Background(), "run", time.Second, func() error { return nil })
		require.True(t, ok, "lock released after the first run")
		require.NoError(t, err)
	})
	t.Run(`serializes holders of the same key`, func(t *testing.T) {
		var running, maxRunning, skipped int32
		wg := sync.WaitGroup{}
		for n := 0; n < 5; n++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				ok, _ := WithDelay(context.Background(), "shared", 5*time.Second, func() error {
					cur := atomic.AddInt32(&running, 1)
					for {
						prev := atomic.LoadInt32(&maxRunning)
						if cur <= prev || atomic.CompareAndSwapInt32(&maxRunning, prev, cur) {
							break
						}
					}
					time.Sleep(10 * time.Millisecond)
					atomic.AddInt32(&running, -1)
					return nil
				})
				if !ok {
					atomic.AddInt32(&skipped, 1)
				}
			}()
		}
		wg.Wait()
		require.Equal(t, int32(1), maxRunning)
		require.Zero(t, skipped)
	})
	t.Run(`gives up after wait`, func(t *testing.T) {
		release := make(chan struct{})
		started := make(chan struct{})
		go func() {
			_, _ = WithDelay(context.Background(), "busy", time.Second, func() error {
				close(started)
				<-release
				return nil
			})
		}()
		<-started
		called := false
		ok, err := WithDelay(context.Background(), "busy", 100*time.Millisecond, func() error {
			called = true
			return nil
		})
		close(release)
		require.False(t, ok)
		require.NoError(t, err)
		require.False(t, called)
	})
	t.Run(`cancelled context gives up`, func(t *testing.T) {
		release := make(chan struct{})
		started := make(chan struct{})
		go func() {
			_, _ = WithDelay(context.Background(), "cancel", time.Second, func() error {
				close(started)
				<-release
				return nil
			})
		}()
		<-started
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		ok, err := WithDelay(ctx, "cancel", time.Second, func() error { return nil })
		close(release)
		require.False(t, ok)
		require.NoError(t, err)
	})
	t.Run(`keys do not block each other`, func(t *testing.T) {
		release := make(chan struct{})
		started := make(chan struct{})
		go func() {
			_, _ = WithDelay(context.Background(), "provider-1", time.Second, func() error {
				close(started)
				<-release
				return nil
			})
		}()
		<-started
		ok, err := WithDelay(context.Background(), "provider-2", 50*time.Millisecond, func() error { return nil })
		close(release)
		require.True(t, ok)
		require.NoError(t, err)
	})
	t.Run(`panic releases the lock`, func(t *testing.T) {
		require.Panics(t, func() {
			_, _ = WithDelay(context.Background(), "panic", time.Second, func() error { panic("boom") })
		})
		ok, err := WithDelay(context.Background(), "panic", 100*time.Millisecond, func() error { return nil })
		require.True(t, ok)
		require.NoError(t, err)
	})
}
