package baseworker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRunSurvivesPanic(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var runs int32
	done := make(chan struct{})
	w := NewInstance("TestWorker", time.Millisecond, time.Millisecond)
	go func() {
		w.Run(ctx, func(ctx context.Context) {
			if atomic.AddInt32(&runs, 1) == 1 {
				panic("first run")
			}
			if atomic.LoadInt32(&runs) == 3 {
				cancel()
			}
		})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("worker did not stop")
	}
	require.GreaterOrEqual(t, atomic.LoadInt32(&runs), int32(3))
}
