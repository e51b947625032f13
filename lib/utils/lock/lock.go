package lock

import (
	"context"
	"sync"
	"time"
)

// slots holds one single-token channel per key; a key is held while its token is out.
var slots sync.Map

func slot(key string) chan struct{} {
	if ch, ok := slots.Load(key); ok {
		return ch.(chan struct{})
	}
	ch := make(chan struct{}, 1)
	ch <- struct{}{}
	actual, _ := slots.LoadOrStore(key, ch)
	return actual.(chan struct{})
}

// WithDelay runs safeCode while holding the named lock. It waits up to wait for
// the lock and reports success=false without running safeCode when the wait
// runs out or ctx is done.
func WithDelay(ctx context.Context, key string, wait time.Duration, safeCode func() error) (success bool, err error) {
	timer := time.NewTimer(wait)
	defer timer.Stop()

	token := slot(key)
	select {
	case <-token:
	case <-timer.C:
		return false, nil
	case <-ctx.Done():
		return false, nil
	}
	defer func() { token <- struct{}{} }()
	return true, safeCode()
}
