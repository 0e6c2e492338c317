package future_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/soooch/future"
)

func TestTimer(t *testing.T) {
	for _, d := range []time.Duration{0, 50 * time.Millisecond, 500 * time.Millisecond} {
		d := d
		t.Run(d.String(), func(t *testing.T) {
			t.Parallel()

			tm := future.NewTimer(d)

			start := time.Now()
			future.BlockOn[struct{}](tm)

			if elapsed := time.Since(start); elapsed < d {
				t.Errorf("Timer completed after %v; want at least %v.", elapsed, d)
			}
		})
	}
}

func TestTimerWakerRefresh(t *testing.T) {
	tm := future.NewTimer(100 * time.Millisecond)

	var stale atomic.Bool
	if tm.Poll(future.NewContext(future.WakeFunc(func() { stale.Store(true) }))).IsReady() {
		t.Fatal("Timer completed on the first poll.")
	}

	// Re-register with a newer waker, as a driver that changed between
	// polls would.
	woken := make(chan struct{})
	if tm.Poll(future.NewContext(future.WakeFunc(func() { close(woken) }))).IsReady() {
		t.Fatal("Timer completed before its duration elapsed.")
	}

	<-woken

	if stale.Load() {
		t.Error("Completion invoked a stale waker.")
	}

	if !tm.Poll(nopContext()).IsReady() {
		t.Error("Timer did not complete after waking.")
	}
}

func TestTimerRepollFault(t *testing.T) {
	tm := future.NewTimer(0)
	future.BlockOn[struct{}](tm)

	if !mustPanic(func() { tm.Poll(nopContext()) }) {
		t.Error("Polling a completed Timer did not panic.")
	}
}
