package future

import (
	"sync"
	"time"
)

// A Timer is a [Future] that completes once a duration has elapsed.
//
// A Timer bridges a blocking wait into the polling contract the crude
// way: the first poll starts a goroutine that sleeps out the duration.
// A realistic implementation would instead register the waker with a
// reactor running a timer wheel; everything else about this type,
// including its shared done-flag cell, carries over to that design
// unchanged.
type Timer struct {
	duration time.Duration
	shared   *timerShared
	spent    bool
}

// timerShared is the cell shared between the polling side and the
// background goroutine.
// All access goes through mu.
// done transitions false to true exactly once and never resets; waker
// always holds the latest one registered.
type timerShared struct {
	mu    sync.Mutex
	waker Waker
	done  bool
}

// NewTimer returns a new [Timer] that completes d after it is first
// polled.
// No background work starts until then.
func NewTimer(d time.Duration) *Timer {
	return &Timer{duration: d}
}

// Poll implements the [Future] interface.
func (tm *Timer) Poll(cx *Context) Poll[struct{}] {
	if tm.spent {
		panic("future: future polled after completion")
	}

	shared := tm.shared
	if shared == nil {
		shared = &timerShared{waker: cx.Waker()}
		tm.shared = shared

		go func(d time.Duration) {
			time.Sleep(d)
			shared.mu.Lock()
			shared.done = true
			// Waking under the lock keeps the done write and the wake
			// atomic against a poller mid-refresh of its registration.
			shared.waker.Wake()
			shared.mu.Unlock()
		}(tm.duration)
	}

	shared.mu.Lock()
	defer shared.mu.Unlock()

	// The flag, not the goroutine's liveness, decides readiness.
	// With a reactor registration there is no goroutine to ask.
	if !shared.done {
		shared.waker = cx.Waker()
		return Pending[struct{}]()
	}

	tm.spent = true
	tm.shared = nil

	return Ready(struct{}{})
}
