package future_test

import (
	"testing"

	"github.com/soooch/future"
)

func TestUntilEquals(t *testing.T) {
	var made []*countdown
	next := func() future.Future[int] {
		c := &countdown{value: len(made) + 1, pendings: 1}
		made = append(made, c)
		return c
	}

	future.BlockOn[struct{}](future.UntilEquals(next, 4))

	if len(made) != 4 {
		t.Fatalf("Factory was invoked %d times; want 4.", len(made))
	}
	for i, c := range made {
		if c.polls != 2 {
			t.Errorf("Sub-future %d was polled %d times; want 2.", i+1, c.polls)
		}
		if c.releases != 1 {
			t.Errorf("Sub-future %d released %d times; want once.", i+1, c.releases)
		}
	}
}

func TestUntilNeverMatches(t *testing.T) {
	var invocations int
	next := func() future.Future[int] {
		invocations++
		return future.Func(func() int { return 0 })
	}

	u := future.UntilEquals(next, 1)

	cx := nopContext()
	for i := 0; i < 100; i++ {
		if u.Poll(cx).IsReady() {
			t.Fatal("Until completed although the target was never produced.")
		}
	}
	if invocations != 100 {
		t.Errorf("Factory was invoked %d times over 100 polls; want 100.", invocations)
	}
}

func TestUntilWakesBetweenSubFutures(t *testing.T) {
	next := func() future.Future[int] {
		return future.Func(func() int { return 0 })
	}

	u := future.UntilEquals(next, 1)

	var woken bool
	cx := future.NewContext(future.WakeFunc(func() { woken = true }))

	if u.Poll(cx).IsReady() {
		t.Fatal("Until completed although the target was never produced.")
	}
	if !woken {
		t.Error("Until went pending after a finished sub-future without waking its driver.")
	}
}

func TestUntilCleanup(t *testing.T) {
	c := &countdown{value: 0, pendings: 100}
	next := func() future.Future[int] { return c }

	u := future.UntilEquals(next, 1)

	if u.Poll(nopContext()).IsReady() {
		t.Fatal("Until completed while its sub-future was pending.")
	}

	u.Cleanup()

	if c.releases != 1 {
		t.Errorf("Sub-future released %d times; want once.", c.releases)
	}

	if !mustPanic(func() { u.Poll(nopContext()) }) {
		t.Error("Polling a cleaned-up Until did not panic.")
	}
}

func TestUntilRepollFault(t *testing.T) {
	next := func() future.Future[int] {
		return future.Func(func() int { return 1 })
	}

	u := future.UntilEquals(next, 1)

	if !u.Poll(nopContext()).IsReady() {
		t.Fatal("Until did not complete on a matching sub-future.")
	}

	if !mustPanic(func() { u.Poll(nopContext()) }) {
		t.Error("Polling a completed Until did not panic.")
	}
}
