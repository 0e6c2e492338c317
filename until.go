package future

// An Until is a [Future] that repeatedly runs fresh futures produced by
// a factory until one of them completes with a target value.
// It holds at most one sub-future at a time; a finished sub-future is
// released before the next one is created.
//
// To create an Until, use [UntilEquals].
type Until[T comparable] struct {
	target T
	next   func() Future[T]
	cur    Future[T]
	spent  bool
}

// UntilEquals returns a new [Until] over next and target.
//
// The factory next must return a fresh future on every call and may be
// called an unbounded number of times.
// If no produced value ever equals target, the Until stays pending
// forever; there is no exhaustion signal.
func UntilEquals[T comparable](next func() Future[T], target T) *Until[T] {
	if next == nil {
		panic("future: UntilEquals called with nil factory")
	}
	return &Until[T]{target: target, next: next}
}

// Poll implements the [Future] interface.
//
// Each call drives at most one sub-future.
// A sub-future that completes without matching is released, and the
// waker is invoked before Poll returns pending, so the driver comes
// back for the next one without the sub-future having to arrange a wake
// of its own.
func (u *Until[T]) Poll(cx *Context) Poll[struct{}] {
	if u.spent {
		panic("future: future polled after completion")
	}

	cur := u.cur
	if cur == nil {
		cur = u.next()
		if cur == nil {
			panic("future: factory returned nil Future")
		}
		u.cur = cur
	}

	p := cur.Poll(cx)
	if !p.IsReady() {
		return Pending[struct{}]()
	}

	// The finished sub-future must never be polled again.
	discard(cur)
	u.cur = nil

	if p.Value() == u.target {
		u.spent = true
		return Ready(struct{}{})
	}

	cx.Waker().Wake()
	return Pending[struct{}]()
}

// Cleanup implements the [Cleanup] interface.
// It releases the current sub-future, if one is held.
// A cleaned-up Until must not be polled.
func (u *Until[T]) Cleanup() {
	if cur := u.cur; cur != nil {
		discard(cur)
		u.cur = nil
	}
	u.spent = true
}
