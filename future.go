package future

// A Future is a value representing work in progress, queried by polling.
//
// Poll must never block.
// While the work is unfinished, Poll returns a pending [Poll]; the call
// may register or refresh the waker found in cx with whatever resource
// will eventually signal readiness.
// When the work finishes, Poll returns a ready [Poll] carrying the value,
// exactly once.
// Polling a future again after it reported ready is a usage fault and
// panics.
type Future[T any] interface {
	Poll(cx *Context) Poll[T]
}

// Cleanup represents any type that carries a Cleanup method.
// A [Future] that owns resources implements Cleanup so that an owner
// discarding it before completion can release them.
// Cleanup must be idempotent; a discarded future must not be polled.
type Cleanup interface {
	Cleanup()
}

// A CleanupFunc is a func() that implements the [Cleanup] interface.
type CleanupFunc func()

// Cleanup implements the [Cleanup] interface.
func (f CleanupFunc) Cleanup() { f() }

// discard releases whatever v owns, if anything.
// Combinators call it exactly once per operand they stop owning, whether
// the operand completed or never ran.
func discard(v any) {
	if c, ok := v.(Cleanup); ok {
		c.Cleanup()
	}
}

// Func returns a [Future] that calls f, and then completes with its
// return value.
func Func[T any](f func() T) Future[T] {
	return &funcFuture[T]{f: f}
}

// Do returns a [Future] that calls f, and then completes with no value.
func Do(f func()) Future[struct{}] {
	return Func(func() struct{} {
		f()
		return struct{}{}
	})
}

type funcFuture[T any] struct {
	f func() T
}

func (d *funcFuture[T]) Poll(cx *Context) Poll[T] {
	f := d.f
	if f == nil {
		panic("future: future polled after completion")
	}
	d.f = nil
	return Ready(f())
}

// Never returns a [Future] that never completes and never wakes anyone.
func Never[T any]() Future[T] {
	return neverFuture[T]{}
}

type neverFuture[T any] struct{}

func (neverFuture[T]) Poll(cx *Context) Poll[T] {
	return Pending[T]()
}
