package future

// Waker is an opaque capability letting code ask the driver to poll a
// future again.
//
// Wake must be idempotent and safe to call from any goroutine.
// Waking a future that is not yet ready is harmless; the driver polls,
// observes pending, and moves on.
type Waker interface {
	Wake()
}

// A WakeFunc is a func() that implements the [Waker] interface.
type WakeFunc func()

// Wake implements the [Waker] interface.
func (f WakeFunc) Wake() { f() }

// A Context carries the driver's current [Waker] into a Poll call.
//
// A pending future that registered a waker from an earlier Context must
// replace it with the one found here: the driver polling a future may
// differ between calls, and only the latest waker reaches the right one.
type Context struct {
	waker Waker
}

// NewContext returns a new [Context] carrying w.
func NewContext(w Waker) *Context {
	if w == nil {
		panic("future: NewContext called with nil Waker")
	}
	return &Context{waker: w}
}

// Waker returns the driver's current [Waker].
func (cx *Context) Waker() Waker {
	return cx.waker
}
