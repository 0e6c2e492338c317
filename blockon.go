package future

// BlockOn drives f to completion on the calling goroutine and returns
// its value.
//
// BlockOn is the minimal driver: one future, one goroutine, no
// multiplexing.
// Between polls it parks on a one-slot channel that the waker fills.
// It exists for tests, examples and the blocking edges of async code;
// anything bigger is an executor's job.
func BlockOn[T any](f Future[T]) T {
	wake := make(chan struct{}, 1)
	cx := NewContext(chanWaker(wake))

	for {
		if p := f.Poll(cx); p.IsReady() {
			return p.Value()
		}
		<-wake
	}
}

// chanWaker wakes by filling a one-slot channel.
// The non-blocking send makes Wake idempotent and safe from any
// goroutine; a wake that is already pending needs no second one.
type chanWaker chan struct{}

func (w chanWaker) Wake() {
	select {
	case w <- struct{}{}:
	default:
	}
}
