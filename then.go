package future

type seqState int8

const (
	seqRunningFirst seqState = iota
	seqRunningSecond
	seqDone
)

// A Seq is a [Future] that runs two futures in sequence: the second
// begins only after the first completes.
// The first operand's value is discarded; the Seq completes with the
// second's.
//
// To create a Seq, use [Then].
// To sequence more than two futures over one value type, use [Chain].
type Seq[A, B any] struct {
	state  seqState
	first  Future[A]
	second Future[B]
}

// Then returns a new [Seq] over first and second.
//
// Both operands belong to the Seq from this point on, even though only
// one runs at a time.
// An owner discarding the Seq before completion must call its Cleanup
// method; the Seq then releases whichever operands it still owns,
// exactly once each.
func Then[A, B any](first Future[A], second Future[B]) *Seq[A, B] {
	if first == nil || second == nil {
		panic("future: Then called with nil Future")
	}
	return &Seq[A, B]{first: first, second: second}
}

// Poll implements the [Future] interface.
//
// A first operand that completes synchronously is followed by polling
// the second within the same call, so no driver round trip is spent on
// the transition.
func (s *Seq[A, B]) Poll(cx *Context) Poll[B] {
	for {
		switch s.state {
		case seqRunningFirst:
			if !s.first.Poll(cx).IsReady() {
				return Pending[B]()
			}
			// The first operand is released here and the second leaves
			// its holding slot, exactly once. Neither slot is read again.
			discard(s.first)
			s.first = nil
			s.state = seqRunningSecond
		case seqRunningSecond:
			p := s.second.Poll(cx)
			if !p.IsReady() {
				return p
			}
			discard(s.second)
			s.second = nil
			s.state = seqDone
			return p
		default:
			panic("future: future polled after completion")
		}
	}
}

// Cleanup implements the [Cleanup] interface.
//
// While the first operand is still running, Cleanup releases both it and
// the never-polled second operand; afterwards only the second (the first
// was already released at the transition).
// A cleaned-up Seq must not be polled.
func (s *Seq[A, B]) Cleanup() {
	switch s.state {
	case seqRunningFirst:
		discard(s.first)
		s.first = nil
		discard(s.second)
		s.second = nil
	case seqRunningSecond:
		discard(s.second)
		s.second = nil
	}
	s.state = seqDone
}

// Chain returns a [Future] that runs each of the given futures in
// sequence, completing with the last one's value.
// When one future completes, Chain releases it and runs the next.
//
// When passed no arguments, Chain returns a [Future] that completes
// immediately with the zero value.
func Chain[T any](s ...Future[T]) Future[T] {
	for _, f := range s {
		if f == nil {
			panic("future: Chain called with nil Future")
		}
	}
	if len(s) == 1 {
		return s[0]
	}
	return &chainFuture[T]{rest: s}
}

type chainFuture[T any] struct {
	rest []Future[T]
	done bool
}

func (c *chainFuture[T]) Poll(cx *Context) Poll[T] {
	if c.done {
		panic("future: future polled after completion")
	}
	for {
		if len(c.rest) == 0 {
			c.done = true
			var zero T
			return Ready(zero)
		}
		p := c.rest[0].Poll(cx)
		if !p.IsReady() {
			return p
		}
		discard(c.rest[0])
		c.rest[0] = nil
		c.rest = c.rest[1:]
		if len(c.rest) == 0 {
			c.done = true
			return p
		}
	}
}

// Cleanup releases the running future and every future not yet started.
func (c *chainFuture[T]) Cleanup() {
	for i, f := range c.rest {
		discard(f)
		c.rest[i] = nil
	}
	c.rest = nil
	c.done = true
}
