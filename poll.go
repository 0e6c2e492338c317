package future

// Poll is the outcome of polling a [Future]: either pending, or ready
// with a value.
// Exactly one of the two holds at any instant.
//
// A Poll can be created by calling one of the following functions:
//   - [Pending]: for reporting that the work has not finished yet;
//   - [Ready]: for handing over the finished value.
type Poll[T any] struct {
	value T
	ready bool
}

// Pending returns a [Poll] reporting that the work has not finished yet.
func Pending[T any]() Poll[T] {
	return Poll[T]{}
}

// Ready returns a [Poll] handing over the finished value v.
func Ready[T any](v T) Poll[T] {
	return Poll[T]{value: v, ready: true}
}

// IsReady reports whether p carries a finished value.
func (p Poll[T]) IsReady() bool {
	return p.ready
}

// Get returns the finished value and true if p is ready, or the zero
// value and false if p is pending.
func (p Poll[T]) Get() (T, bool) {
	return p.value, p.ready
}

// Value returns the finished value.
// Panics if p is pending.
func (p Poll[T]) Value() T {
	if !p.ready {
		panic("future: Value called on a pending Poll")
	}
	return p.value
}
