// Package future implements poll-based futures, the layer a cooperative
// async runtime is built on once the syntactic sugar is peeled away.
//
// A [Future] is a value representing work in progress.
// It does nothing on its own.
// Some external driver owns it and repeatedly calls its Poll method, and
// each call either reports that the work is still pending or hands over
// the finished value, exactly once.
//
// # The Polling Contract
//
// Poll must never block.
// While a future is pending, a Poll call may register the driver's current
// [Waker] with whatever resource will eventually complete the work; when
// that resource calls Wake, the driver knows to poll again.
// The driver may change between calls, so a future that stays pending
// must keep the latest waker it was polled with, not the first.
//
// Waking when the future is not yet ready is harmless; the driver polls,
// observes pending, and the future re-registers.
// Failing to wake after becoming ready is the one fatal mistake: the
// driver parks forever.
//
// Once Poll reports ready, the future is spent.
// Polling it again is a bug in the driver, never a runtime condition, and
// every future in this package panics when it happens.
//
// # Composition Without Coroutines
//
// Languages with async/await sugar compile a sequence of awaits down to a
// state machine with one resumption entry point.
// This package writes those state machines out by hand.
// [Then] sequences two futures: an explicit two-phase machine that owns
// both operands from construction, polls only the first until it
// completes, then takes the second out of storage exactly once and polls
// only it.
// [Chain] is the n-ary form.
// [UntilEquals] repeats: it keeps at most one sub-future alive at a time,
// drawing a fresh one from a factory whenever the previous one finished
// without producing the target value.
//
// # Discarding Early
//
// There is no cancellation token.
// Cancelling a future means its owner stops polling it and discards it,
// and a combinator discarded mid-flight still owns operands that were
// never polled.
// Types that hold resources implement [Cleanup]; combinators release
// every operand they still own exactly once, whether the operand ran to
// completion, ran partway, or never ran at all.
//
// # Drivers
//
// This package deliberately stops short of an executor.
// [BlockOn] is the whole of it: drive one future on the calling
// goroutine, parking between polls until the waker fires.
// It exists so that futures can be run and tested; multiplexing many
// futures over one thread is an executor's job, not this package's.
package future
