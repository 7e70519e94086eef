package forkpool

import (
	"fmt"
	"runtime/debug"
	"sync/atomic"
)

// task is a type-erased, run-exactly-once unit of work. A closure already
// bound to its arguments and a result sink gives us the type erasure a
// language without generics-over-interfaces would need a vtable for; the
// single-run discipline is kept by convention (a *task is only ever held by
// one queue/stack slot, never copied) rather than by the language, mirroring
// mt/thread_pool/task.h's non-copyable, move-only wrapper.
//
// consumed guards that discipline: running (or aborting) an already-consumed
// task is a contract violation, so it asserts rather than silently
// re-delivering to the handle a second time.
type task struct {
	run func()
	// abort resolves the task's handle with ErrPoolShutdown instead of
	// running the underlying callable. Used to drain queued-but-never-run
	// tasks when a Pool is closed.
	abort func()

	consumed atomic.Bool
}

// markConsumed asserts that this is the task's first and only run/abort,
// panicking if it is not — the debug-build assertion spec.md's contract
// violations section calls for.
func (t *task) markConsumed() {
	if !t.consumed.CompareAndSwap(false, true) {
		panic(fmt.Sprintf("forkpool: task %p run or aborted more than once", t))
	}
}

// runCapturingPanic executes the task, converting any panic into a
// TaskPanicError rather than letting it unwind the worker's goroutine stack.
// Errors returned by the underlying callable are never altered; only panics
// are intercepted here.
func runCapturingPanic(fn func()) (panicErr error) {
	defer func() {
		if r := recover(); r != nil {
			panicErr = &TaskPanicError{Value: r, Stack: debug.Stack()}
		}
	}()
	fn()
	return nil
}

// bindTask builds a *task that invokes fn and delivers its result (or a
// captured panic) to h. It is the single place that couples a user callable
// to a Handle; Submit calls it, so every forked call (the merge-sort demo's
// included, which go through Submit) passes through it.
func bindTask[T any](fn func() (T, error), h *Handle[T]) *task {
	t := &task{}
	t.run = func() {
		t.markConsumed()
		var value T
		var err error
		panicErr := runCapturingPanic(func() {
			value, err = fn()
		})
		if panicErr != nil {
			h.set(value, panicErr)
			return
		}
		h.set(value, err)
	}
	t.abort = func() {
		t.markConsumed()
		var zero T
		h.set(zero, ErrPoolShutdown)
	}
	return t
}

