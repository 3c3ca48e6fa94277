// Package runner executes one blocking remote call per goroutine and
// hands back a single-shot, poll-only result handle. It keeps slow or
// hung calls off the render loop: the loop polls handles with zero
// timeout once per tick and never waits.
package runner

// Result is the single outcome of a submitted job.
type Result[T any] struct {
	Value T
	Err   error
	// Canceled is set when the handle's channel closed without ever
	// delivering a result.
	Canceled bool
}

// Handle receives the one result of a job. Dropping a handle is
// advisory cancellation: the worker still runs to completion, but its
// result becomes unobservable.
type Handle[T any] struct {
	ch chan Result[T]
}

// Submit starts job on its own goroutine and returns immediately.
// Exactly one result is delivered through the handle.
func Submit[T any](job func() (T, error)) *Handle[T] {
	h := &Handle[T]{ch: make(chan Result[T], 1)}
	go func() {
		value, err := job()
		h.ch <- Result[T]{Value: value, Err: err}
		close(h.ch)
	}()
	return h
}

// Poll returns the job's result if it has finished, nil while it is
// still pending. It never blocks.
func (h *Handle[T]) Poll() *Result[T] {
	select {
	case res, ok := <-h.ch:
		if !ok {
			return &Result[T]{Canceled: true}
		}
		return &res
	default:
		return nil
	}
}
