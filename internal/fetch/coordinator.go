// Package fetch keeps at most one background fetch in flight per
// resource kind and re-issues it on a follow cadence.
package fetch

import (
	"time"

	"lazydock/internal/runner"
)

// Result is a completed fetch tagged with the target it was started for.
type Result[T any] struct {
	Target string
	Value  T
	Err    error
}

// Coordinator owns one outstanding fetch of kind T. Starting a new
// fetch drops the previous handle, so a stale worker's result can never
// be observed.
type Coordinator[T any] struct {
	interval time.Duration
	target   string
	handle   *runner.Handle[T]
	started  time.Time
}

// New creates a coordinator with the given follow cadence.
func New[T any](interval time.Duration) *Coordinator[T] {
	return &Coordinator[T]{interval: interval}
}

// Start submits job for target, replacing any in-flight fetch.
func (c *Coordinator[T]) Start(target string, job func() (T, error)) {
	c.target = target
	c.started = time.Now()
	c.handle = runner.Submit(job)
}

// Poll returns a finished result exactly once and clears the in-flight
// marker. It returns nil while nothing is in flight or the fetch is
// still pending.
func (c *Coordinator[T]) Poll() *Result[T] {
	if c.handle == nil {
		return nil
	}
	res := c.handle.Poll()
	if res == nil {
		return nil
	}
	c.handle = nil
	if res.Canceled {
		return nil
	}
	return &Result[T]{Target: c.target, Value: res.Value, Err: res.Err}
}

// InFlight reports whether a fetch is outstanding.
func (c *Coordinator[T]) InFlight() bool {
	return c.handle != nil
}

// Target returns the id of the most recently started fetch.
func (c *Coordinator[T]) Target() string {
	return c.target
}

// Due reports whether a follow-mode re-fetch should be issued: the
// cadence has elapsed and nothing is in flight. Backlog can therefore
// never build up behind a slow daemon.
func (c *Coordinator[T]) Due(now time.Time) bool {
	if c.handle != nil {
		return false
	}
	return now.Sub(c.started) >= c.interval
}

// Reset forgets the current target and drops any in-flight handle.
func (c *Coordinator[T]) Reset() {
	c.target = ""
	c.handle = nil
	c.started = time.Time{}
}
