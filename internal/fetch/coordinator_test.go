package fetch

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pollUntil[T any](t *testing.T, c *Coordinator[T]) *Result[T] {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if res := c.Poll(); res != nil {
			return res
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("fetch did not complete in time")
	return nil
}

func TestStartAndPoll(t *testing.T) {
	c := New[[]string](time.Second)
	c.Start("web1", func() ([]string, error) { return []string{"line"}, nil })

	assert.True(t, c.InFlight())
	res := pollUntil(t, c)
	require.NoError(t, res.Err)
	assert.Equal(t, "web1", res.Target)
	assert.Equal(t, []string{"line"}, res.Value)
	assert.False(t, c.InFlight(), "poll must clear the in-flight marker")
}

func TestPollReportsFailureOnce(t *testing.T) {
	c := New[int](time.Second)
	boom := errors.New("daemon unreachable")
	c.Start("web1", func() (int, error) { return 0, boom })

	res := pollUntil(t, c)
	assert.ErrorIs(t, res.Err, boom)
	assert.Nil(t, c.Poll(), "a delivered result must not repeat")
}

func TestSingleInFlightAcrossRestarts(t *testing.T) {
	c := New[int](time.Second)
	var running atomic.Int32
	var peak atomic.Int32

	job := func(v int) func() (int, error) {
		return func() (int, error) {
			n := running.Add(1)
			for {
				old := peak.Load()
				if n <= old || peak.CompareAndSwap(old, n) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			running.Add(-1)
			return v, nil
		}
	}

	// Rapid restarts: each Start invalidates the previous receiver, so
	// the coordinator observes at most one outstanding fetch.
	for i := 0; i < 5; i++ {
		c.Start("a", job(i))
		assert.True(t, c.InFlight())
	}

	res := pollUntil(t, c)
	assert.Equal(t, 4, res.Value, "only the newest fetch is observable")
	assert.Nil(t, c.Poll())
}

func TestSupersededResultUnobservable(t *testing.T) {
	c := New[string](time.Second)
	slowDone := make(chan struct{})
	c.Start("old", func() (string, error) {
		<-slowDone
		return "old-result", nil
	})
	c.Start("new", func() (string, error) { return "new-result", nil })
	close(slowDone)

	res := pollUntil(t, c)
	assert.Equal(t, "new", res.Target)
	assert.Equal(t, "new-result", res.Value)

	// The superseded worker finished, but its handle is gone.
	time.Sleep(20 * time.Millisecond)
	assert.Nil(t, c.Poll())
}

func TestDueHonorsCadenceAndInFlight(t *testing.T) {
	c := New[int](50 * time.Millisecond)
	now := time.Now()

	assert.True(t, c.Due(now), "fresh coordinator is immediately due")

	release := make(chan struct{})
	c.Start("a", func() (int, error) {
		<-release
		return 1, nil
	})
	assert.False(t, c.Due(now.Add(time.Minute)), "never due while in flight")

	close(release)
	pollUntil(t, c)
	assert.False(t, c.Due(c.started.Add(10*time.Millisecond)))
	assert.True(t, c.Due(c.started.Add(60*time.Millisecond)))
}

func TestReset(t *testing.T) {
	c := New[int](time.Second)
	c.Start("a", func() (int, error) { return 1, nil })
	c.Reset()

	assert.False(t, c.InFlight())
	assert.Equal(t, "", c.Target())
	assert.Nil(t, c.Poll())
}
