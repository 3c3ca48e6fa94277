package runner

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitFor[T any](t *testing.T, h *Handle[T]) *Result[T] {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if res := h.Poll(); res != nil {
			return res
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("job did not finish in time")
	return nil
}

func TestSubmitDeliversValue(t *testing.T) {
	h := Submit(func() (int, error) { return 42, nil })

	res := waitFor(t, h)
	require.NoError(t, res.Err)
	assert.Equal(t, 42, res.Value)
	assert.False(t, res.Canceled)
}

func TestSubmitDeliversError(t *testing.T) {
	boom := errors.New("boom")
	h := Submit(func() (string, error) { return "", boom })

	res := waitFor(t, h)
	assert.ErrorIs(t, res.Err, boom)
}

func TestPollIsNonBlocking(t *testing.T) {
	release := make(chan struct{})
	h := Submit(func() (int, error) {
		<-release
		return 1, nil
	})

	start := time.Now()
	res := h.Poll()
	assert.Nil(t, res, "pending job must poll as nil")
	assert.Less(t, time.Since(start), 50*time.Millisecond)

	close(release)
	waitFor(t, h)
}

func TestPollAfterResultReportsCanceled(t *testing.T) {
	h := Submit(func() (int, error) { return 7, nil })

	first := waitFor(t, h)
	assert.Equal(t, 7, first.Value)

	// The single result is gone; the closed channel now reads as a
	// cancelled handle.
	second := h.Poll()
	require.NotNil(t, second)
	assert.True(t, second.Canceled)
}

func TestDiscardedHandleDoesNotBlockWorker(t *testing.T) {
	done := make(chan struct{})
	_ = Submit(func() (int, error) {
		defer close(done)
		return 9, nil
	})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker blocked after its handle was discarded")
	}
}
