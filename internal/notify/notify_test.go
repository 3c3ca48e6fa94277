package notify

import (
	"testing"
	"time"
)

func TestAddAndLen(t *testing.T) {
	var q Queue
	q.Add(Info, "connected to %s", "daemon")

	if q.Len() != 1 {
		t.Fatalf("Expected 1 notification, got %d", q.Len())
	}
	if q.Items()[0].Message != "connected to daemon" {
		t.Errorf("Unexpected message: %s", q.Items()[0].Message)
	}
}

func TestCapEvictsOldest(t *testing.T) {
	var q Queue
	for i := 0; i < MaxQueued+5; i++ {
		q.Add(Info, "message %d", i)
	}

	if q.Len() != MaxQueued {
		t.Fatalf("Expected %d notifications, got %d", MaxQueued, q.Len())
	}
	if q.Items()[0].Message != "message 5" {
		t.Errorf("Expected oldest kept to be 'message 5', got '%s'", q.Items()[0].Message)
	}
}

func TestExpire(t *testing.T) {
	var q Queue
	q.Add(Warning, "old")
	q.items[0].Time = time.Now().Add(-MaxAge - time.Second)
	q.Add(Error, "fresh")

	q.Expire(time.Now())

	if q.Len() != 1 {
		t.Fatalf("Expected 1 notification after expiry, got %d", q.Len())
	}
	if q.Items()[0].Message != "fresh" {
		t.Errorf("Expected 'fresh' to survive, got '%s'", q.Items()[0].Message)
	}
}

func TestLevelString(t *testing.T) {
	cases := map[Level]string{Info: "INFO", Success: "OK", Warning: "WARN", Error: "ERROR"}
	for level, want := range cases {
		if got := level.String(); got != want {
			t.Errorf("Level %d: expected '%s', got '%s'", level, want, got)
		}
	}
}
