package docker

import (
	"testing"
	"time"
)

func TestParseLogTimestamp(t *testing.T) {
	ts, msg := parseLogTimestamp("2024-01-28T10:30:00.123456789Z server started")
	if msg != "server started" {
		t.Errorf("Expected message 'server started', got '%s'", msg)
	}
	want := time.Date(2024, 1, 28, 10, 30, 0, 123456789, time.UTC)
	if !ts.Equal(want) {
		t.Errorf("Expected timestamp %v, got %v", want, ts)
	}
}

func TestParseLogTimestampMissing(t *testing.T) {
	ts, msg := parseLogTimestamp("plain line without timestamp")
	if !ts.IsZero() {
		t.Errorf("Expected zero timestamp, got %v", ts)
	}
	if msg != "plain line without timestamp" {
		t.Errorf("Message should pass through, got '%s'", msg)
	}
}

func TestParseLogTimestampShortLine(t *testing.T) {
	ts, msg := parseLogTimestamp("a b")
	if !ts.IsZero() || msg != "a b" {
		t.Errorf("Short line should pass through, got ts=%v msg='%s'", ts, msg)
	}
}

func TestLogLineWriterSplitsLines(t *testing.T) {
	var entries []LogEntry
	w := &logLineWriter{entries: &entries}

	_, _ = w.Write([]byte("first li"))
	_, _ = w.Write([]byte("ne\nsecond line\npart"))
	w.flush()

	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}
	if entries[0].Message != "first line" {
		t.Errorf("Expected 'first line', got '%s'", entries[0].Message)
	}
	if entries[2].Message != "part" {
		t.Errorf("Expected trailing partial 'part', got '%s'", entries[2].Message)
	}
}

func TestLogLineWriterSkipsEmptyLines(t *testing.T) {
	var entries []LogEntry
	w := &logLineWriter{entries: &entries, isStderr: true}

	_, _ = w.Write([]byte("\n\r\nerror line\n"))
	w.flush()

	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	if !entries[0].Stderr {
		t.Error("Expected entry to be marked stderr")
	}
}
