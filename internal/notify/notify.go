// Package notify holds the bounded, expiring notification queue shown
// at the bottom of the dashboard.
package notify

import (
	"fmt"
	"time"
)

// Level is the severity of a notification.
type Level int

const (
	Info Level = iota
	Success
	Warning
	Error
)

// String returns the display label for a level.
func (l Level) String() string {
	switch l {
	case Success:
		return "OK"
	case Warning:
		return "WARN"
	case Error:
		return "ERROR"
	default:
		return "INFO"
	}
}

// Notification is one leveled, timestamped message.
type Notification struct {
	Time    time.Time
	Level   Level
	Message string
}

const (
	// MaxQueued caps the queue; the oldest entry is evicted beyond it.
	MaxQueued = 10
	// MaxAge is how long a notification stays visible.
	MaxAge = 3 * time.Second
)

// Queue is a bounded FIFO of notifications. The zero value is ready.
type Queue struct {
	items []Notification
}

// Add appends a notification, evicting the oldest past the cap.
func (q *Queue) Add(level Level, format string, args ...any) {
	q.items = append(q.items, Notification{
		Time:    time.Now(),
		Level:   level,
		Message: fmt.Sprintf(format, args...),
	})
	if len(q.items) > MaxQueued {
		q.items = q.items[len(q.items)-MaxQueued:]
	}
}

// Expire drops notifications older than MaxAge as of now.
func (q *Queue) Expire(now time.Time) {
	cutoff := now.Add(-MaxAge)
	kept := q.items[:0]
	for _, n := range q.items {
		if n.Time.After(cutoff) {
			kept = append(kept, n)
		}
	}
	q.items = kept
}

// Items returns the queued notifications, oldest first.
func (q *Queue) Items() []Notification {
	return q.items
}

// Len returns the number of queued notifications.
func (q *Queue) Len() int {
	return len(q.items)
}
