package docker

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/pkg/stdcopy"
)

// LogEntry is one line of container output.
type LogEntry struct {
	Timestamp time.Time // zero when the line carried no timestamp
	Message   string
	Stderr    bool
}

// FetchLogs returns the last tail lines of a container's output. The
// call honors ctx; callers run it under a deadline so a hung daemon
// reports an error instead of blocking.
func (c *Client) FetchLogs(ctx context.Context, id string, tail int) ([]LogEntry, error) {
	tailStr := "all"
	if tail > 0 {
		tailStr = strconv.Itoa(tail)
	}

	reader, err := c.api.ContainerLogs(ctx, id, container.LogsOptions{
		ShowStdout: true,
		ShowStderr: true,
		Timestamps: true,
		Tail:       tailStr,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch logs for %s: %w", shortID(id), err)
	}
	defer reader.Close()

	var entries []LogEntry
	stdout := &logLineWriter{entries: &entries}
	stderr := &logLineWriter{entries: &entries, isStderr: true}

	if _, err := stdcopy.StdCopy(stdout, stderr, reader); err != nil {
		// A tty container emits a raw stream instead of multiplexed
		// frames; stdcopy rejects it. Re-read it as plain lines.
		raw, rawErr := c.rawLogs(ctx, id, tailStr)
		if rawErr != nil {
			return nil, fmt.Errorf("fetch logs for %s: %w", shortID(id), err)
		}
		return raw, nil
	}
	stdout.flush()
	stderr.flush()
	return entries, nil
}

func (c *Client) rawLogs(ctx context.Context, id, tail string) ([]LogEntry, error) {
	reader, err := c.api.ContainerLogs(ctx, id, container.LogsOptions{
		ShowStdout: true,
		ShowStderr: true,
		Timestamps: true,
		Tail:       tail,
	})
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	var entries []LogEntry
	w := &logLineWriter{entries: &entries}
	_, _ = w.Write(data)
	w.flush()
	return entries, nil
}

// logLineWriter splits a log stream into entries, one per line, in
// frame order.
type logLineWriter struct {
	entries  *[]LogEntry
	isStderr bool
	partial  []byte
}

func (w *logLineWriter) Write(p []byte) (int, error) {
	w.partial = append(w.partial, p...)
	for {
		i := bytes.IndexByte(w.partial, '\n')
		if i < 0 {
			break
		}
		w.emit(string(w.partial[:i]))
		w.partial = w.partial[i+1:]
	}
	return len(p), nil
}

func (w *logLineWriter) flush() {
	if len(w.partial) > 0 {
		w.emit(string(w.partial))
		w.partial = nil
	}
}

func (w *logLineWriter) emit(line string) {
	line = strings.TrimRight(line, "\r")
	if line == "" {
		return
	}
	ts, msg := parseLogTimestamp(line)
	*w.entries = append(*w.entries, LogEntry{Timestamp: ts, Message: msg, Stderr: w.isStderr})
}

// parseLogTimestamp strips the RFC3339 timestamp the daemon prefixes
// when timestamps are requested. Lines without one pass through whole.
func parseLogTimestamp(line string) (time.Time, string) {
	i := strings.IndexByte(line, ' ')
	if i < 20 {
		return time.Time{}, line
	}
	ts, err := time.Parse(time.RFC3339Nano, line[:i])
	if err != nil {
		return time.Time{}, line
	}
	return ts.UTC(), line[i+1:]
}
