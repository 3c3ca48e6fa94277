// Package exec runs one interactive shell session inside a container
// and owns its full lifecycle: command selection, background start,
// output forwarding into a terminal emulator, input encoding, resize
// and teardown. At most one session exists at a time.
package exec

import (
	"context"
	"fmt"
	"io"

	"lazydock/internal/docker"
	"lazydock/internal/notify"
	"lazydock/internal/runner"
	"lazydock/internal/term"
)

// State is the lifecycle phase of the managed session.
type State int

const (
	Idle State = iota
	Starting
	Running
	Ended
	Failed
	Cancelled
)

// Attached is the live end of an interactive exec. *docker.ExecSession
// satisfies it.
type Attached interface {
	ExecID() string
	Output() io.Reader
	Write(p []byte) (int, error)
	Close()
}

// Runtime is the subset of the daemon client the manager needs.
type Runtime interface {
	Inspect(ctx context.Context, id string) (docker.ContainerDetails, error)
	StartExec(ctx context.Context, id string, cmd []string, cols, rows uint16) (Attached, error)
	ResizeExec(ctx context.Context, execID string, cols, rows uint16) error
}

// outputBuffer bounds how many unread chunks the forwarder may queue
// before it blocks waiting for the next poll.
const outputBuffer = 64

type startResult struct {
	att        Attached
	cols, rows uint16
}

type session struct {
	att        Attached
	out        chan []byte
	done       chan struct{}
	screen     *term.Screen
	cols, rows uint16
}

// Manager drives a single exec session. It is owned by the update loop
// and must only be used from one goroutine; the forwarder it spawns
// communicates exclusively through the bounded output channel.
type Manager struct {
	rt     Runtime
	notify func(notify.Level, string, ...any)

	state      State
	target     string
	targetName string
	errText    string
	spinner    int

	start *runner.Handle[startResult]
	sess  *session
}

// NewManager wires the runtime and the notification sink. notifyFn is
// called for session lifecycle events and rejected start attempts.
func NewManager(rt Runtime, notifyFn func(notify.Level, string, ...any)) *Manager {
	return &Manager{rt: rt, notify: notifyFn}
}

// State returns the current lifecycle phase.
func (m *Manager) State() State { return m.state }

// Target returns the container id the session belongs to, or "".
func (m *Manager) Target() string { return m.target }

// Active reports whether a session is starting or running, meaning
// keyboard focus belongs to the exec view.
func (m *Manager) Active() bool {
	return m.state == Starting || m.state == Running
}

// RequestStart begins a session against containerID, sized cols x rows.
// Requesting the active session's own container closes it instead; a
// different container is rejected with a warning while one is active.
func (m *Manager) RequestStart(ctx context.Context, containerID, name string, cols, rows uint16) {
	if m.Active() {
		if containerID == m.target {
			m.Close()
			return
		}
		m.notify(notify.Warning, "Exec already active for %s", m.targetName)
		return
	}
	if m.start != nil {
		// A cancelled start is still being reaped.
		m.notify(notify.Warning, "Previous exec still shutting down")
		return
	}

	// A finished session still on screen gives way to the new one.
	m.reset()

	m.state = Starting
	m.target = containerID
	m.targetName = name
	m.spinner = 0

	rt := m.rt
	m.start = runner.Submit(func() (startResult, error) {
		details, err := rt.Inspect(ctx, containerID)
		if err != nil {
			return startResult{}, err
		}
		if !details.Running {
			return startResult{}, fmt.Errorf("container %s is not running", name)
		}
		cmd := SelectCommand(details.Entrypoint, details.Cmd)
		att, err := rt.StartExec(ctx, containerID, cmd, cols, rows)
		if err != nil {
			return startResult{}, err
		}
		return startResult{att: att, cols: cols, rows: rows}, nil
	})
}

// PollStart reaps a finished start attempt without blocking. On success
// the session is promoted to Running and the output forwarder starts.
func (m *Manager) PollStart() {
	if m.start == nil {
		return
	}
	res := m.start.Poll()
	if res == nil {
		return
	}
	m.start = nil

	if m.state == Cancelled {
		// The user detached before the attach finished.
		if res.Err == nil && res.Value.att != nil {
			res.Value.att.Close()
		}
		m.reset()
		return
	}
	if res.Err != nil {
		m.state = Failed
		m.errText = res.Err.Error()
		m.notify(notify.Error, "Exec failed: %v", res.Err)
		return
	}

	s := &session{
		att:    res.Value.att,
		out:    make(chan []byte, outputBuffer),
		done:   make(chan struct{}),
		screen: term.NewScreen(int(res.Value.cols), int(res.Value.rows)),
		cols:   res.Value.cols,
		rows:   res.Value.rows,
	}
	go forward(s.att.Output(), s.out, s.done)
	m.sess = s
	m.state = Running
	m.notify(notify.Info, "Exec started in %s", m.targetName)
}

// forward reads pty output and queues it for the update loop. Closing
// the output channel is the end-of-session sentinel; done releases the
// forwarder when the manager tears the session down first.
func forward(r io.Reader, out chan<- []byte, done <-chan struct{}) {
	buf := make([]byte, 4096)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			select {
			case out <- chunk:
			case <-done:
				return
			}
		}
		if err != nil {
			close(out)
			return
		}
	}
}

// PollOutput drains all queued output into the emulator without
// blocking. A closed channel moves the session to Ended; the screen
// stays up so the final output remains readable.
func (m *Manager) PollOutput() {
	if m.sess == nil || m.sess.out == nil {
		return
	}
	for {
		select {
		case chunk, ok := <-m.sess.out:
			if !ok {
				m.sess.out = nil
				m.sess.att.Close()
				m.state = Ended
				m.notify(notify.Info, "Exec ended")
				return
			}
			m.sess.screen.Process(chunk)
		default:
			return
		}
	}
}

// WriteInput forwards already-encoded key bytes to the remote pty.
// A failed write is reported but never ends the session; only output
// EOF does that.
func (m *Manager) WriteInput(p []byte) {
	if m.state != Running || len(p) == 0 {
		return
	}
	if _, err := m.sess.att.Write(p); err != nil {
		m.notify(notify.Error, "Exec write failed: %v", err)
	}
}

// ResizeIfNeeded reconciles the remote pty and local emulator with the
// current viewport. Matching sizes cost nothing; it is safe to call
// every tick.
func (m *Manager) ResizeIfNeeded(ctx context.Context, cols, rows uint16) {
	if m.state != Running || m.sess == nil {
		return
	}
	if cols == m.sess.cols && rows == m.sess.rows {
		return
	}
	if cols == 0 || rows == 0 {
		return
	}
	m.sess.cols, m.sess.rows = cols, rows
	m.sess.screen.Resize(int(cols), int(rows))
	// Remote resize is best effort; a stale remote size only degrades
	// rendering, so a failure stays silent and is not retried.
	_ = m.rt.ResizeExec(ctx, m.sess.att.ExecID(), cols, rows)
}

// Close ends whatever phase the session is in. A starting session is
// cancelled and reaped by the next PollStart; a running one is torn
// down immediately.
func (m *Manager) Close() {
	switch m.state {
	case Starting:
		m.state = Cancelled
		m.notify(notify.Info, "Exec cancelled")
	case Running:
		close(m.sess.done)
		m.sess.att.Close()
		m.notify(notify.Info, "Exec ended")
		m.reset()
	case Ended, Failed, Cancelled:
		m.reset()
	}
}

func (m *Manager) reset() {
	if m.sess != nil {
		if m.sess.screen != nil {
			m.sess.screen.Close()
		}
		m.sess = nil
	}
	m.state = Idle
	m.target = ""
	m.targetName = ""
	m.errText = ""
}

// AdvanceSpinner moves the startup spinner one frame. Only meaningful
// while Starting.
func (m *Manager) AdvanceSpinner() {
	if m.state == Starting {
		m.spinner = NextSpinnerIndex(m.spinner)
	}
}

// StatusLine is the one-line summary shown above the exec view.
func (m *Manager) StatusLine() string {
	switch m.state {
	case Starting:
		return fmt.Sprintf("%s starting shell in %s", SpinnerFrame(m.spinner), m.targetName)
	case Running:
		return fmt.Sprintf("shell: %s  (ctrl+e to detach)", m.targetName)
	case Ended:
		return "session ended (esc to close)"
	case Failed:
		return "exec failed: " + m.errText
	case Cancelled:
		return "session cancelled"
	}
	return ""
}

// ScreenLines returns the emulated terminal contents, one string per
// row, or nil when no session has produced a screen yet.
func (m *Manager) ScreenLines() []string {
	if m.sess == nil {
		return nil
	}
	return m.sess.screen.Lines()
}

// Cursor returns the emulator cursor position. ok is false unless the
// session is running, when the cursor should actually be drawn.
func (m *Manager) Cursor() (x, y int, ok bool) {
	if m.state != Running || m.sess == nil {
		return 0, 0, false
	}
	x, y = m.sess.screen.Cursor()
	return x, y, true
}
