package docker

import (
	"context"
	"fmt"
	"io"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
)

// ExecSession is one attached interactive exec with a pty. Output reads
// raw terminal bytes; Write goes to the remote stdin. The session ends
// when Output reaches EOF (or errors), never on a failed write.
type ExecSession struct {
	id     string
	output io.Reader
	input  io.Writer
	hijack types.HijackedResponse
}

// ExecID returns the exec instance id, used for resize calls.
func (s *ExecSession) ExecID() string { return s.id }

// Output is the raw pty output stream.
func (s *ExecSession) Output() io.Reader { return s.output }

// Write forwards encoded input bytes to the remote pty.
func (s *ExecSession) Write(p []byte) (int, error) {
	return s.input.Write(p)
}

// Close tears down the attached connection. The remote process may keep
// running; teardown here only stops our end of the stream.
func (s *ExecSession) Close() {
	s.hijack.Close()
}

// StartExec creates and attaches an interactive exec instance with a
// pty sized to cols x rows.
func (c *Client) StartExec(ctx context.Context, id string, cmd []string, cols, rows uint16) (*ExecSession, error) {
	size := [2]uint{uint(rows), uint(cols)}
	created, err := c.api.ContainerExecCreate(ctx, id, container.ExecOptions{
		AttachStdin:  true,
		AttachStdout: true,
		AttachStderr: true,
		Tty:          true,
		ConsoleSize:  &size,
		Env:          []string{"TERM=xterm-256color"},
		Cmd:          cmd,
	})
	if err != nil {
		return nil, fmt.Errorf("create exec in %s: %w", shortID(id), err)
	}

	hijack, err := c.api.ContainerExecAttach(ctx, created.ID, container.ExecStartOptions{
		Tty:         true,
		ConsoleSize: &size,
	})
	if err != nil {
		return nil, fmt.Errorf("attach exec in %s: %w", shortID(id), err)
	}

	return &ExecSession{
		id:     created.ID,
		output: hijack.Reader,
		input:  hijack.Conn,
		hijack: hijack,
	}, nil
}

// ResizeExec resizes the remote pty of a running exec instance.
func (c *Client) ResizeExec(ctx context.Context, execID string, cols, rows uint16) error {
	err := c.api.ContainerExecResize(ctx, execID, container.ResizeOptions{
		Height: uint(rows),
		Width:  uint(cols),
	})
	if err != nil {
		return fmt.Errorf("resize exec: %w", err)
	}
	return nil
}
