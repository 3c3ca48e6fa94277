// Package term adapts a terminal-emulation state machine to the exec
// overlay: raw pty bytes in, renderable display lines out.
package term

import (
	"strings"

	"github.com/charmbracelet/x/vt"
)

// Screen is an in-memory terminal fed by one exec session. It is
// created fresh per session and never persists.
type Screen struct {
	emu   *vt.Emulator
	cols  int
	rows  int
	lines []string
	dirty bool
}

// NewScreen creates a cols x rows screen.
func NewScreen(cols, rows int) *Screen {
	if cols <= 0 {
		cols = 80
	}
	if rows <= 0 {
		rows = 24
	}
	return &Screen{
		emu:   vt.NewEmulator(cols, rows),
		cols:  cols,
		rows:  rows,
		dirty: true,
	}
}

// Process feeds raw output bytes through the emulator. Lines are not
// recomputed here; callers process a whole batch and then read Lines
// once.
func (s *Screen) Process(p []byte) {
	if len(p) == 0 {
		return
	}
	_, _ = s.emu.Write(p)
	s.dirty = true
}

// Lines returns the rendered display lines, recomputing them lazily
// after the last batch of writes.
func (s *Screen) Lines() []string {
	if s.dirty {
		s.lines = strings.Split(s.emu.Render(), "\r\n")
		s.dirty = false
	}
	return s.lines
}

// Cursor returns the current cursor column and row.
func (s *Screen) Cursor() (x, y int) {
	pos := s.emu.CursorPosition()
	x, y = pos.X, pos.Y
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return x, y
}

// Resize reflows the emulator grid to cols x rows.
func (s *Screen) Resize(cols, rows int) {
	if cols <= 0 || rows <= 0 || (cols == s.cols && rows == s.rows) {
		return
	}
	s.emu.Resize(cols, rows)
	s.cols, s.rows = cols, rows
	s.dirty = true
}

// Size returns the current emulator dimensions.
func (s *Screen) Size() (cols, rows int) {
	return s.cols, s.rows
}

// Close releases the emulator.
func (s *Screen) Close() {
	_ = s.emu.Close()
}
