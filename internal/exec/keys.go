package exec

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// EncodeKey maps a key event to the bytes written to the remote pty.
// It returns nil for keys that must never reach the session, most
// importantly Ctrl+E, which the UI reserves for detaching.
func EncodeKey(k tea.KeyMsg) []byte {
	if k.Type == tea.KeyRunes && !k.Alt {
		return []byte(string(k.Runes))
	}

	switch k.Type {
	case tea.KeySpace:
		return []byte(" ")
	case tea.KeyEnter:
		return []byte("\r")
	case tea.KeyBackspace:
		return []byte{0x7f}
	case tea.KeyTab:
		return []byte("\t")
	case tea.KeyEsc:
		return []byte{0x1b}
	case tea.KeyUp:
		return []byte("\x1b[A")
	case tea.KeyDown:
		return []byte("\x1b[B")
	case tea.KeyRight:
		return []byte("\x1b[C")
	case tea.KeyLeft:
		return []byte("\x1b[D")
	case tea.KeyHome:
		return []byte("\x1b[H")
	case tea.KeyEnd:
		return []byte("\x1b[F")
	case tea.KeyPgUp:
		return []byte("\x1b[5~")
	case tea.KeyPgDown:
		return []byte("\x1b[6~")
	case tea.KeyDelete:
		return []byte("\x1b[3~")
	case tea.KeyInsert:
		return []byte("\x1b[2~")
	}

	// Remaining control chords: "ctrl+a" .. "ctrl+z".
	if s := k.String(); strings.HasPrefix(s, "ctrl+") && len(s) == 6 {
		c := s[5]
		if c == 'e' {
			// Reserved detach shortcut; swallowed here so it can
			// never reach the remote session.
			return nil
		}
		if c >= 'a' && c <= 'z' {
			return []byte{c & 0x1f}
		}
	}
	return nil
}
