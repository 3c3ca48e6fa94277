// Package shared holds the small view helpers every resource panel
// uses: viewport scrolling math and width-aware cell formatting.
package shared

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
)

// Viewport holds scrolling state for list-like views.
type Viewport struct {
	Offset int
	Height int
}

// EnsureVisible adjusts the offset so the selected row stays on screen.
func (vp *Viewport) EnsureVisible(selected, listLen int) {
	if listLen == 0 || vp.Height <= 0 {
		return
	}
	if selected < vp.Offset {
		vp.Offset = selected
	} else if selected >= vp.Offset+vp.Height {
		vp.Offset = selected - vp.Height + 1
	}
	maxOffset := listLen - vp.Height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if vp.Offset > maxOffset {
		vp.Offset = maxOffset
	}
	if vp.Offset < 0 {
		vp.Offset = 0
	}
}

// Range returns the half-open [start, end) slice of rows to draw.
func (vp Viewport) Range(listLen int) (int, int) {
	if listLen == 0 || vp.Height <= 0 {
		return 0, 0
	}
	start := vp.Offset
	end := vp.Offset + vp.Height
	if end > listLen {
		end = listLen
	}
	if start > listLen {
		start = listLen
	}
	return start, end
}

// Truncate shortens s to at most max display cells, appending an
// ellipsis when something was cut. Wide runes count as two cells.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= max {
		return s
	}
	if max <= 3 {
		return runewidth.Truncate(s, max, "")
	}
	return runewidth.Truncate(s, max, "...")
}

// Cell truncates and right-pads s to exactly width display cells, so
// rows built from plain strings keep their column alignment.
func Cell(s string, width int) string {
	return runewidth.FillRight(Truncate(s, width), width)
}

// FormatAge renders how long ago t was as a compact single unit.
func FormatAge(t, now time.Time) string {
	if t.IsZero() {
		return "-"
	}
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	}
}

// MatchesFilter reports whether any of the fields contains the filter,
// case-insensitively. An empty filter matches everything.
func MatchesFilter(filter string, fields ...string) bool {
	if filter == "" {
		return true
	}
	filter = strings.ToLower(filter)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), filter) {
			return true
		}
	}
	return false
}
