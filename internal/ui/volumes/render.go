package volumes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"lazydock/internal/ui/shared"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).Underline(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Render draws the volume table for the current viewport.
func Render(st *State, vp *shared.Viewport) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Volumes[%d]", len(st.Filtered))) + "\n")

	if len(st.Filtered) == 0 {
		b.WriteString("\n" + dimStyle.Render("No volumes found"))
		return b.String()
	}

	vp.EnsureVisible(st.Selected, len(st.Filtered))
	start, end := vp.Range(len(st.Filtered))

	header := fmt.Sprintf("%s %s %s",
		shared.Cell("NAME", 40),
		shared.Cell("DRIVER", 10),
		shared.Cell("MOUNTPOINT", 48),
	)
	b.WriteString(headerStyle.Render(header) + "\n")

	for i := start; i < end; i++ {
		v := st.Filtered[i]
		row := fmt.Sprintf("%s %s %s",
			shared.Cell(v.Name, 40),
			shared.Cell(v.Driver, 10),
			shared.Cell(v.Mountpoint, 48),
		)
		if i == st.Selected {
			row = "\x1b[48;5;51m\x1b[38;5;0m\x1b[1m" + row + "\x1b[0m"
		}
		b.WriteString(row + "\n")
	}

	b.WriteString(dimStyle.Render(fmt.Sprintf("Showing %d-%d of %d", start+1, end, len(st.Filtered))))
	return b.String()
}
