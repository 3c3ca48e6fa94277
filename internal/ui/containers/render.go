package containers

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"lazydock/internal/docker"
	"lazydock/internal/ui/shared"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).Underline(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Render draws the container table for the current viewport.
func Render(st *State, vp *shared.Viewport, now time.Time) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Containers[%d]", len(st.Filtered))) + "\n")

	if len(st.Filtered) == 0 {
		b.WriteString("\n" + dimStyle.Render("No containers found"))
		return b.String()
	}

	vp.EnsureVisible(st.Selected, len(st.Filtered))
	start, end := vp.Range(len(st.Filtered))

	header := fmt.Sprintf("%s %s %s %s %s %s",
		shared.Cell("NAME", 24),
		shared.Cell("IMAGE", 28),
		shared.Cell("STATE", 10),
		shared.Cell("STATUS", 22),
		shared.Cell("AGE", 5),
		shared.Cell("PORTS", 24),
	)
	b.WriteString(headerStyle.Render(header) + "\n")

	for i := start; i < end; i++ {
		c := st.Filtered[i]
		// Plain strings inside the row; ANSI codes would break the
		// fixed-width alignment.
		row := fmt.Sprintf("%s %s %s %s %s %s",
			shared.Cell(c.Name, 24),
			shared.Cell(c.Image, 28),
			shared.Cell(c.State, 10),
			shared.Cell(c.Status, 22),
			shared.Cell(shared.FormatAge(c.Created, now), 5),
			shared.Cell(FormatPorts(c.Ports), 24),
		)
		if i == st.Selected {
			row = "\x1b[48;5;51m\x1b[38;5;0m\x1b[1m" + row + "\x1b[0m"
		}
		b.WriteString(row + "\n")
	}

	b.WriteString(dimStyle.Render(fmt.Sprintf("Showing %d-%d of %d", start+1, end, len(st.Filtered))))
	return b.String()
}

// FormatPorts renders port mappings the way docker ps does, published
// ports first.
func FormatPorts(ports []docker.PortMapping) string {
	if len(ports) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(ports))
	for _, p := range ports {
		if p.HostPort != 0 {
			parts = append(parts, fmt.Sprintf("%d->%d/%s", p.HostPort, p.Port, p.Protocol))
		} else {
			parts = append(parts, fmt.Sprintf("%d/%s", p.Port, p.Protocol))
		}
	}
	return strings.Join(parts, ", ")
}
