package images

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

// Render draws the image table for the current viewport.
func Render(st *State, vp *shared.Viewport, now time.Time) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Images[%d]", len(st.Filtered))) + "\n")

	if len(st.Filtered) == 0 {
		b.WriteString("\n" + dimStyle.Render("No images found"))
		return b.String()
	}

	vp.EnsureVisible(st.Selected, len(st.Filtered))
	start, end := vp.Range(len(st.Filtered))

	header := fmt.Sprintf("%s %s %s %s",
		shared.Cell("REPOSITORY:TAG", 48),
		shared.Cell("IMAGE ID", 14),
		shared.Cell("SIZE", 10),
		shared.Cell("AGE", 5),
	)
	b.WriteString(headerStyle.Render(header) + "\n")

	for i := start; i < end; i++ {
		img := st.Filtered[i]
		tag := img.RepoTag
		if tag == "" {
			tag = "<none>"
		}
		row := fmt.Sprintf("%s %s %s %s",
			shared.Cell(tag, 48),
			shared.Cell(img.ShortID, 14),
			shared.Cell(docker.FormatBytes(uint64(img.Size)), 10),
			shared.Cell(shared.FormatAge(img.Created, now), 5),
		)
		if i == st.Selected {
			row = "\x1b[48;5;51m\x1b[38;5;0m\x1b[1m" + row + "\x1b[0m"
		}
		b.WriteString(row + "\n")
	}

	b.WriteString(dimStyle.Render(fmt.Sprintf("Showing %d-%d of %d", start+1, end, len(st.Filtered))))
	return b.String()
}
