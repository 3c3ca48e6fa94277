package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"lazydock/internal/docker"
	"lazydock/internal/notify"
	uiContainers "lazydock/internal/ui/containers"
	uiImages "lazydock/internal/ui/images"
	uiNetworks "lazydock/internal/ui/networks"
	"lazydock/internal/ui/shared"
	uiVolumes "lazydock/internal/ui/volumes"
)

var (
	appTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51"))
	hostStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	activeTabStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("51")).Padding(0, 1)
	tabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Padding(0, 1)
	helpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	filterStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	warnStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	okStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	infoStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	overlayStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1)
	confirmStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("3")).Padding(1, 2)
	stderrStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	tsStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// View renders the whole frame from current state.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderHeader() + "\n")
	b.WriteString(m.renderTabs() + "\n")

	switch m.overlay {
	case OverlayLogs:
		b.WriteString(m.renderLogs())
	case OverlayStats:
		b.WriteString(m.renderStats())
	case OverlayDetails:
		b.WriteString(m.renderDetails())
	case OverlayExec:
		b.WriteString(m.renderExec())
	case OverlayConfirm:
		b.WriteString(m.renderConfirm())
	case OverlayHelp:
		b.WriteString(m.renderHelp())
	case OverlayUsage:
		b.WriteString(m.renderUsage())
	default:
		b.WriteString(m.renderPanel())
	}

	b.WriteString("\n" + m.renderFooter())
	if notes := m.renderNotifications(); notes != "" {
		b.WriteString("\n" + notes)
	}
	return b.String()
}

func (m *Model) renderHeader() string {
	info := m.rt.ConnectionInfo()
	header := appTitleStyle.Render("lazydock")
	header += hostStyle.Render(fmt.Sprintf("  %s  engine %s (api %s)", info.Host, info.Version, info.APIVersion))
	if m.filtering {
		header += "  " + filterStyle.Render("/"+m.filterInput.View())
	} else if m.filter != "" {
		header += "  " + filterStyle.Render(fmt.Sprintf("filter: %s", m.filter))
	}
	return header
}

func (m *Model) renderTabs() string {
	var parts []string
	for i := TabContainers; i <= TabNetworks; i++ {
		label := fmt.Sprintf("%d %s", int(i)+1, i)
		if i == m.tab {
			parts = append(parts, activeTabStyle.Render(label))
		} else {
			parts = append(parts, tabStyle.Render(label))
		}
	}
	return strings.Join(parts, " ")
}

func (m *Model) renderPanel() string {
	now := time.Now()
	switch m.tab {
	case TabImages:
		return uiImages.Render(&m.images, &m.viewports[TabImages], now)
	case TabVolumes:
		return uiVolumes.Render(&m.volumes, &m.viewports[TabVolumes])
	case TabNetworks:
		return uiNetworks.Render(&m.networks, &m.viewports[TabNetworks])
	default:
		return uiContainers.Render(&m.containers, &m.viewports[TabContainers], now)
	}
}

func (m *Model) renderLogs() string {
	title := appTitleStyle.Render("Logs: " + m.logTargetName)
	if m.logFollow {
		title += okStyle.Render("  following")
	} else {
		title += hostStyle.Render("  paused (G to follow)")
	}

	height := m.height - 8
	if height < 3 {
		height = 3
	}
	start := 0
	if m.logFollow || m.logScroll > len(m.logLines)-height {
		start = len(m.logLines) - height
	} else {
		start = m.logScroll
	}
	if start < 0 {
		start = 0
	}
	end := start + height
	if end > len(m.logLines) {
		end = len(m.logLines)
	}

	var b strings.Builder
	b.WriteString(title + "\n")
	for _, e := range m.logLines[start:end] {
		line := e.Message
		if e.Stderr {
			line = stderrStyle.Render(line)
		}
		if !e.Timestamp.IsZero() {
			b.WriteString(tsStyle.Render(e.Timestamp.Format("15:04:05")) + " ")
		}
		b.WriteString(line + "\n")
	}
	if len(m.logLines) == 0 {
		b.WriteString(hostStyle.Render("waiting for logs..."))
	}
	return b.String()
}

func (m *Model) renderStats() string {
	c, _ := m.currentContainer()
	title := appTitleStyle.Render("Stats: " + c.Name)
	if m.stats == nil {
		return title + "\n\n" + hostStyle.Render("collecting...")
	}
	s := m.stats
	var b strings.Builder
	b.WriteString(title + "\n\n")
	fmt.Fprintf(&b, "  CPU      %6.2f%%\n", s.CPUPercent)
	fmt.Fprintf(&b, "  Memory   %s / %s (%.1f%%)\n",
		docker.FormatBytes(s.MemoryUsage), docker.FormatBytes(s.MemoryLimit), s.MemoryPercent)
	fmt.Fprintf(&b, "  Net I/O  rx %s  tx %s\n", docker.FormatBytes(s.NetworkRx), docker.FormatBytes(s.NetworkTx))
	fmt.Fprintf(&b, "  Block    read %s  write %s\n", docker.FormatBytes(s.BlockRead), docker.FormatBytes(s.BlockWrite))
	fmt.Fprintf(&b, "  PIDs     %d\n", s.PIDs)
	b.WriteString("\n" + hostStyle.Render(fmt.Sprintf("sampled %s", s.At.Format("15:04:05"))))
	return b.String()
}

func (m *Model) renderDetails() string {
	if m.imageDetails != nil {
		return m.renderImageDetails()
	}
	d := m.details
	if d == nil {
		return hostStyle.Render("no details loaded")
	}
	var b strings.Builder
	b.WriteString(appTitleStyle.Render("Inspect: "+d.Name) + "\n\n")
	fmt.Fprintf(&b, "  ID        %s\n", d.ShortID)
	fmt.Fprintf(&b, "  Image     %s\n", d.Image)
	fmt.Fprintf(&b, "  Status    %s", d.Status)
	if !d.Running {
		fmt.Fprintf(&b, " (exit %d)", d.ExitCode)
	}
	b.WriteString("\n")
	if d.StartedAt != "" {
		fmt.Fprintf(&b, "  Started   %s\n", d.StartedAt)
	}
	if d.RestartPolicy != "" {
		fmt.Fprintf(&b, "  Restart   %s\n", d.RestartPolicy)
	}
	if len(d.Entrypoint) > 0 {
		fmt.Fprintf(&b, "  Entry     %s\n", strings.Join(d.Entrypoint, " "))
	}
	if len(d.Cmd) > 0 {
		fmt.Fprintf(&b, "  Cmd       %s\n", strings.Join(d.Cmd, " "))
	}
	if len(d.Ports) > 0 {
		fmt.Fprintf(&b, "  Ports     %s\n", uiContainers.FormatPorts(d.Ports))
	}
	for _, mt := range d.Mounts {
		fmt.Fprintf(&b, "  Mount     %s -> %s (%s)\n", mt.Source, mt.Destination, mt.Type)
	}
	for _, n := range d.Networks {
		fmt.Fprintf(&b, "  Network   %s %s\n", n.Name, n.IPAddress)
	}
	return b.String()
}

func (m *Model) renderImageDetails() string {
	d := m.imageDetails
	name := d.ShortID
	if len(d.RepoTags) > 0 {
		name = d.RepoTags[0]
	}
	var b strings.Builder
	b.WriteString(appTitleStyle.Render("Inspect: "+name) + "\n\n")
	fmt.Fprintf(&b, "  ID        %s\n", d.ShortID)
	if len(d.RepoTags) > 1 {
		fmt.Fprintf(&b, "  Tags      %s\n", strings.Join(d.RepoTags, ", "))
	}
	fmt.Fprintf(&b, "  Size      %s\n", docker.FormatBytes(uint64(d.Size)))
	if d.Created != "" {
		fmt.Fprintf(&b, "  Created   %s\n", d.Created)
	}
	if d.Author != "" {
		fmt.Fprintf(&b, "  Author    %s\n", d.Author)
	}
	fmt.Fprintf(&b, "  Platform  %s/%s\n", d.Os, d.Architecture)
	if len(d.Entrypoint) > 0 {
		fmt.Fprintf(&b, "  Entry     %s\n", strings.Join(d.Entrypoint, " "))
	}
	if len(d.Cmd) > 0 {
		fmt.Fprintf(&b, "  Cmd       %s\n", strings.Join(d.Cmd, " "))
	}
	if len(d.ExposedPorts) > 0 {
		fmt.Fprintf(&b, "  Expose    %s\n", strings.Join(d.ExposedPorts, ", "))
	}
	if len(d.Layers) > 0 {
		b.WriteString("\n  " + hostStyle.Render("LAYERS") + "\n")
		width := m.width - 16
		if width < 20 {
			width = 20
		}
		for _, l := range d.Layers {
			fmt.Fprintf(&b, "  %9s  %s\n", docker.FormatBytes(uint64(l.Size)), shared.Truncate(l.CreatedBy, width))
		}
	}
	return b.String()
}

func (m *Model) renderHelp() string {
	rows := []struct{ key, desc string }{
		{"1-4 / tab", "switch panel"},
		{"j/k", "move cursor"},
		{"g/G", "jump to top / bottom"},
		{"/", "filter, esc clears"},
		{"ctrl+r", "refresh now"},
		{"l", "container logs (f toggles follow)"},
		{"t", "live stats"},
		{"i", "inspect"},
		{"e", "shell into container (ctrl+e detaches)"},
		{"s / x / r", "start / stop / restart"},
		{"d", "remove (with confirmation)"},
		{"y", "copy id to clipboard"},
		{"o", "open first published port"},
		{"u", "disk usage"},
		{"q", "quit"},
	}
	var b strings.Builder
	b.WriteString(appTitleStyle.Render("Keys") + "\n\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "  %-12s %s\n", r.key, r.desc)
	}
	return b.String()
}

func (m *Model) renderUsage() string {
	u := m.usage
	if u == nil {
		return hostStyle.Render("no usage loaded")
	}
	var b strings.Builder
	b.WriteString(appTitleStyle.Render("Disk usage") + "\n\n")
	fmt.Fprintf(&b, "  %-12s %5s  %10s  %12s\n", "KIND", "COUNT", "SIZE", "RECLAIMABLE")
	row := func(kind string, r docker.ResourceUsage) {
		fmt.Fprintf(&b, "  %-12s %5d  %10s  %12s\n",
			kind, r.Count, docker.FormatBytes(uint64(r.Total)), docker.FormatBytes(uint64(r.Reclaimable)))
	}
	row("Images", u.Images)
	row("Containers", u.Containers)
	row("Volumes", u.Volumes)
	row("Build cache", u.BuildCache)
	return b.String()
}

func (m *Model) renderExec() string {
	status := m.exec.StatusLine()
	lines := m.exec.ScreenLines()

	var body string
	if len(lines) == 0 {
		body = hostStyle.Render("connecting...")
	} else {
		if x, y, ok := m.exec.Cursor(); ok && y >= 0 && y < len(lines) {
			lines = append([]string(nil), lines...)
			if ansi.StringWidth(lines[y]) <= x {
				lines[y] += strings.Repeat(" ", x-ansi.StringWidth(lines[y])) + "█"
			}
		}
		body = strings.Join(lines, "\n")
	}
	return appTitleStyle.Render(status) + "\n" + overlayStyle.Render(body)
}

func (m *Model) renderConfirm() string {
	text := fmt.Sprintf("Remove %s %s?", m.confirmKind, m.confirmName)
	box := warnStyle.Render(text) + "\n\n" + helpStyle.Render("y confirm   n cancel")
	return confirmStyle.Render(box)
}

func (m *Model) renderFooter() string {
	switch m.overlay {
	case OverlayExec:
		if m.exec.Active() {
			return helpStyle.Render("ctrl+e detach")
		}
		return helpStyle.Render("esc close")
	case OverlayLogs:
		return helpStyle.Render("j/k scroll   f follow   esc close")
	case OverlayStats, OverlayDetails, OverlayHelp, OverlayUsage:
		return helpStyle.Render("esc close")
	case OverlayConfirm:
		return ""
	}
	if m.tab == TabContainers {
		return helpStyle.Render("j/k move   e shell   l logs   t stats   i inspect   s start   x stop   r restart   d remove   y copy   o open   / filter   ? help   q quit")
	}
	if m.tab == TabImages {
		return helpStyle.Render("j/k move   i inspect   d remove   y copy   / filter   tab switch   ? help   q quit")
	}
	return helpStyle.Render("j/k move   d remove   y copy   / filter   tab switch   ? help   q quit")
}

func (m *Model) renderNotifications() string {
	items := m.notes.Items()
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	for i, n := range items {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(levelStyle(n.Level).Render(fmt.Sprintf("[%s] %s", n.Level, n.Message)))
	}
	return b.String()
}

func levelStyle(l notify.Level) lipgloss.Style {
	switch l {
	case notify.Error:
		return errStyle
	case notify.Warning:
		return warnStyle
	case notify.Success:
		return okStyle
	default:
		return infoStyle
	}
}
