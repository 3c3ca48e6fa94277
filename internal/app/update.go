package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"lazydock/internal/docker"
	"lazydock/internal/exec"
	"lazydock/internal/notify"
)

// Update is the single state mutation point. Key presses become
// actions; the tick runs the periodic checks and re-arms itself.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		h := msg.Height - 7
		if h < 3 {
			h = 3
		}
		for i := range m.viewports {
			m.viewports[i].Height = h
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		if m.quitting {
			return m, tea.Quit
		}
		m.periodic(time.Time(msg))
		return m, tick()
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// A running or starting session owns the keyboard apart from the
	// detach chord.
	if m.overlay == OverlayExec && m.exec.Active() {
		if key == "ctrl+e" {
			m.exec.Close()
			m.overlay = OverlayNone
			return m, nil
		}
		m.exec.WriteInput(exec.EncodeKey(msg))
		return m, nil
	}

	if m.filtering {
		switch key {
		case "enter":
			m.filtering = false
			m.filterInput.Blur()
		case "esc":
			m.filtering = false
			m.filterInput.Blur()
			m.filterInput.SetValue("")
			m.filter = ""
			m.applyFilter()
		default:
			var cmd tea.Cmd
			m.filterInput, cmd = m.filterInput.Update(msg)
			m.filter = m.filterInput.Value()
			m.applyFilter()
			return m, cmd
		}
		return m, nil
	}

	switch m.overlay {
	case OverlayConfirm:
		switch key {
		case "y", "enter":
			m.confirmRemove()
		case "n", "esc", "q":
			m.overlay = OverlayNone
			m.confirmKind, m.confirmID, m.confirmName = "", "", ""
		}
		return m, nil

	case OverlayLogs:
		switch key {
		case "esc", "q":
			m.closeOverlay()
		case "f":
			m.logFollow = !m.logFollow
		case "j", "down":
			m.logScroll++
			m.logFollow = false
		case "k", "up":
			if m.logScroll > 0 {
				m.logScroll--
			}
			m.logFollow = false
		case "G":
			m.logFollow = true
		}
		return m, nil

	case OverlayStats:
		switch key {
		case "esc", "q":
			m.closeOverlay()
		case "j", "down":
			m.containers.Move(1)
		case "k", "up":
			m.containers.Move(-1)
		}
		return m, nil

	case OverlayDetails, OverlayExec, OverlayUsage:
		if key == "esc" || key == "q" {
			m.closeOverlay()
		}
		return m, nil

	case OverlayHelp:
		if key == "esc" || key == "q" || key == "?" {
			m.closeOverlay()
		}
		return m, nil
	}

	if a := keyToAction(key); a != nil {
		return m, m.apply(a)
	}
	return m, nil
}

// periodic runs the fixed-order background checks once per tick. Every
// drain is non-blocking, so a slow daemon can never hold up a frame.
func (m *Model) periodic(now time.Time) {
	m.drainLogs()
	m.drainStats()
	m.followTimers(now)
	m.refreshCycle(now)

	m.exec.PollStart()
	m.exec.AdvanceSpinner()
	m.exec.PollOutput()

	if m.exec.State() == exec.Running {
		cols, rows := m.execViewport()
		ctx, cancel := context.WithTimeout(context.Background(), actionTimeout)
		m.exec.ResizeIfNeeded(ctx, cols, rows)
		cancel()
	}

	m.notes.Expire(now)
}

func (m *Model) drainLogs() {
	res := m.logsC.Poll()
	if res == nil {
		return
	}
	// A result for a target the user has moved away from is dropped.
	if res.Target != m.logTarget || m.overlay != OverlayLogs {
		return
	}
	if res.Err != nil {
		m.notes.Add(notify.Error, "Log fetch failed: %v", res.Err)
		return
	}
	if len(res.Value) == 0 && len(m.logLines) == 0 {
		m.notes.Add(notify.Warning, "No logs found")
		return
	}
	m.logLines = appendLogs(m.logLines, res.Value)
}

// appendLogs merges a fetched tail into the buffer, skipping lines
// already present and evicting the oldest past the cap.
func appendLogs(buf, fetched []docker.LogEntry) []docker.LogEntry {
	if len(fetched) == 0 {
		return buf
	}
	if len(buf) > 0 {
		last := buf[len(buf)-1].Timestamp
		if !last.IsZero() {
			trimmed := fetched[:0:0]
			for _, e := range fetched {
				if e.Timestamp.After(last) {
					trimmed = append(trimmed, e)
				}
			}
			fetched = trimmed
		} else {
			// Without timestamps the tail replaces the buffer.
			buf = buf[:0]
		}
	}
	buf = append(buf, fetched...)
	if len(buf) > logBufferCap {
		buf = append(buf[:0], buf[len(buf)-logBufferCap:]...)
	}
	return buf
}

func (m *Model) drainStats() {
	res := m.statsC.Poll()
	if res == nil {
		return
	}
	if res.Target != m.statsTarget || m.overlay != OverlayStats {
		return
	}
	if res.Err != nil {
		m.notes.Add(notify.Error, "Stats fetch failed: %v", res.Err)
		return
	}
	snap := res.Value
	m.stats = &snap
}

func (m *Model) followTimers(now time.Time) {
	if m.overlay == OverlayLogs && m.logFollow && m.logTarget != "" && m.logsC.Due(now) {
		m.startLogFetch(m.logTarget)
	}

	if m.overlay == OverlayStats {
		// The stats view follows the highlighted container.
		if c, ok := m.currentContainer(); ok && c.ID != m.statsTarget && c.Running() {
			m.statsTarget = c.ID
			m.stats = nil
			m.startStatsFetch(c.ID)
		} else if m.statsTarget != "" && m.statsC.Due(now) {
			m.startStatsFetch(m.statsTarget)
		}
	}
}

func (m *Model) refreshCycle(now time.Time) {
	if res := m.refreshC.Poll(); res != nil {
		if res.Err != nil {
			m.notes.Add(notify.Error, "Refresh failed: %v", res.Err)
		} else {
			m.containers.SetItems(res.Value.containers, m.filter)
			m.images.SetItems(res.Value.images, m.filter)
			m.volumes.SetItems(res.Value.volumes, m.filter)
			m.networks.SetItems(res.Value.networks, m.filter)
		}
	}
	if m.refreshC.Due(now) {
		m.startRefresh()
	}
}

func (m *Model) startRefresh() {
	rt := m.rt
	m.refreshC.Start("all", func() (snapshot, error) {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		var snap snapshot
		var err error
		if snap.containers, err = rt.ListContainers(ctx, true); err != nil {
			return snap, err
		}
		if snap.images, err = rt.ListImages(ctx); err != nil {
			return snap, err
		}
		if snap.volumes, err = rt.ListVolumes(ctx); err != nil {
			return snap, err
		}
		snap.networks, err = rt.ListNetworks(ctx)
		return snap, err
	})
}

func (m *Model) startLogFetch(id string) {
	rt, tail := m.rt, m.cfg.LogTail
	m.logsC.Start(id, func() ([]docker.LogEntry, error) {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		return rt.FetchLogs(ctx, id, tail)
	})
}

func (m *Model) startStatsFetch(id string) {
	rt := m.rt
	m.statsC.Start(id, func() (docker.StatsSnapshot, error) {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		return rt.FetchStats(ctx, id)
	})
}
