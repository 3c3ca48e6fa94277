package app

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/skratchdot/open-golang/open"

	"lazydock/internal/notify"
)

// action is the closed set of operations the UI can request. The
// dispatcher switches exhaustively over these types so a new action is
// a compile-time change, not a runtime lookup.
type action interface{ isAction() }

type (
	quitAction         struct{}
	switchTabAction    struct{ tab Tab }
	nextTabAction      struct{}
	moveAction         struct{ delta int }
	topAction          struct{}
	bottomAction       struct{}
	refreshAction      struct{}
	openLogsAction     struct{}
	openStatsAction    struct{}
	openDetailsAction  struct{}
	toggleExecAction   struct{}
	closeOverlayAction struct{}
	startAction        struct{}
	stopAction         struct{}
	restartAction      struct{}
	removeAction       struct{}
	copyIDAction       struct{}
	openPortAction     struct{}
	beginFilterAction  struct{}
	clearFilterAction  struct{}
	openHelpAction     struct{}
	openUsageAction    struct{}
)

func (quitAction) isAction()         {}
func (switchTabAction) isAction()    {}
func (nextTabAction) isAction()      {}
func (moveAction) isAction()         {}
func (topAction) isAction()          {}
func (bottomAction) isAction()       {}
func (refreshAction) isAction()      {}
func (openLogsAction) isAction()     {}
func (openStatsAction) isAction()    {}
func (openDetailsAction) isAction()  {}
func (toggleExecAction) isAction()   {}
func (closeOverlayAction) isAction() {}
func (startAction) isAction()        {}
func (stopAction) isAction()         {}
func (restartAction) isAction()      {}
func (removeAction) isAction()       {}
func (copyIDAction) isAction()       {}
func (openPortAction) isAction()     {}
func (beginFilterAction) isAction()  {}
func (clearFilterAction) isAction()  {}
func (openHelpAction) isAction()     {}
func (openUsageAction) isAction()    {}

// keyToAction maps a list-view key press to an action, nil if unmapped.
func keyToAction(key string) action {
	switch key {
	case "q", "ctrl+c":
		return quitAction{}
	case "tab":
		return nextTabAction{}
	case "1":
		return switchTabAction{TabContainers}
	case "2":
		return switchTabAction{TabImages}
	case "3":
		return switchTabAction{TabVolumes}
	case "4":
		return switchTabAction{TabNetworks}
	case "j", "down":
		return moveAction{1}
	case "k", "up":
		return moveAction{-1}
	case "g", "home":
		return topAction{}
	case "G", "end":
		return bottomAction{}
	case "ctrl+r":
		return refreshAction{}
	case "l":
		return openLogsAction{}
	case "t":
		return openStatsAction{}
	case "i":
		return openDetailsAction{}
	case "e":
		return toggleExecAction{}
	case "s":
		return startAction{}
	case "x":
		return stopAction{}
	case "r":
		return restartAction{}
	case "d":
		return removeAction{}
	case "y":
		return copyIDAction{}
	case "o":
		return openPortAction{}
	case "/":
		return beginFilterAction{}
	case "esc":
		return clearFilterAction{}
	case "?":
		return openHelpAction{}
	case "u":
		return openUsageAction{}
	}
	return nil
}

// apply executes one action against the model. Cheap daemon calls run
// synchronously under actionTimeout; everything long-running is handed
// to a coordinator or the exec manager.
func (m *Model) apply(a action) tea.Cmd {
	switch a := a.(type) {
	case quitAction:
		m.quitting = true
		return tea.Quit

	case switchTabAction:
		m.tab = a.tab

	case nextTabAction:
		m.tab = (m.tab + 1) % 4

	case moveAction:
		m.moveCursor(a.delta)

	case topAction:
		m.cursorTop()

	case bottomAction:
		m.cursorBottom()

	case refreshAction:
		m.startRefresh()

	case openLogsAction:
		c, ok := m.currentContainer()
		if !ok {
			return nil
		}
		m.overlay = OverlayLogs
		m.logTarget = c.ID
		m.logTargetName = c.Name
		m.logLines = m.logLines[:0]
		m.logScroll = 0
		m.logFollow = true
		m.notes.Add(notify.Info, "Fetching logs for %s", c.Name)
		m.startLogFetch(c.ID)

	case openStatsAction:
		c, ok := m.currentContainer()
		if !ok {
			return nil
		}
		if !c.Running() {
			m.notes.Add(notify.Warning, "%s is not running", c.Name)
			return nil
		}
		m.overlay = OverlayStats
		m.statsTarget = c.ID
		m.stats = nil
		m.startStatsFetch(c.ID)

	case openDetailsAction:
		switch m.tab {
		case TabContainers:
			c, ok := m.currentContainer()
			if !ok {
				return nil
			}
			ctx, cancel := context.WithTimeout(context.Background(), actionTimeout)
			defer cancel()
			details, err := m.rt.Inspect(ctx, c.ID)
			if err != nil {
				m.notes.Add(notify.Error, "Inspect failed: %v", err)
				return nil
			}
			m.details = &details
			m.overlay = OverlayDetails
		case TabImages:
			img, ok := m.images.Current()
			if !ok {
				return nil
			}
			ctx, cancel := context.WithTimeout(context.Background(), actionTimeout)
			defer cancel()
			details, err := m.rt.InspectImage(ctx, img.ID)
			if err != nil {
				m.notes.Add(notify.Error, "Inspect failed: %v", err)
				return nil
			}
			m.imageDetails = &details
			m.overlay = OverlayDetails
		}

	case toggleExecAction:
		c, ok := m.currentContainer()
		if !ok {
			return nil
		}
		cols, rows := m.execViewport()
		m.exec.RequestStart(context.Background(), c.ID, c.Name, cols, rows)
		if m.exec.Active() && m.exec.Target() == c.ID {
			m.overlay = OverlayExec
		} else if !m.exec.Active() && m.overlay == OverlayExec {
			m.overlay = OverlayNone
		}

	case closeOverlayAction:
		m.closeOverlay()

	case startAction:
		m.containerCommand("start", m.rt.StartContainer)

	case stopAction:
		m.containerCommand("stop", m.rt.StopContainer)

	case restartAction:
		m.containerCommand("restart", m.rt.RestartContainer)

	case removeAction:
		m.requestRemove()

	case copyIDAction:
		id, name, ok := m.currentID()
		if !ok {
			return nil
		}
		if err := clipboard.WriteAll(id); err != nil {
			m.notes.Add(notify.Error, "Copy failed: %v", err)
			return nil
		}
		m.notes.Add(notify.Success, "Copied id of %s", name)

	case openPortAction:
		c, ok := m.currentContainer()
		if !ok {
			return nil
		}
		for _, p := range c.Ports {
			if p.HostPort != 0 {
				url := fmt.Sprintf("http://localhost:%d", p.HostPort)
				if err := open.Run(url); err != nil {
					m.notes.Add(notify.Error, "Open %s failed: %v", url, err)
				} else {
					m.notes.Add(notify.Info, "Opening %s", url)
				}
				return nil
			}
		}
		m.notes.Add(notify.Warning, "%s has no published ports", c.Name)

	case beginFilterAction:
		m.filtering = true
		m.filterInput.SetValue(m.filter)
		m.filterInput.Focus()

	case clearFilterAction:
		if m.filter != "" {
			m.filter = ""
			m.applyFilter()
		}

	case openHelpAction:
		m.overlay = OverlayHelp

	case openUsageAction:
		ctx, cancel := context.WithTimeout(context.Background(), actionTimeout)
		defer cancel()
		usage, err := m.rt.DiskUsage(ctx)
		if err != nil {
			m.notes.Add(notify.Error, "Disk usage failed: %v", err)
			return nil
		}
		m.usage = &usage
		m.overlay = OverlayUsage
	}
	return nil
}

// containerCommand runs one synchronous lifecycle call against the
// highlighted container.
func (m *Model) containerCommand(verb string, call func(context.Context, string) error) {
	c, ok := m.currentContainer()
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), actionTimeout)
	defer cancel()
	if err := call(ctx, c.ID); err != nil {
		m.notes.Add(notify.Error, "Failed to %s %s: %v", verb, c.Name, err)
		return
	}
	m.notes.Add(notify.Success, "Requested %s of %s", verb, c.Name)
	m.startRefresh()
}

// requestRemove opens the confirmation dialog for the highlighted
// resource on any tab.
func (m *Model) requestRemove() {
	switch m.tab {
	case TabContainers:
		if c, ok := m.containers.Current(); ok {
			m.confirmKind, m.confirmID, m.confirmName = "container", c.ID, c.Name
			m.overlay = OverlayConfirm
		}
	case TabImages:
		if img, ok := m.images.Current(); ok {
			name := img.RepoTag
			if name == "" {
				name = img.ShortID
			}
			m.confirmKind, m.confirmID, m.confirmName = "image", img.ID, name
			m.overlay = OverlayConfirm
		}
	case TabVolumes:
		if v, ok := m.volumes.Current(); ok {
			m.confirmKind, m.confirmID, m.confirmName = "volume", v.Name, v.Name
			m.overlay = OverlayConfirm
		}
	case TabNetworks:
		if n, ok := m.networks.Current(); ok {
			m.confirmKind, m.confirmID, m.confirmName = "network", n.ID, n.Name
			m.overlay = OverlayConfirm
		}
	}
}

// confirmRemove performs the removal the dialog was opened for.
func (m *Model) confirmRemove() {
	ctx, cancel := context.WithTimeout(context.Background(), actionTimeout)
	defer cancel()

	var err error
	switch m.confirmKind {
	case "container":
		err = m.rt.RemoveContainer(ctx, m.confirmID)
	case "image":
		err = m.rt.RemoveImage(ctx, m.confirmID)
	case "volume":
		err = m.rt.RemoveVolume(ctx, m.confirmID)
	case "network":
		err = m.rt.RemoveNetwork(ctx, m.confirmID)
	}
	if err != nil {
		m.notes.Add(notify.Error, "Failed to remove %s: %v", m.confirmName, err)
	} else {
		m.notes.Add(notify.Success, "Removed %s", m.confirmName)
		m.startRefresh()
	}
	m.overlay = OverlayNone
	m.confirmKind, m.confirmID, m.confirmName = "", "", ""
}

// currentID returns the id and display name of the highlighted resource
// on the active tab.
func (m *Model) currentID() (id, name string, ok bool) {
	switch m.tab {
	case TabContainers:
		if c, ok := m.containers.Current(); ok {
			return c.ID, c.Name, true
		}
	case TabImages:
		if img, ok := m.images.Current(); ok {
			return img.ID, img.RepoTag, true
		}
	case TabVolumes:
		if v, ok := m.volumes.Current(); ok {
			return v.Name, v.Name, true
		}
	case TabNetworks:
		if n, ok := m.networks.Current(); ok {
			return n.ID, n.Name, true
		}
	}
	return "", "", false
}

func (m *Model) moveCursor(delta int) {
	switch m.tab {
	case TabContainers:
		m.containers.Move(delta)
	case TabImages:
		m.images.Move(delta)
	case TabVolumes:
		m.volumes.Move(delta)
	case TabNetworks:
		m.networks.Move(delta)
	}
}

func (m *Model) cursorTop() {
	switch m.tab {
	case TabContainers:
		m.containers.Top()
	case TabImages:
		m.images.Top()
	case TabVolumes:
		m.volumes.Top()
	case TabNetworks:
		m.networks.Top()
	}
}

func (m *Model) cursorBottom() {
	switch m.tab {
	case TabContainers:
		m.containers.Bottom()
	case TabImages:
		m.images.Bottom()
	case TabVolumes:
		m.volumes.Bottom()
	case TabNetworks:
		m.networks.Bottom()
	}
}

func (m *Model) applyFilter() {
	m.containers.ApplyFilter(m.filter)
	m.images.ApplyFilter(m.filter)
	m.volumes.ApplyFilter(m.filter)
	m.networks.ApplyFilter(m.filter)
}

func (m *Model) closeOverlay() {
	if m.overlay == OverlayExec {
		m.exec.Close()
	}
	m.overlay = OverlayNone
	m.details = nil
	m.imageDetails = nil
	m.usage = nil
	m.stats = nil
	m.statsTarget = ""
}
