// Package app owns the application state and the fixed-cadence update
// loop: render, translate input to actions, then run the periodic
// checks that drain background work back into state. All state is
// mutated from the update loop only.
package app

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"lazydock/internal/config"
	"lazydock/internal/docker"
	"lazydock/internal/exec"
	"lazydock/internal/fetch"
	"lazydock/internal/notify"
	"lazydock/internal/ui/containers"
	"lazydock/internal/ui/images"
	"lazydock/internal/ui/networks"
	"lazydock/internal/ui/shared"
	"lazydock/internal/ui/volumes"
)

const (
	tickInterval       = 250 * time.Millisecond
	logFollowInterval  = 2 * time.Second
	statFollowInterval = time.Second

	// fetchTimeout bounds one background remote call; a hung daemon
	// surfaces as an error instead of a stuck in-flight marker.
	fetchTimeout = 10 * time.Second

	// actionTimeout bounds the cheap synchronous calls (start, stop,
	// restart, remove, inspect).
	actionTimeout = 5 * time.Second

	// logBufferCap caps the log overlay buffer; oldest lines are
	// evicted first.
	logBufferCap = 500
)

// Tab identifies the active resource panel.
type Tab int

const (
	TabContainers Tab = iota
	TabImages
	TabVolumes
	TabNetworks
)

func (t Tab) String() string {
	switch t {
	case TabContainers:
		return "Containers"
	case TabImages:
		return "Images"
	case TabVolumes:
		return "Volumes"
	case TabNetworks:
		return "Networks"
	}
	return "?"
}

// Overlay identifies what is drawn over the list panel.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayLogs
	OverlayStats
	OverlayDetails
	OverlayExec
	OverlayConfirm
	OverlayHelp
	OverlayUsage
)

// Runtime is the daemon surface the application consumes. *docker.Client
// provides everything except StartExec's return type, which dockerRuntime
// adapts.
type Runtime interface {
	ConnectionInfo() docker.ConnectionInfo
	ListContainers(ctx context.Context, all bool) ([]docker.ContainerSummary, error)
	ListImages(ctx context.Context) ([]docker.ImageSummary, error)
	ListVolumes(ctx context.Context) ([]docker.VolumeSummary, error)
	ListNetworks(ctx context.Context) ([]docker.NetworkSummary, error)
	StartContainer(ctx context.Context, id string) error
	StopContainer(ctx context.Context, id string) error
	RestartContainer(ctx context.Context, id string) error
	RemoveContainer(ctx context.Context, id string) error
	RemoveImage(ctx context.Context, id string) error
	RemoveVolume(ctx context.Context, name string) error
	RemoveNetwork(ctx context.Context, id string) error
	Inspect(ctx context.Context, id string) (docker.ContainerDetails, error)
	InspectImage(ctx context.Context, id string) (docker.ImageDetails, error)
	DiskUsage(ctx context.Context) (docker.SystemUsage, error)
	FetchLogs(ctx context.Context, id string, tail int) ([]docker.LogEntry, error)
	FetchStats(ctx context.Context, id string) (docker.StatsSnapshot, error)
	exec.Runtime
}

// dockerRuntime adapts *docker.Client to the Runtime interface.
type dockerRuntime struct {
	*docker.Client
}

func (d dockerRuntime) StartExec(ctx context.Context, id string, cmd []string, cols, rows uint16) (exec.Attached, error) {
	s, err := d.Client.StartExec(ctx, id, cmd, cols, rows)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// snapshot is one full data refresh result across all panels.
type snapshot struct {
	containers []docker.ContainerSummary
	images     []docker.ImageSummary
	volumes    []docker.VolumeSummary
	networks   []docker.NetworkSummary
}

// Model is the bubbletea model; one instance owns all state.
type Model struct {
	rt  Runtime
	cfg *config.Config

	width  int
	height int

	tab        Tab
	containers containers.State
	images     images.State
	volumes    volumes.State
	networks   networks.State
	viewports  [4]shared.Viewport

	filterInput textinput.Model
	filtering   bool
	filter      string

	overlay Overlay

	details      *docker.ContainerDetails
	imageDetails *docker.ImageDetails
	usage        *docker.SystemUsage

	logTarget     string
	logTargetName string
	logLines      []docker.LogEntry
	logFollow     bool
	logScroll     int

	statsTarget string
	stats       *docker.StatsSnapshot

	confirmKind string // "container", "image", "volume", "network"
	confirmID   string
	confirmName string

	refreshC *fetch.Coordinator[snapshot]
	logsC    *fetch.Coordinator[[]docker.LogEntry]
	statsC   *fetch.Coordinator[docker.StatsSnapshot]

	exec  *exec.Manager
	notes *notify.Queue

	quitting bool
}

// New assembles a model around an already-connected client.
func New(cfg *config.Config, client *docker.Client) *Model {
	return newModel(cfg, dockerRuntime{client})
}

func newModel(cfg *config.Config, rt Runtime) *Model {
	fi := textinput.New()
	fi.Placeholder = "filter"
	fi.CharLimit = 64

	m := &Model{
		rt:          rt,
		cfg:         cfg,
		filterInput: fi,
		refreshC:    fetch.New[snapshot](cfg.RefreshInterval()),
		logsC:       fetch.New[[]docker.LogEntry](logFollowInterval),
		statsC:      fetch.New[docker.StatsSnapshot](statFollowInterval),
		notes:       &notify.Queue{},
		logFollow:   true,
	}
	m.exec = exec.NewManager(rt, m.notes.Add)
	return m
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init starts the tick loop and issues the first data refresh.
func (m *Model) Init() tea.Cmd {
	m.startRefresh()
	return tick()
}

// currentContainer returns the highlighted container, and only while
// the container panel is active; container actions are no-ops on the
// other tabs.
func (m *Model) currentContainer() (docker.ContainerSummary, bool) {
	if m.tab != TabContainers {
		return docker.ContainerSummary{}, false
	}
	return m.containers.Current()
}

// execViewport is the sizing rule shared by the exec overlay layout and
// the remote pty. The overlay keeps a two-column margin and leaves room
// for the header, status line and footer.
func (m *Model) execViewport() (cols, rows uint16) {
	w := m.width - 4
	h := m.height - 7
	if w < 20 {
		w = 20
	}
	if h < 5 {
		h = 5
	}
	return uint16(w), uint16(h)
}
