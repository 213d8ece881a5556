package ui

import (
	"reflect"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tmux-dashboard/internal/backend"
	"github.com/atomicstack/tmux-dashboard/internal/state"
	"github.com/atomicstack/tmux-dashboard/internal/theme"
	"github.com/atomicstack/tmux-dashboard/internal/tmux"
	"github.com/atomicstack/tmux-dashboard/internal/ui/command"
	uistate "github.com/atomicstack/tmux-dashboard/internal/ui/state"
)

// Panel and its constants are re-exported so callers of this package need
// not import the selection model to name a panel.
type Panel = state.Panel

const (
	PanelSessions = state.PanelSessions
	PanelWindows  = state.PanelWindows
	PanelPanes    = state.PanelPanes
	PanelPreview  = state.PanelPreview
)

const defaultRefreshInterval = 2 * time.Second

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Executor is everything the dashboard asks of tmux: the queries behind the
// selection model plus the mutations bound to keys.
type Executor interface {
	state.Source

	NewSession(name string) error
	KillSession(name string) error
	RenameSession(oldName, newName string) error
	NewWindow(session, name string) error
	KillWindow(session string, index int) error
	RenameWindow(session string, index int, name string) error
	SplitPane(session string, index int, paneID string, orientation tmux.Orientation) error
	KillPane(paneID string) error
	ToggleZoom(paneID string) error
	BreakPane(paneID string) error
	SelectWindow(session string, index int) error
	SelectPane(paneID string) error
	SwitchClient(target string) error
	InsideClient() bool
}

// Options configures a Model.
type Options struct {
	Executor Executor
	// Ticker drives periodic refreshes. Nil disables them.
	Ticker          *backend.Ticker
	RefreshInterval time.Duration
	// Now replaces time.Now for status expiry and refresh scheduling.
	Now    func() time.Time
	Width  int
	Height int
}

// Model implements the Bubble Tea model for the dashboard.
type Model struct {
	exec   Executor
	sel    *state.Selection
	bus    *command.Bus
	ticker *backend.Ticker
	now    func() time.Time

	refreshInterval time.Duration

	width  int
	height int

	focus Panel
	mode  Mode

	inputBuffer string
	inputPrompt string
	confirmMsg  string
	pending     *PendingAction

	status *Status

	viewports map[Panel]*uistate.Viewport

	handoff  string
	quitting bool

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the model and performs the startup refresh.
func NewModel(opts Options) *Model {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	interval := opts.RefreshInterval
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	m := &Model{
		exec:            opts.Executor,
		sel:             state.NewSelection(opts.Executor, state.WithClock(now)),
		bus:             command.New(),
		ticker:          opts.Ticker,
		now:             now,
		refreshInterval: interval,
		width:           opts.Width,
		height:          opts.Height,
		focus:           PanelSessions,
		mode:            ModeNormal,
		viewports: map[Panel]*uistate.Viewport{
			PanelSessions: {},
			PanelWindows:  {},
			PanelPanes:    {},
		},
	}
	m.registerHandlers()
	m.sel.RefreshAll()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.ticker == nil {
		return nil
	}
	return waitForTick(m.ticker)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tickMsg{}):           m.handleTickMsg,
		reflect.TypeOf(tickDoneMsg{}):       m.handleTickDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.quitting {
		cmds = append(cmds, tea.Quit)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	m.width = resize.Width
	m.height = resize.Height
	return nil
}

// Mode returns the current input mode.
func (m *Model) Mode() Mode { return m.mode }

// Focus returns the focused panel.
func (m *Model) Focus() Panel { return m.focus }

// Selection exposes the selection model for read access.
func (m *Model) Selection() *state.Selection { return m.sel }

// Input returns the text-input prompt and buffer.
func (m *Model) Input() (prompt, buffer string) { return m.inputPrompt, m.inputBuffer }

// ConfirmMessage returns the pending confirmation text.
func (m *Model) ConfirmMessage() string { return m.confirmMsg }

// Pending returns a copy of the pending action, if any.
func (m *Model) Pending() (PendingAction, bool) {
	if m.pending == nil {
		return PendingAction{}, false
	}
	return *m.pending, true
}

// Handoff reports the attach target chosen when the dashboard quit to let a
// new tmux client take over the terminal.
func (m *Model) Handoff() (string, bool) {
	return m.handoff, m.handoff != ""
}

// Quitting reports whether the model has asked the program to exit.
func (m *Model) Quitting() bool { return m.quitting }
