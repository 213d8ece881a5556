package ui

import (
	"fmt"

	"github.com/atomicstack/tmux-dashboard/internal/logging/events"
	"github.com/atomicstack/tmux-dashboard/internal/tmux"
	"github.com/atomicstack/tmux-dashboard/internal/ui/command"
)

// ActionKind names a mutation that waits for a name or a confirmation.
type ActionKind int

const (
	ActionCreateSession ActionKind = iota + 1
	ActionRenameSession
	ActionCreateWindow
	ActionRenameWindow
	ActionKillSession
	ActionKillWindow
	ActionKillPane
)

func (k ActionKind) String() string {
	switch k {
	case ActionCreateSession:
		return "create-session"
	case ActionRenameSession:
		return "rename-session"
	case ActionCreateWindow:
		return "create-window"
	case ActionRenameWindow:
		return "rename-window"
	case ActionKillSession:
		return "kill-session"
	case ActionKillWindow:
		return "kill-window"
	case ActionKillPane:
		return "kill-pane"
	}
	return "unknown"
}

// PendingAction is the target captured when a prompt or confirmation opens.
// Session holds the session name (the old name for a rename), Window the
// window index and Pane the pane id; each kind uses only what it needs.
type PendingAction struct {
	Kind    ActionKind
	Session string
	Window  int
	Pane    string
}

// mutate runs one tmux mutation through the command bus. Success sets an
// info status and refreshes everything; failure shows the error verbatim
// and leaves the lists alone.
func (m *Model) mutate(label string, run func() error, success string) bool {
	res := m.bus.Execute(command.Request{
		ID:      label,
		Label:   label,
		Run:     run,
		Success: success,
	})
	if !res.OK() {
		m.setStatus(res.Err.Error(), true)
		return false
	}
	m.setStatus(res.Info, false)
	m.sel.RefreshAll()
	return true
}

// executeText applies a TextInput action with the collected value. Empty
// values abort silently, except for create-window where they mean the tmux
// default name.
func (m *Model) executeText(action PendingAction, value string) {
	switch action.Kind {
	case ActionCreateSession:
		if value == "" {
			return
		}
		events.Session.Create(value)
		m.mutate(action.Kind.String(), func() error {
			return m.exec.NewSession(value)
		}, fmt.Sprintf("Session '%s' created", value))
	case ActionRenameSession:
		if value == "" {
			return
		}
		events.Session.Rename(action.Session, value)
		m.mutate(action.Kind.String(), func() error {
			return m.exec.RenameSession(action.Session, value)
		}, fmt.Sprintf("Session renamed to '%s'", value))
	case ActionCreateWindow:
		events.Window.Create(action.Session, value)
		m.mutate(action.Kind.String(), func() error {
			return m.exec.NewWindow(action.Session, value)
		}, "Window created")
	case ActionRenameWindow:
		if value == "" {
			return
		}
		events.Window.Rename(windowTarget(action.Session, action.Window), value)
		m.mutate(action.Kind.String(), func() error {
			return m.exec.RenameWindow(action.Session, action.Window, value)
		}, fmt.Sprintf("Window renamed to '%s'", value))
	}
}

// executeConfirmed applies an accepted Confirm action.
func (m *Model) executeConfirmed(action PendingAction) {
	switch action.Kind {
	case ActionKillSession:
		events.Session.Kill(action.Session)
		m.mutate(action.Kind.String(), func() error {
			return m.exec.KillSession(action.Session)
		}, fmt.Sprintf("Session '%s' killed", action.Session))
	case ActionKillWindow:
		target := windowTarget(action.Session, action.Window)
		events.Window.Kill(target)
		m.mutate(action.Kind.String(), func() error {
			return m.exec.KillWindow(action.Session, action.Window)
		}, fmt.Sprintf("Window %s killed", target))
	case ActionKillPane:
		events.Pane.Kill(action.Pane)
		m.mutate(action.Kind.String(), func() error {
			return m.exec.KillPane(action.Pane)
		}, fmt.Sprintf("Pane '%s' killed", action.Pane))
	}
}

func (m *Model) splitPane(orientation tmux.Orientation) {
	sess, okS := m.sel.SelectedSession()
	win, okW := m.sel.SelectedWindow()
	pane, okP := m.sel.SelectedPane()
	if !okS || !okW || !okP {
		return
	}
	done := "Pane split vertically"
	if orientation == tmux.SplitHorizontal {
		done = "Pane split horizontally"
	}
	events.Pane.Split(pane.ID, orientation.String())
	m.mutate("split-pane", func() error {
		return m.exec.SplitPane(sess.Name, win.Index, pane.ID, orientation)
	}, done)
}

func (m *Model) toggleZoom() {
	pane, ok := m.sel.SelectedPane()
	if !ok {
		return
	}
	events.Pane.Zoom(pane.ID)
	m.mutate("toggle-zoom", func() error {
		return m.exec.ToggleZoom(pane.ID)
	}, "Pane zoom toggled")
}

func (m *Model) breakPane() {
	pane, ok := m.sel.SelectedPane()
	if !ok {
		return
	}
	events.Pane.Break(pane.ID)
	m.mutate("break-pane", func() error {
		return m.exec.BreakPane(pane.ID)
	}, "Pane broken to new window")
}

// switchToSelection focuses the selected session, window or pane in a real
// tmux client. Outside tmux there is no client to switch, so the dashboard
// quits and hands the target to the caller to attach to.
func (m *Model) switchToSelection() {
	sess, ok := m.sel.SelectedSession()
	if !ok {
		return
	}
	var (
		target string
		steps  []func() error
		done   string
	)
	switch m.focus {
	case PanelSessions:
		target = sess.Name
		steps = []func() error{func() error { return m.exec.SwitchClient(sess.Name) }}
		done = fmt.Sprintf("Switched to '%s'", sess.Name)
		events.Session.Switch(target)
	case PanelWindows:
		win, ok := m.sel.SelectedWindow()
		if !ok {
			return
		}
		target = windowTarget(sess.Name, win.Index)
		steps = []func() error{
			func() error { return m.exec.SelectWindow(sess.Name, win.Index) },
			func() error { return m.exec.SwitchClient(target) },
		}
		done = fmt.Sprintf("Switched to %s", target)
		events.Window.Switch(target)
	case PanelPanes:
		win, okW := m.sel.SelectedWindow()
		pane, okP := m.sel.SelectedPane()
		if !okW || !okP {
			return
		}
		winTarget := windowTarget(sess.Name, win.Index)
		target = fmt.Sprintf("%s.%d", winTarget, pane.Index)
		steps = []func() error{
			func() error { return m.exec.SelectWindow(sess.Name, win.Index) },
			func() error { return m.exec.SelectPane(pane.ID) },
			func() error { return m.exec.SwitchClient(winTarget) },
		}
		done = fmt.Sprintf("Switched to %s", target)
		events.Pane.Switch(target)
	default:
		return
	}

	if !m.exec.InsideClient() {
		m.handoff = target
		m.quitting = true
		events.App.Handoff(target)
		return
	}

	res := m.bus.Execute(command.Request{
		ID:    "switch",
		Label: "switch " + target,
		Run: func() error {
			for _, step := range steps {
				if err := step(); err != nil {
					return err
				}
			}
			return nil
		},
		Success: done,
	})
	if res.OK() {
		m.setStatus(res.Info, false)
		return
	}
	m.setStatus(res.Err.Error(), true)
}

func windowTarget(session string, index int) string {
	return fmt.Sprintf("%s:%d", session, index)
}
