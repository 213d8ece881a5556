package ui

import (
	"fmt"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tmux-dashboard/internal/logging/events"
	"github.com/atomicstack/tmux-dashboard/internal/state"
	"github.com/atomicstack/tmux-dashboard/internal/tmux"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	m.expireStatus()
	if key.Matches(keyMsg, keys.ForceQuit) {
		m.quit()
		return nil
	}
	switch m.mode {
	case ModeHelp:
		m.handleHelpKey(keyMsg)
	case ModeConfirm:
		m.handleConfirmKey(keyMsg)
	case ModeTextInput:
		m.handleTextInputKey(keyMsg)
	default:
		m.handleNormalKey(keyMsg)
	}
	return nil
}

func (m *Model) quit() {
	m.quitting = true
	events.App.Exit("quit")
}

func (m *Model) handleHelpKey(msg tea.KeyMsg) {
	if key.Matches(msg, keys.CloseHelp) {
		m.setMode(ModeNormal)
	}
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, keys.Accept):
		action := m.pending
		m.resetTransient()
		if action != nil {
			m.executeConfirmed(*action)
		}
	case key.Matches(msg, keys.Decline):
		m.resetTransient()
	}
}

func (m *Model) handleTextInputKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, keys.Confirm):
		action, value := m.pending, m.inputBuffer
		m.resetTransient()
		if action != nil {
			m.executeText(*action, value)
		}
	case key.Matches(msg, keys.Cancel):
		m.resetTransient()
	case key.Matches(msg, keys.Backspace):
		if runes := []rune(m.inputBuffer); len(runes) > 0 {
			m.inputBuffer = string(runes[:len(runes)-1])
		}
	case msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace:
		if msg.Alt {
			return
		}
		for _, r := range msg.Runes {
			if unicode.IsPrint(r) {
				m.inputBuffer += string(r)
			}
		}
	}
}

func (m *Model) handleNormalKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, keys.Quit):
		m.quit()
		return
	case key.Matches(msg, keys.Help):
		m.setMode(ModeHelp)
		return
	case key.Matches(msg, keys.Refresh):
		m.sel.RefreshAll()
		m.setStatus("Refreshed", false)
		return
	case key.Matches(msg, keys.JumpPanel):
		if p, ok := state.PanelFromDigit(msg.Runes[0]); ok {
			m.setFocus(p)
		}
		return
	case key.Matches(msg, keys.NextPanel):
		m.setFocus(m.focus.Next())
		return
	case key.Matches(msg, keys.PrevPanel):
		m.setFocus(m.focus.Prev())
		return
	}

	switch {
	case key.Matches(msg, keys.Right):
		m.setFocus(m.focus.Next())
		return
	case key.Matches(msg, keys.Left):
		m.setFocus(m.focus.Prev())
		return
	}
	if m.focus == PanelPreview {
		return
	}

	switch {
	case key.Matches(msg, keys.Down):
		m.sel.MoveSelection(m.focus, 1)
	case key.Matches(msg, keys.Up):
		m.sel.MoveSelection(m.focus, -1)
	case key.Matches(msg, keys.Switch):
		m.switchToSelection()
	case key.Matches(msg, keys.New):
		m.beginNew()
	case key.Matches(msg, keys.Rename):
		m.beginRename()
	case key.Matches(msg, keys.Delete):
		m.beginKill()
	case m.focus == PanelPanes && key.Matches(msg, keys.SplitHoriz):
		m.splitPane(tmux.SplitHorizontal)
	case m.focus == PanelPanes && key.Matches(msg, keys.Zoom):
		m.toggleZoom()
	case m.focus == PanelPanes && key.Matches(msg, keys.Break):
		m.breakPane()
	}
}

func (m *Model) setFocus(p Panel) {
	if m.focus == p {
		return
	}
	m.focus = p
	events.Selection.Focus(p.String())
}

func (m *Model) beginNew() {
	switch m.focus {
	case PanelSessions:
		m.startTextInput("New session name: ", "", PendingAction{Kind: ActionCreateSession})
	case PanelWindows:
		if sess, ok := m.sel.SelectedSession(); ok {
			m.startTextInput("New window name: ", "", PendingAction{Kind: ActionCreateWindow, Session: sess.Name})
		}
	case PanelPanes:
		m.splitPane(tmux.SplitVertical)
	}
}

func (m *Model) beginRename() {
	switch m.focus {
	case PanelSessions:
		if sess, ok := m.sel.SelectedSession(); ok {
			m.startTextInput("Rename session: ", sess.Name, PendingAction{Kind: ActionRenameSession, Session: sess.Name})
		}
	case PanelWindows:
		sess, okS := m.sel.SelectedSession()
		win, okW := m.sel.SelectedWindow()
		if okS && okW {
			m.startTextInput("Rename window: ", win.Name, PendingAction{Kind: ActionRenameWindow, Session: sess.Name, Window: win.Index})
		}
	}
}

func (m *Model) beginKill() {
	switch m.focus {
	case PanelSessions:
		if sess, ok := m.sel.SelectedSession(); ok {
			m.startConfirm(fmt.Sprintf("Kill session '%s'? (y/n)", sess.Name), PendingAction{Kind: ActionKillSession, Session: sess.Name})
		}
	case PanelWindows:
		sess, okS := m.sel.SelectedSession()
		win, okW := m.sel.SelectedWindow()
		if okS && okW {
			m.startConfirm(fmt.Sprintf("Kill window '%s:%s'? (y/n)", sess.Name, win.Name), PendingAction{Kind: ActionKillWindow, Session: sess.Name, Window: win.Index})
		}
	case PanelPanes:
		if pane, ok := m.sel.SelectedPane(); ok {
			m.startConfirm(fmt.Sprintf("Kill pane '%s'? (y/n)", pane.ID), PendingAction{Kind: ActionKillPane, Pane: pane.ID})
		}
	}
}

func (m *Model) startTextInput(prompt, prefill string, action PendingAction) {
	if !m.setMode(ModeTextInput) {
		return
	}
	m.inputPrompt = prompt
	m.inputBuffer = prefill
	m.pending = &action
}

func (m *Model) startConfirm(message string, action PendingAction) {
	if !m.setMode(ModeConfirm) {
		return
	}
	m.confirmMsg = message
	m.pending = &action
}

// resetTransient returns to normal mode and clears the prompt, buffer,
// confirmation and pending action.
func (m *Model) resetTransient() {
	m.setMode(ModeNormal)
	m.inputBuffer = ""
	m.inputPrompt = ""
	m.confirmMsg = ""
	m.pending = nil
}
