package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tmux-dashboard/internal/backend"
	"github.com/atomicstack/tmux-dashboard/internal/logging"
)

func waitForTick(t *backend.Ticker) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-t.Events()
		if !ok {
			return tickDoneMsg{}
		}
		return tickMsg{at: evt.At}
	}
}

type tickMsg struct {
	at time.Time
}

type tickDoneMsg struct{}

// handleTickMsg expires the status and forces a full refresh once the
// refresh interval has passed, then waits for the next tick.
func (m *Model) handleTickMsg(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tickMsg); !ok {
		return nil
	}
	m.expireStatus()
	if m.refreshDue() {
		logging.Debug("tick refresh", "last", m.sel.LastRefresh(), "interval", m.refreshInterval)
		m.sel.RefreshAll()
	}
	if m.ticker != nil {
		return waitForTick(m.ticker)
	}
	return nil
}

func (m *Model) handleTickDoneMsg(tea.Msg) tea.Cmd {
	m.ticker = nil
	return nil
}

func (m *Model) refreshDue() bool {
	last := m.sel.LastRefresh()
	return last.IsZero() || m.now().Sub(last) >= m.refreshInterval
}
