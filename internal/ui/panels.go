package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/tmux-dashboard/internal/state"
)

const itemIndicator = "▌ "

func (m *Model) panelStyles(p Panel) (border, title *lipgloss.Style) {
	if m.focus == p {
		return styles.FocusedBorder, styles.FocusedTitle
	}
	return styles.PanelBorder, styles.PanelTitle
}

func (m *Model) sessionsPanel(v state.View, width, height int) string {
	sessions := v.Sessions
	rows := make([]string, len(sessions))
	for i, s := range sessions {
		rows[i] = fmt.Sprintf("%s [%dw]", s.Name, s.Windows)
		if s.Attached {
			rows[i] += " *"
		}
	}
	return m.listPanel(PanelSessions, rows, v.SessionCursor, "(no sessions)", width, height)
}

func (m *Model) windowsPanel(v state.View, width, height int) string {
	placeholder := "(no windows)"
	if _, ok := v.SelectedSession(); !ok {
		placeholder = "(no session selected)"
	}
	windows := v.Windows
	rows := make([]string, len(windows))
	for i, w := range windows {
		rows[i] = fmt.Sprintf("%d:%s", w.Index, w.Name)
		if w.Active {
			rows[i] += " *"
		}
	}
	return m.listPanel(PanelWindows, rows, v.WindowCursor, placeholder, width, height)
}

func (m *Model) panesPanel(v state.View, width, height int) string {
	placeholder := "(no panes)"
	if _, ok := v.SelectedWindow(); !ok {
		placeholder = "(no window selected)"
	}
	panes := v.Panes
	rows := make([]string, len(panes))
	for i, p := range panes {
		marker := " "
		if p.Active {
			marker = "*"
		}
		rows[i] = fmt.Sprintf("%s%d %s (%dx%d)", marker, p.Index, p.Command, p.Width, p.Height)
	}
	return m.listPanel(PanelPanes, rows, v.PaneCursor, placeholder, width, height)
}

// listPanel renders rows inside a titled box, scrolled so cursor stays in
// view.
func (m *Model) listPanel(p Panel, rows []string, cursor int, placeholder string, width, height int) string {
	border, title := m.panelStyles(p)
	visible := max(height-2, 0)
	if len(rows) == 0 {
		lines := []styledLine{{text: placeholder, style: styles.Placeholder}}
		return renderBox(p.Title(), lines, width, height, border, title)
	}

	vp := m.viewports[p]
	start, end := vp.Range(cursor, len(rows), visible)
	lines := make([]styledLine, 0, end-start)
	for i := start; i < end; i++ {
		if i == cursor {
			style := styles.SelectedItemUnfocused
			if m.focus == p {
				style = styles.SelectedItem
			}
			lines = append(lines, styledLine{text: itemIndicator + rows[i], style: style})
			continue
		}
		lines = append(lines, styledLine{text: "  " + rows[i], style: styles.Item})
	}
	return renderBox(p.Title(), lines, width, height, border, title)
}
