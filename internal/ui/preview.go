package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/tmux-dashboard/internal/format/table"
	"github.com/atomicstack/tmux-dashboard/internal/layout"
	"github.com/atomicstack/tmux-dashboard/internal/state"
	"github.com/atomicstack/tmux-dashboard/internal/tmux"
)

const (
	previewTimeLayout = "2006-01-02 15:04:05"
	tabWidth          = 8
)

// previewPanel renders the fourth panel. Its content follows focus:
// details for sessions and windows, the minimap for panes, and the pane
// capture when the panel itself is focused.
func (m *Model) previewPanel(v state.View, width, height int) string {
	border, title := m.panelStyles(PanelPreview)
	innerW, innerH := max(width-2, 0), max(height-2, 0)

	var lines []styledLine
	switch m.focus {
	case PanelSessions:
		lines = sessionDetails(v)
	case PanelWindows:
		lines = windowDetails(v)
	case PanelPanes:
		lines = minimapLines(v, innerW, innerH)
	default:
		lines = captureLines(v, innerH)
	}
	return renderBox(PanelPreview.Title(), lines, width, height, border, title)
}

func sessionDetails(v state.View) []styledLine {
	sess, ok := v.SelectedSession()
	if !ok {
		return []styledLine{{text: "(no session selected)", style: styles.Placeholder}}
	}
	attached := "no"
	if sess.Attached {
		attached = "yes"
	}
	rows := table.KeyValue([][2]string{
		{"ID", sess.ID},
		{"Windows", fmt.Sprint(sess.Windows)},
		{"Attached", attached},
		{"Created", formatTime(sess.Created)},
		{"Activity", formatTime(sess.Activity)},
	})
	return detailLines("Session: "+sess.Name, rows)
}

func windowDetails(v state.View) []styledLine {
	sess, okS := v.SelectedSession()
	win, okW := v.SelectedWindow()
	if !okS || !okW {
		return []styledLine{{text: "(no window selected)", style: styles.Placeholder}}
	}
	active := "no"
	if win.Active {
		active = "yes"
	}
	rows := table.KeyValue([][2]string{
		{"Index", fmt.Sprint(win.Index)},
		{"ID", win.ID},
		{"Panes", fmt.Sprint(win.Panes)},
		{"Active", active},
		{"Flags", win.Flags},
		{"Layout", win.Layout},
	})
	return detailLines(fmt.Sprintf("Window: %s:%s", sess.Name, win.Name), rows)
}

func detailLines(header string, rows []string) []styledLine {
	lines := make([]styledLine, 0, len(rows)+2)
	lines = append(lines, styledLine{text: header, style: styles.DetailHeader}, styledLine{})
	for _, row := range rows {
		lines = append(lines, styledLine{text: row, style: styles.DetailBody})
	}
	return lines
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(previewTimeLayout)
}

// minimapLines draws the selected window's pane layout scaled into the
// panel. When the panel is too small for every pane it shows the capture
// instead.
func minimapLines(v state.View, width, height int) []styledLine {
	panes := v.Panes
	if len(panes) == 0 {
		return []styledLine{{text: "(no layout)", style: styles.Placeholder}}
	}
	viewport := layout.Rect{W: width, H: height}
	cells, ok := layout.Project(paneGeoms(panes), viewport, v.PaneCursor)
	if !ok {
		return captureLines(v, height)
	}
	if len(cells) == 0 {
		return []styledLine{{text: "(no layout)", style: styles.Placeholder}}
	}
	canvas := layout.NewCanvas(width, height)
	layout.DrawCells(canvas, cells, canvas.Bounds())
	rendered := canvas.Lines(paintMinimap)
	lines := make([]styledLine, len(rendered))
	for i, row := range rendered {
		lines[i] = styledLine{text: row, raw: true}
	}
	return lines
}

func paintMinimap(class layout.Class, text string) string {
	switch class {
	case layout.ClassBorder:
		return styles.MinimapBorder.Render(text)
	case layout.ClassLabel:
		return styles.MinimapLabel.Render(text)
	case layout.ClassSelectedBorder:
		return styles.MinimapSelectedBorder.Render(text)
	case layout.ClassSelectedLabel:
		return styles.MinimapSelectedLabel.Render(text)
	}
	return text
}

func paneGeoms(panes []tmux.Pane) []layout.PaneGeom {
	out := make([]layout.PaneGeom, len(panes))
	for i, p := range panes {
		out[i] = layout.PaneGeom{
			Index:   p.Index,
			Top:     p.Top,
			Left:    p.Left,
			Width:   p.Width,
			Height:  p.Height,
			Active:  p.Active,
			Command: p.Command,
		}
	}
	return out
}

// captureLines returns the last height lines of the capture buffer so the
// most recent output stays visible.
func captureLines(v state.View, height int) []styledLine {
	if _, ok := v.SelectedPane(); !ok {
		return []styledLine{{text: "(no pane selected)", style: styles.Placeholder}}
	}
	capture := v.Capture
	if strings.TrimSpace(capture) == "" {
		return []styledLine{{text: "(empty)", style: styles.Placeholder}}
	}
	raw := strings.Split(capture, "\n")
	if height > 0 && len(raw) > height {
		raw = raw[len(raw)-height:]
	}
	lines := make([]styledLine, len(raw))
	for i, line := range raw {
		lines[i] = styledLine{text: expandTabs(line), style: styles.CaptureBody}
	}
	return lines
}

func expandTabs(line string) string {
	if !strings.ContainsRune(line, '\t') {
		return line
	}
	var b strings.Builder
	col := 0
	for _, r := range line {
		if r == '\t' {
			n := tabWidth - col%tabWidth
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteRune(r)
		col++
	}
	return b.String()
}
