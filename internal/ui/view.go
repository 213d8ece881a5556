package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/tmux-dashboard/internal/state"
)

const (
	wideLayoutMinWidth = 100
	statusBarRows      = 1

	statusHint = " q:quit  ?:help  1-4:panels  n:new  r:rename  d:delete  Enter:switch  R:refresh"
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model. Every panel in a frame renders from one
// selection snapshot.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	width, height := m.width, m.height
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}
	v := m.sel.Snapshot()
	mainH := height - statusBarRows
	if mainH < 3 {
		mainH = 3
	}

	var body string
	if width >= wideLayoutMinWidth {
		body = m.viewWide(v, width, mainH)
	} else {
		body = m.viewNarrow(v, width, mainH)
	}
	screen := body + "\n" + m.statusBar(width)

	switch m.mode {
	case ModeTextInput:
		screen = overlay(screen, m.textInputBox(width, height), width, height)
	case ModeConfirm:
		screen = overlay(screen, m.confirmBox(width, height), width, height)
	case ModeHelp:
		screen = overlay(screen, m.helpBox(width, height), width, height)
	}
	return screen
}

// viewWide lays out Sessions over Windows, then Panes, then Preview, split
// 20/30/50.
func (m *Model) viewWide(v state.View, width, height int) string {
	leftW := width * 20 / 100
	midW := width * 30 / 100
	rightW := width - leftW - midW
	left := m.leftColumn(v, leftW, height)
	mid := m.panesPanel(v, midW, height)
	right := m.previewPanel(v, rightW, height)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, mid, right)
}

// viewNarrow shows Sessions over Windows beside either Panes or, when it is
// focused, Preview, split 30/70.
func (m *Model) viewNarrow(v state.View, width, height int) string {
	leftW := width * 30 / 100
	rightW := width - leftW
	left := m.leftColumn(v, leftW, height)
	var right string
	if m.focus == PanelPreview {
		right = m.previewPanel(v, rightW, height)
	} else {
		right = m.panesPanel(v, rightW, height)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (m *Model) leftColumn(v state.View, width, height int) string {
	topH := height / 2
	return m.sessionsPanel(v, width, topH) + "\n" + m.windowsPanel(v, width, height-topH)
}

func (m *Model) statusBar(width int) string {
	line := styledLine{text: statusHint, style: styles.StatusHint}
	if status, ok := m.Status(); ok {
		line = styledLine{text: status.Text, style: styles.StatusInfo}
		if status.Error {
			line.style = styles.StatusError
		}
	}
	lines := applyWidth([]styledLine{line}, width)
	return renderLines(lines)
}

// renderBox draws a rounded box of exactly width x height cells with title
// set into the top border. Content rows are clipped or padded to fit.
func renderBox(title string, lines []styledLine, width, height int, border, titleStyle *lipgloss.Style) string {
	const (
		tlc = "╭"
		trc = "╮"
		blc = "╰"
		brc = "╯"
		hz  = "─"
		vt  = "│"
	)
	if width < 2 {
		width = 2
	}
	if height < 2 {
		height = 2
	}
	innerW := width - 2
	innerH := height - 2

	paint := func(s *lipgloss.Style, text string) string {
		if s == nil {
			return text
		}
		return s.Render(text)
	}

	titleSeg := ""
	if title != "" {
		titleSeg = " " + title + " "
	}
	if runewidth.StringWidth(titleSeg) > innerW-1 {
		titleSeg = truncateText(titleSeg, innerW-1)
	}
	dashes := innerW - 1 - runewidth.StringWidth(titleSeg)
	if titleSeg == "" {
		dashes = innerW - 1
	}
	if dashes < 0 {
		dashes = 0
	}
	top := paint(border, tlc+hz)
	if innerW < 1 {
		top = paint(border, tlc)
	}
	top += paint(titleStyle, titleSeg) + paint(border, strings.Repeat(hz, dashes)+trc)
	bottom := paint(border, blc+strings.Repeat(hz, innerW)+brc)

	if len(lines) > innerH {
		lines = lines[:innerH]
	}
	rows := make([]string, 0, height)
	rows = append(rows, top)
	for i := 0; i < innerH; i++ {
		var content string
		if i < len(lines) {
			content = renderLines(applyWidth(padLines(lines[i:i+1], innerW), innerW))
		} else {
			content = strings.Repeat(" ", innerW)
		}
		if w := ansi.StringWidth(content); w < innerW {
			content += strings.Repeat(" ", innerW-w)
		}
		rows = append(rows, paint(border, vt)+content+paint(border, vt))
	}
	rows = append(rows, bottom)
	return strings.Join(rows, "\n")
}

// padLines pads plain lines to width so a styled background spans the row.
func padLines(lines []styledLine, width int) []styledLine {
	out := make([]styledLine, len(lines))
	for i, line := range lines {
		out[i] = line
		if line.raw {
			continue
		}
		if pad := width - runewidth.StringWidth(line.text); pad > 0 {
			out[i].text = line.text + strings.Repeat(" ", pad)
		}
	}
	return out
}

// overlay paints box centred over screen. Both are newline-joined rows;
// rows of screen hidden behind the box keep their visible edges.
func overlay(screen, box string, width, height int) string {
	rows := strings.Split(screen, "\n")
	boxRows := strings.Split(box, "\n")
	boxW := 0
	for _, r := range boxRows {
		boxW = max(boxW, ansi.StringWidth(r))
	}
	x := max((width-boxW)/2, 0)
	y := max((height-len(boxRows))/2, 0)
	for i, b := range boxRows {
		row := y + i
		if row >= len(rows) {
			break
		}
		base := rows[row]
		if w := ansi.StringWidth(base); w < x+boxW {
			base += strings.Repeat(" ", x+boxW-w)
		}
		rows[row] = ansi.Truncate(base, x, "") + b + ansi.TruncateLeft(base, x+boxW, "")
	}
	return strings.Join(rows, "\n")
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			w := lipgloss.Width(text)
			if w > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{
			text:          text,
			style:         line.style,
			prefixStyle:   line.prefixStyle,
			highlightFrom: line.highlightFrom,
			raw:           line.raw,
		}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

// truncateText shortens text to width terminal cells, ending in "…" when
// anything was cut.
func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	if runewidth.StringWidth(text) <= width {
		return text
	}
	if width == 1 {
		return runewidth.Truncate(text, 1, "")
	}
	return runewidth.Truncate(text, width, "…")
}
