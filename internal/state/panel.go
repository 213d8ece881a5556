package state

// Panel names one of the dashboard's four panels. The set is closed and
// ordered as a ring: Sessions, Windows, Panes, Preview, then back.
type Panel int

const (
	PanelSessions Panel = iota
	PanelWindows
	PanelPanes
	PanelPreview

	panelCount = 4
)

// Next returns the following panel in ring order.
func (p Panel) Next() Panel {
	return Panel((int(p) + 1) % panelCount)
}

// Prev returns the preceding panel in ring order.
func (p Panel) Prev() Panel {
	return Panel((int(p) + panelCount - 1) % panelCount)
}

// Title is the panel's heading, prefixed with its jump key.
func (p Panel) Title() string {
	switch p {
	case PanelSessions:
		return "[1] Sessions"
	case PanelWindows:
		return "[2] Windows"
	case PanelPanes:
		return "[3] Panes"
	case PanelPreview:
		return "[4] Preview"
	}
	return ""
}

func (p Panel) String() string {
	switch p {
	case PanelSessions:
		return "sessions"
	case PanelWindows:
		return "windows"
	case PanelPanes:
		return "panes"
	case PanelPreview:
		return "preview"
	}
	return "unknown"
}

// PanelFromDigit maps the jump keys 1-4 to panels.
func PanelFromDigit(r rune) (Panel, bool) {
	if r < '1' || r > '4' {
		return 0, false
	}
	return Panel(r - '1'), true
}
