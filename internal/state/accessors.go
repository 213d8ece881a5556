package state

import (
	"time"

	"github.com/atomicstack/tmux-dashboard/internal/tmux"
)

// View is a read-only copy of the selection for one frame.
type View struct {
	Sessions      []tmux.Session
	Windows       []tmux.Window
	Panes         []tmux.Pane
	SessionCursor int
	WindowCursor  int
	PaneCursor    int
	Capture       string
	LastRefresh   time.Time
}

// Snapshot copies the current lists, cursors and capture.
func (s *Selection) Snapshot() View {
	return View{
		Sessions:      s.Sessions(),
		Windows:       s.Windows(),
		Panes:         s.Panes(),
		SessionCursor: s.sessionSel,
		WindowCursor:  s.windowSel,
		PaneCursor:    s.paneSel,
		Capture:       s.capture,
		LastRefresh:   s.lastRefresh,
	}
}

func (v View) SelectedSession() (tmux.Session, bool) {
	if v.SessionCursor < 0 || v.SessionCursor >= len(v.Sessions) {
		return tmux.Session{}, false
	}
	return v.Sessions[v.SessionCursor], true
}

func (v View) SelectedWindow() (tmux.Window, bool) {
	if v.WindowCursor < 0 || v.WindowCursor >= len(v.Windows) {
		return tmux.Window{}, false
	}
	return v.Windows[v.WindowCursor], true
}

func (v View) SelectedPane() (tmux.Pane, bool) {
	if v.PaneCursor < 0 || v.PaneCursor >= len(v.Panes) {
		return tmux.Pane{}, false
	}
	return v.Panes[v.PaneCursor], true
}

func (s *Selection) SelectedSession() (tmux.Session, bool) {
	if s.sessionSel < 0 || s.sessionSel >= len(s.sessions) {
		return tmux.Session{}, false
	}
	return s.sessions[s.sessionSel], true
}

func (s *Selection) SelectedWindow() (tmux.Window, bool) {
	if s.windowSel < 0 || s.windowSel >= len(s.windows) {
		return tmux.Window{}, false
	}
	return s.windows[s.windowSel], true
}

func (s *Selection) SelectedPane() (tmux.Pane, bool) {
	if s.paneSel < 0 || s.paneSel >= len(s.panes) {
		return tmux.Pane{}, false
	}
	return s.panes[s.paneSel], true
}

func (s *Selection) Sessions() []tmux.Session { return cloneSessions(s.sessions) }
func (s *Selection) Windows() []tmux.Window   { return cloneWindows(s.windows) }
func (s *Selection) Panes() []tmux.Pane       { return clonePanes(s.panes) }

// SessionCursor returns the selected position, or -1.
func (s *Selection) SessionCursor() int { return s.sessionSel }
func (s *Selection) WindowCursor() int  { return s.windowSel }
func (s *Selection) PaneCursor() int    { return s.paneSel }

// Capture returns the selected pane's text, or "" when none is selected.
func (s *Selection) Capture() string { return s.capture }

// LastRefresh is when RefreshAll last completed. Zero before the first.
func (s *Selection) LastRefresh() time.Time { return s.lastRefresh }

func (s *Selection) cursor(panel Panel) int {
	switch panel {
	case PanelSessions:
		return s.sessionSel
	case PanelWindows:
		return s.windowSel
	case PanelPanes:
		return s.paneSel
	}
	return none
}

func cloneSessions(entries []tmux.Session) []tmux.Session {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]tmux.Session, len(entries))
	copy(dup, entries)
	return dup
}

func cloneWindows(entries []tmux.Window) []tmux.Window {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]tmux.Window, len(entries))
	copy(dup, entries)
	return dup
}

func clonePanes(entries []tmux.Pane) []tmux.Pane {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]tmux.Pane, len(entries))
	copy(dup, entries)
	return dup
}
