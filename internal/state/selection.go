// Package state holds the dashboard's selection model: the cascading
// session, window and pane lists, their cursors, and the capture of the
// selected pane.
package state

import (
	"errors"
	"time"

	"github.com/atomicstack/tmux-dashboard/internal/logging"
	"github.com/atomicstack/tmux-dashboard/internal/logging/events"
	"github.com/atomicstack/tmux-dashboard/internal/tmux"
)

// Source is the query half of the tmux executor.
type Source interface {
	ListSessions() ([]tmux.Session, error)
	ListWindows(session string) ([]tmux.Window, error)
	ListPanes(session string, window int) ([]tmux.Pane, error)
	CapturePane(paneID string) (string, error)
}

const none = -1

// Selection owns the three lists and the capture buffer. Lists are replaced
// wholesale on refresh; a selection is re-found by identity (session name,
// window index, pane id) and falls back to the first entry.
//
// Selection is not safe for concurrent use.
type Selection struct {
	src Source
	now func() time.Time

	sessions []tmux.Session
	windows  []tmux.Window
	panes    []tmux.Pane

	sessionSel int
	windowSel  int
	paneSel    int

	capture     string
	lastRefresh time.Time
}

// Option customises a Selection.
type Option func(*Selection)

// WithClock replaces time.Now for refresh timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Selection) {
		if now != nil {
			s.now = now
		}
	}
}

// NewSelection returns an empty selection backed by src. Call RefreshAll to
// populate it.
func NewSelection(src Source, opts ...Option) *Selection {
	s := &Selection{
		src:        src,
		now:        time.Now,
		sessionSel: none,
		windowSel:  none,
		paneSel:    none,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RefreshAll re-lists everything top-down, keeping each selection by
// identity, and stamps the refresh time. Query failures leave the affected
// list empty.
func (s *Selection) RefreshAll() {
	prevSession := ""
	if sess, ok := s.SelectedSession(); ok {
		prevSession = sess.Name
	}
	var prevWindow *int
	if win, ok := s.SelectedWindow(); ok {
		idx := win.Index
		prevWindow = &idx
	}
	prevPane := ""
	if pane, ok := s.SelectedPane(); ok {
		prevPane = pane.ID
	}

	s.refreshSessions(prevSession)
	s.refreshWindows(prevWindow)
	s.refreshPanes(prevPane)
	s.RefreshPreview()
	s.lastRefresh = s.now()
	events.Refresh.All(len(s.sessions), len(s.windows), len(s.panes))
}

// RefreshWindows re-lists the selected session's windows, preferring the
// window with index *preferred, then cascades into panes and preview.
func (s *Selection) RefreshWindows(preferred *int) {
	prevPane := ""
	if pane, ok := s.SelectedPane(); ok {
		prevPane = pane.ID
	}
	s.refreshWindows(preferred)
	s.refreshPanes(prevPane)
	s.RefreshPreview()
}

// RefreshPanes re-lists the selected window's panes, preferring the pane
// with id preferred, then refreshes the preview.
func (s *Selection) RefreshPanes(preferred string) {
	s.refreshPanes(preferred)
	s.RefreshPreview()
}

// RefreshPreview captures the selected pane, or clears the buffer.
func (s *Selection) RefreshPreview() {
	pane, ok := s.SelectedPane()
	if !ok {
		s.capture = ""
		return
	}
	text, err := s.src.CapturePane(pane.ID)
	if err != nil {
		s.queryFailed("capture", err)
		s.capture = ""
		return
	}
	s.capture = text
}

// MoveSelection steps the cursor of panel by the sign of delta, clamping at
// the ends. It reports whether the selection changed; a change cascades
// into the lists below it.
func (s *Selection) MoveSelection(panel Panel, delta int) bool {
	step := sign(delta)
	if step == 0 {
		return false
	}
	switch panel {
	case PanelSessions:
		next, moved := stepCursor(s.sessionSel, len(s.sessions), step)
		if !moved {
			return false
		}
		s.sessionSel = next
		s.refreshWindows(nil)
		s.refreshPanes("")
		s.RefreshPreview()
	case PanelWindows:
		next, moved := stepCursor(s.windowSel, len(s.windows), step)
		if !moved {
			return false
		}
		s.windowSel = next
		s.refreshPanes("")
		s.RefreshPreview()
	case PanelPanes:
		next, moved := stepCursor(s.paneSel, len(s.panes), step)
		if !moved {
			return false
		}
		s.paneSel = next
		s.RefreshPreview()
	default:
		return false
	}
	events.Selection.Move(panel.String(), s.cursor(panel))
	return true
}

func (s *Selection) refreshSessions(preferred string) {
	sessions, err := s.src.ListSessions()
	if err != nil {
		s.queryFailed("sessions", err)
		sessions = nil
	}
	s.sessions = cloneSessions(sessions)
	s.sessionSel = reselect(len(sessions), func(i int) bool {
		return preferred != "" && sessions[i].Name == preferred
	})
}

func (s *Selection) refreshWindows(preferred *int) {
	sess, ok := s.SelectedSession()
	if !ok {
		s.windows = nil
		s.windowSel = none
		return
	}
	windows, err := s.src.ListWindows(sess.Name)
	if err != nil {
		s.queryFailed("windows", err)
		windows = nil
	}
	s.windows = cloneWindows(windows)
	s.windowSel = reselect(len(windows), func(i int) bool {
		return preferred != nil && windows[i].Index == *preferred
	})
}

func (s *Selection) refreshPanes(preferred string) {
	sess, okSession := s.SelectedSession()
	win, okWindow := s.SelectedWindow()
	if !okSession || !okWindow {
		s.panes = nil
		s.paneSel = none
		return
	}
	panes, err := s.src.ListPanes(sess.Name, win.Index)
	if err != nil {
		s.queryFailed("panes", err)
		panes = nil
	}
	s.panes = clonePanes(panes)
	s.paneSel = reselect(len(panes), func(i int) bool {
		return preferred != "" && panes[i].ID == preferred
	})
}

func (s *Selection) queryFailed(scope string, err error) {
	if errors.Is(err, tmux.ErrNoEntities) {
		return
	}
	logging.Error(err, "scope", scope)
	events.Refresh.QueryFailed(scope, err)
}

// reselect returns the first index matching want, else 0, else none for an
// empty list.
func reselect(n int, want func(int) bool) int {
	if n == 0 {
		return none
	}
	for i := 0; i < n; i++ {
		if want(i) {
			return i
		}
	}
	return 0
}

func stepCursor(cur, n, step int) (int, bool) {
	if n == 0 || cur == none {
		return cur, false
	}
	next := cur + step
	if next < 0 {
		next = 0
	}
	if next > n-1 {
		next = n - 1
	}
	return next, next != cur
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}
