package state

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/atomicstack/tmux-dashboard/internal/logging"
	"github.com/atomicstack/tmux-dashboard/internal/tmux"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "state-test-*")
	if err != nil {
		panic(err)
	}
	logging.Configure(filepath.Join(dir, "state.log"))
	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

type windowKey struct {
	session string
	index   int
}

// fakeSource is an in-memory tmux server. Tests mutate its maps between
// refreshes to simulate other clients.
type fakeSource struct {
	sessions []tmux.Session
	windows  map[string][]tmux.Window
	panes    map[windowKey][]tmux.Pane
	captures map[string]string

	sessionsErr error
	windowsErr  error
	panesErr    error
	captureErr  error

	windowQueries  []string
	paneQueries    []windowKey
	captureQueries []string
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		windows:  map[string][]tmux.Window{},
		panes:    map[windowKey][]tmux.Pane{},
		captures: map[string]string{},
	}
}

func (f *fakeSource) ListSessions() ([]tmux.Session, error) {
	if f.sessionsErr != nil {
		return nil, f.sessionsErr
	}
	return f.sessions, nil
}

func (f *fakeSource) ListWindows(session string) ([]tmux.Window, error) {
	f.windowQueries = append(f.windowQueries, session)
	if f.windowsErr != nil {
		return nil, f.windowsErr
	}
	return f.windows[session], nil
}

func (f *fakeSource) ListPanes(session string, window int) ([]tmux.Pane, error) {
	f.paneQueries = append(f.paneQueries, windowKey{session, window})
	if f.panesErr != nil {
		return nil, f.panesErr
	}
	return f.panes[windowKey{session, window}], nil
}

func (f *fakeSource) CapturePane(id string) (string, error) {
	f.captureQueries = append(f.captureQueries, id)
	if f.captureErr != nil {
		return "", f.captureErr
	}
	return f.captures[id], nil
}

// addSession registers a session with nWindows windows of one pane each.
// Pane ids are derived from the session name so they stay globally unique.
func (f *fakeSource) addSession(name string, nWindows int) {
	f.sessions = append(f.sessions, tmux.Session{Name: name, ID: "$" + name, Windows: nWindows})
	for i := 0; i < nWindows; i++ {
		f.windows[name] = append(f.windows[name], tmux.Window{Name: fmt.Sprintf("w%d", i), Index: i, Panes: 1})
		id := fmt.Sprintf("%%%s-%d-0", name, i)
		f.panes[windowKey{name, i}] = []tmux.Pane{{ID: id, Index: 0, Width: 80, Height: 24, Command: "zsh"}}
		f.captures[id] = "capture of " + id
	}
}

func (f *fakeSource) addPane(session string, window int, id string) {
	key := windowKey{session, window}
	f.panes[key] = append(f.panes[key], tmux.Pane{ID: id, Index: len(f.panes[key])})
	f.captures[id] = "capture of " + id
}

func TestNewSelectionIsEmpty(t *testing.T) {
	sel := NewSelection(newFakeSource())

	assert.Equal(t, -1, sel.SessionCursor())
	assert.Equal(t, -1, sel.WindowCursor())
	assert.Equal(t, -1, sel.PaneCursor())
	assert.Empty(t, sel.Capture())
	assert.True(t, sel.LastRefresh().IsZero())
	_, ok := sel.SelectedSession()
	assert.False(t, ok)
}

func TestRefreshAllSelectsFirstAndCascades(t *testing.T) {
	src := newFakeSource()
	src.addSession("alpha", 2)
	src.addSession("beta", 1)
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	sel := NewSelection(src, WithClock(func() time.Time { return at }))

	sel.RefreshAll()

	sess, ok := sel.SelectedSession()
	require.True(t, ok)
	assert.Equal(t, "alpha", sess.Name)
	win, ok := sel.SelectedWindow()
	require.True(t, ok)
	assert.Equal(t, 0, win.Index)
	pane, ok := sel.SelectedPane()
	require.True(t, ok)
	assert.Equal(t, "%alpha-0-0", pane.ID)
	assert.Equal(t, "capture of %alpha-0-0", sel.Capture())
	assert.Equal(t, at, sel.LastRefresh())
	assert.Len(t, sel.Windows(), 2)
}

func TestSessionIdentitySurvivesReorder(t *testing.T) {
	src := newFakeSource()
	src.addSession("alpha", 1)
	src.addSession("beta", 1)
	src.addSession("gamma", 1)
	sel := NewSelection(src)
	sel.RefreshAll()
	require.True(t, sel.MoveSelection(PanelSessions, 1))

	// beta moves to the end; a new session appears in front.
	src.sessions = []tmux.Session{{Name: "aardvark"}, src.sessions[0], src.sessions[2], src.sessions[1]}
	src.addSession("zeta", 1)
	sel.RefreshAll()

	sess, ok := sel.SelectedSession()
	require.True(t, ok)
	assert.Equal(t, "beta", sess.Name)
	assert.Equal(t, 3, sel.SessionCursor())
}

func TestSessionFallsBackToFirstWhenGone(t *testing.T) {
	src := newFakeSource()
	src.addSession("alpha", 1)
	src.addSession("beta", 1)
	sel := NewSelection(src)
	sel.RefreshAll()
	sel.MoveSelection(PanelSessions, 1)

	src.sessions = src.sessions[:1]
	sel.RefreshAll()

	sess, ok := sel.SelectedSession()
	require.True(t, ok)
	assert.Equal(t, "alpha", sess.Name)
}

func TestEmptyListsClearSelection(t *testing.T) {
	src := newFakeSource()
	src.addSession("alpha", 1)
	sel := NewSelection(src)
	sel.RefreshAll()

	src.sessions = nil
	sel.RefreshAll()

	assert.Equal(t, -1, sel.SessionCursor())
	assert.Equal(t, -1, sel.WindowCursor())
	assert.Equal(t, -1, sel.PaneCursor())
	assert.Nil(t, sel.Windows())
	assert.Nil(t, sel.Panes())
	assert.Empty(t, sel.Capture())
}

func TestWindowIdentityByIndex(t *testing.T) {
	src := newFakeSource()
	src.addSession("alpha", 3)
	sel := NewSelection(src)
	sel.RefreshAll()
	sel.MoveSelection(PanelWindows, 1)
	sel.MoveSelection(PanelWindows, 1)

	win, _ := sel.SelectedWindow()
	require.Equal(t, 2, win.Index)

	// Window 1 is killed: index 2 now sits at position 1.
	src.windows["alpha"] = []tmux.Window{src.windows["alpha"][0], src.windows["alpha"][2]}
	sel.RefreshAll()

	win, ok := sel.SelectedWindow()
	require.True(t, ok)
	assert.Equal(t, 2, win.Index)
	assert.Equal(t, 1, sel.WindowCursor())

	// Window 2 is killed too: fall back to the first.
	src.windows["alpha"] = src.windows["alpha"][:1]
	sel.RefreshAll()
	win, _ = sel.SelectedWindow()
	assert.Equal(t, 0, win.Index)
}

func TestPaneIdentityByID(t *testing.T) {
	src := newFakeSource()
	src.addSession("alpha", 1)
	src.addPane("alpha", 0, "%b")
	src.addPane("alpha", 0, "%c")
	sel := NewSelection(src)
	sel.RefreshAll()
	sel.MoveSelection(PanelPanes, 1)
	sel.MoveSelection(PanelPanes, 1)

	pane, _ := sel.SelectedPane()
	require.Equal(t, "%c", pane.ID)

	key := windowKey{"alpha", 0}
	src.panes[key] = []tmux.Pane{src.panes[key][2], src.panes[key][0]}
	sel.RefreshAll()

	pane, ok := sel.SelectedPane()
	require.True(t, ok)
	assert.Equal(t, "%c", pane.ID)
	assert.Equal(t, 0, sel.PaneCursor())
	assert.Equal(t, "capture of %c", sel.Capture())
}

func TestMoveSessionCascadesToNewScope(t *testing.T) {
	src := newFakeSource()
	src.addSession("alpha", 2)
	src.addSession("beta", 3)
	sel := NewSelection(src)
	sel.RefreshAll()
	sel.MoveSelection(PanelWindows, 1)

	src.windowQueries = nil
	src.paneQueries = nil
	src.captureQueries = nil
	require.True(t, sel.MoveSelection(PanelSessions, 1))

	assert.Equal(t, []string{"beta"}, src.windowQueries)
	assert.Equal(t, []windowKey{{"beta", 0}}, src.paneQueries)
	assert.Equal(t, []string{"%beta-0-0"}, src.captureQueries)
	assert.Len(t, sel.Windows(), 3)
	win, _ := sel.SelectedWindow()
	assert.Equal(t, 0, win.Index, "window selection is invalidated by a session change")
	assert.Equal(t, "capture of %beta-0-0", sel.Capture())
}

func TestMoveWindowCascadesPanesOnly(t *testing.T) {
	src := newFakeSource()
	src.addSession("alpha", 2)
	sel := NewSelection(src)
	sel.RefreshAll()

	src.windowQueries = nil
	src.paneQueries = nil
	require.True(t, sel.MoveSelection(PanelWindows, 1))

	assert.Empty(t, src.windowQueries)
	assert.Equal(t, []windowKey{{"alpha", 1}}, src.paneQueries)
	assert.Equal(t, "capture of %alpha-1-0", sel.Capture())
}

func TestMovePaneRefreshesCaptureOnly(t *testing.T) {
	src := newFakeSource()
	src.addSession("alpha", 1)
	src.addPane("alpha", 0, "%second")
	sel := NewSelection(src)
	sel.RefreshAll()

	src.paneQueries = nil
	src.captureQueries = nil
	require.True(t, sel.MoveSelection(PanelPanes, 1))

	assert.Empty(t, src.paneQueries)
	assert.Equal(t, []string{"%second"}, src.captureQueries)
	assert.Equal(t, "capture of %second", sel.Capture())
}

func TestMoveSelectionClampsAndIgnoresPreview(t *testing.T) {
	src := newFakeSource()
	src.addSession("alpha", 2)
	sel := NewSelection(src)
	sel.RefreshAll()

	assert.False(t, sel.MoveSelection(PanelSessions, 1), "single session cannot move")
	assert.False(t, sel.MoveSelection(PanelWindows, -1), "already at top")
	assert.True(t, sel.MoveSelection(PanelWindows, 5), "delta is clamped to its sign")
	assert.Equal(t, 1, sel.WindowCursor())
	assert.False(t, sel.MoveSelection(PanelWindows, 1), "already at bottom")
	assert.False(t, sel.MoveSelection(PanelWindows, 0))
	assert.False(t, sel.MoveSelection(PanelPreview, 1))
}

func TestMoveSelectionOnEmptyListIsNoop(t *testing.T) {
	sel := NewSelection(newFakeSource())
	sel.RefreshAll()
	for _, p := range []Panel{PanelSessions, PanelWindows, PanelPanes} {
		assert.False(t, sel.MoveSelection(p, 1))
		assert.False(t, sel.MoveSelection(p, -1))
	}
}

func TestQueryErrorsDegradeToEmpty(t *testing.T) {
	src := newFakeSource()
	src.addSession("alpha", 1)
	src.windowsErr = errors.New("permission denied")
	sel := NewSelection(src)

	sel.RefreshAll()

	_, ok := sel.SelectedSession()
	assert.True(t, ok)
	assert.Nil(t, sel.Windows())
	assert.Equal(t, -1, sel.PaneCursor(), "panes clear when the window scope is incomplete")
	assert.Empty(t, sel.Capture())
	assert.False(t, sel.LastRefresh().IsZero(), "refresh completes even when a step fails")
}

func TestNoEntitiesIsSilentAndEmpty(t *testing.T) {
	src := newFakeSource()
	src.sessionsErr = fmt.Errorf("list-sessions: %w: no server running", tmux.ErrNoEntities)
	sel := NewSelection(src)

	sel.RefreshAll()
	assert.Nil(t, sel.Sessions())
	assert.Equal(t, -1, sel.SessionCursor())
}

func TestCaptureErrorClearsBuffer(t *testing.T) {
	src := newFakeSource()
	src.addSession("alpha", 1)
	sel := NewSelection(src)
	sel.RefreshAll()
	require.NotEmpty(t, sel.Capture())

	src.captureErr = errors.New("capture failed")
	sel.RefreshPreview()
	assert.Empty(t, sel.Capture())
}

func TestRefreshWindowsPrefersIndex(t *testing.T) {
	src := newFakeSource()
	src.addSession("alpha", 3)
	sel := NewSelection(src)
	sel.RefreshAll()

	two := 2
	sel.RefreshWindows(&two)
	win, _ := sel.SelectedWindow()
	assert.Equal(t, 2, win.Index)
	assert.Equal(t, "capture of %alpha-2-0", sel.Capture())

	missing := 9
	sel.RefreshWindows(&missing)
	win, _ = sel.SelectedWindow()
	assert.Equal(t, 0, win.Index)
}

func TestRefreshPanesPrefersID(t *testing.T) {
	src := newFakeSource()
	src.addSession("alpha", 1)
	src.addPane("alpha", 0, "%x")
	sel := NewSelection(src)
	sel.RefreshAll()

	sel.RefreshPanes("%x")
	pane, _ := sel.SelectedPane()
	assert.Equal(t, "%x", pane.ID)

	sel.RefreshPanes("%gone")
	assert.Equal(t, 0, sel.PaneCursor())
}

func TestAccessorsReturnCopies(t *testing.T) {
	src := newFakeSource()
	src.addSession("alpha", 1)
	sel := NewSelection(src)
	sel.RefreshAll()

	sessions := sel.Sessions()
	sessions[0].Name = "mutated"
	view := sel.Snapshot()
	view.Windows[0].Name = "mutated"
	src.sessions[0].Name = "mutated-at-source"

	sess, _ := sel.SelectedSession()
	assert.Equal(t, "alpha", sess.Name)
	win, _ := sel.SelectedWindow()
	assert.Equal(t, "w0", win.Name)
}

func TestSnapshotMatchesAccessors(t *testing.T) {
	src := newFakeSource()
	src.addSession("alpha", 2)
	sel := NewSelection(src)
	sel.RefreshAll()
	sel.MoveSelection(PanelWindows, 1)

	view := sel.Snapshot()
	assert.Equal(t, sel.SessionCursor(), view.SessionCursor)
	assert.Equal(t, sel.WindowCursor(), view.WindowCursor)
	assert.Equal(t, sel.PaneCursor(), view.PaneCursor)
	assert.Equal(t, sel.Capture(), view.Capture)
	assert.Equal(t, sel.Sessions(), view.Sessions)
	assert.Equal(t, sel.LastRefresh(), view.LastRefresh)
}

func TestSnapshotSelectedItems(t *testing.T) {
	src := newFakeSource()
	src.addSession("alpha", 2)
	sel := NewSelection(src)
	sel.RefreshAll()
	sel.MoveSelection(PanelWindows, 1)

	view := sel.Snapshot()
	sess, ok := view.SelectedSession()
	require.True(t, ok)
	assert.Equal(t, "alpha", sess.Name)
	win, ok := view.SelectedWindow()
	require.True(t, ok)
	want, _ := sel.SelectedWindow()
	assert.Equal(t, want, win)
	pane, ok := view.SelectedPane()
	require.True(t, ok)
	assert.Equal(t, "%alpha-1-0", pane.ID)

	var empty View
	_, ok = empty.SelectedSession()
	assert.False(t, ok)
	_, ok = View{Windows: view.Windows, WindowCursor: -1}.SelectedWindow()
	assert.False(t, ok)
}

func TestPanelRing(t *testing.T) {
	assert.Equal(t, PanelWindows, PanelSessions.Next())
	assert.Equal(t, PanelSessions, PanelPreview.Next())
	assert.Equal(t, PanelPreview, PanelSessions.Prev())
	assert.Equal(t, "[3] Panes", PanelPanes.Title())
	p, ok := PanelFromDigit('4')
	assert.True(t, ok)
	assert.Equal(t, PanelPreview, p)
	_, ok = PanelFromDigit('5')
	assert.False(t, ok)
}

// checkInvariants asserts every cursor is either -1 on an empty list or a
// valid index, and that dependent lists are empty without a parent.
func checkInvariants(t interface{ Fatalf(string, ...any) }, sel *Selection) {
	check := func(name string, cur, n int) {
		if n == 0 && cur != -1 {
			t.Fatalf("%s: cursor %d on empty list", name, cur)
		}
		if n > 0 && (cur < 0 || cur >= n) {
			t.Fatalf("%s: cursor %d out of range [0,%d)", name, cur, n)
		}
	}
	check("sessions", sel.SessionCursor(), len(sel.Sessions()))
	check("windows", sel.WindowCursor(), len(sel.Windows()))
	check("panes", sel.PaneCursor(), len(sel.Panes()))
	if sel.SessionCursor() == -1 && len(sel.Windows()) > 0 {
		t.Fatalf("windows listed without a session")
	}
	if sel.WindowCursor() == -1 && len(sel.Panes()) > 0 {
		t.Fatalf("panes listed without a window")
	}
	if sel.PaneCursor() == -1 && sel.Capture() != "" {
		t.Fatalf("capture present without a pane")
	}
}

func drawServer(rt *rapid.T) *fakeSource {
	src := newFakeSource()
	n := rapid.IntRange(0, 4).Draw(rt, "sessions")
	for i := 0; i < n; i++ {
		src.addSession(fmt.Sprintf("s%d", i), rapid.IntRange(0, 3).Draw(rt, fmt.Sprintf("windows%d", i)))
	}
	return src
}

func TestSelectionBoundsProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		src := drawServer(rt)
		sel := NewSelection(src)
		sel.RefreshAll()
		checkInvariants(rt, sel)

		steps := rapid.IntRange(1, 30).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			switch rapid.IntRange(0, 3).Draw(rt, "op") {
			case 0:
				panel := Panel(rapid.IntRange(0, 3).Draw(rt, "panel"))
				sel.MoveSelection(panel, rapid.SampledFrom([]int{-1, 1}).Draw(rt, "delta"))
			case 1:
				// Another client kills a random session.
				if len(src.sessions) > 0 {
					k := rapid.IntRange(0, len(src.sessions)-1).Draw(rt, "kill")
					src.sessions = append(src.sessions[:k:k], src.sessions[k+1:]...)
				}
				sel.RefreshAll()
			case 2:
				src.addSession(fmt.Sprintf("n%d", i), rapid.IntRange(0, 2).Draw(rt, "newWindows"))
				sel.RefreshAll()
			case 3:
				sel.RefreshAll()
			}
			checkInvariants(rt, sel)
		}
	})
}

func TestRefreshIdempotenceProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		src := drawServer(rt)
		sel := NewSelection(src)
		sel.RefreshAll()
		moves := rapid.IntRange(0, 10).Draw(rt, "moves")
		for i := 0; i < moves; i++ {
			sel.MoveSelection(Panel(rapid.IntRange(0, 2).Draw(rt, "panel")), 1)
		}

		sel.RefreshAll()
		first := identity(sel)
		sel.RefreshAll()
		if second := identity(sel); first != second {
			rt.Fatalf("refresh not idempotent: %v then %v", first, second)
		}
	})
}

func TestSessionIdentityProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		src := newFakeSource()
		n := rapid.IntRange(1, 6).Draw(rt, "n")
		for i := 0; i < n; i++ {
			src.addSession(fmt.Sprintf("s%d", i), 1)
		}
		sel := NewSelection(src)
		sel.RefreshAll()
		target := rapid.IntRange(0, n-1).Draw(rt, "target")
		for i := 0; i < target; i++ {
			sel.MoveSelection(PanelSessions, 1)
		}
		chosen, _ := sel.SelectedSession()

		perm := rapid.Permutation(src.sessions).Draw(rt, "perm")
		keep := rapid.Bool().Draw(rt, "keep")
		if !keep {
			filtered := perm[:0:0]
			for _, s := range perm {
				if s.Name != chosen.Name {
					filtered = append(filtered, s)
				}
			}
			perm = filtered
		}
		src.sessions = perm
		sel.RefreshAll()

		got, ok := sel.SelectedSession()
		switch {
		case len(perm) == 0:
			if ok {
				rt.Fatalf("expected no selection on empty list")
			}
		case keep:
			if got.Name != chosen.Name {
				rt.Fatalf("expected %q to stay selected, got %q", chosen.Name, got.Name)
			}
		default:
			if sel.SessionCursor() != 0 {
				rt.Fatalf("expected fallback to index 0, got %d", sel.SessionCursor())
			}
		}
	})
}

type selectedIDs struct {
	session string
	window  int
	pane    string
}

func identity(sel *Selection) selectedIDs {
	ids := selectedIDs{window: -1}
	if s, ok := sel.SelectedSession(); ok {
		ids.session = s.Name
	}
	if w, ok := sel.SelectedWindow(); ok {
		ids.window = w.Index
	}
	if p, ok := sel.SelectedPane(); ok {
		ids.pane = p.ID
	}
	return ids
}
