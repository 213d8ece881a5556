package ui

import (
	"errors"
	"os"
	"reflect"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tmux-dashboard/internal/logging"
)

func TestTextInputCancelRestoresNormalMode(t *testing.T) {
	exec := newFakeExecutor().withSession("main", "editor", "vim")
	h, _ := newTestModel(t, exec)

	h.SendKeys("n")
	m := h.Model()
	if m.Mode() != ModeTextInput {
		t.Fatalf("expected text input mode, got %s", m.Mode())
	}
	if prompt, _ := m.Input(); prompt != "New session name: " {
		t.Fatalf("unexpected prompt %q", prompt)
	}
	h.SendKeys("dev")
	if _, buf := m.Input(); buf != "dev" {
		t.Fatalf("expected buffer dev, got %q", buf)
	}

	h.Send(keyType(tea.KeyEsc))
	if m.Mode() != ModeNormal {
		t.Fatalf("expected normal mode after esc, got %s", m.Mode())
	}
	if prompt, buf := m.Input(); prompt != "" || buf != "" {
		t.Fatalf("expected cleared prompt and buffer, got %q %q", prompt, buf)
	}
	if _, ok := m.Pending(); ok {
		t.Fatalf("expected no pending action after cancel")
	}
	if len(exec.calls) != 0 {
		t.Fatalf("expected no tmux calls, got %v", exec.calls)
	}
}

func TestTextInputConfirmCreatesSession(t *testing.T) {
	exec := newFakeExecutor().withSession("main", "editor", "vim")
	h, _ := newTestModel(t, exec)

	h.SendKeys("n")
	h.SendKeys("dev")
	h.Send(keyType(tea.KeyEnter))

	m := h.Model()
	if !reflect.DeepEqual(exec.calls, []string{"NewSession dev"}) {
		t.Fatalf("expected one NewSession call, got %v", exec.calls)
	}
	if m.Mode() != ModeNormal {
		t.Fatalf("expected normal mode, got %s", m.Mode())
	}
	status, ok := m.Status()
	if !ok || status.Error || status.Text != "Session 'dev' created" {
		t.Fatalf("unexpected status %+v (present=%v)", status, ok)
	}
	if got := len(m.Selection().Sessions()); got != 2 {
		t.Fatalf("expected refresh to list 2 sessions, got %d", got)
	}
}

func TestTextInputEmptyNameAborts(t *testing.T) {
	exec := newFakeExecutor().withSession("main", "editor", "vim")
	h, _ := newTestModel(t, exec)

	h.SendKeys("n")
	h.Send(keyType(tea.KeyEnter))

	if len(exec.calls) != 0 {
		t.Fatalf("expected no calls for empty name, got %v", exec.calls)
	}
	if _, ok := h.Model().Status(); ok {
		t.Fatalf("expected no status for aborted input")
	}
	if h.Model().Mode() != ModeNormal {
		t.Fatalf("expected normal mode")
	}
}

func TestTextInputEditing(t *testing.T) {
	exec := newFakeExecutor().withSession("main", "editor", "vim")
	h, _ := newTestModel(t, exec)

	h.SendKeys("r")
	if _, buf := h.Model().Input(); buf != "main" {
		t.Fatalf("expected rename prefilled with main, got %q", buf)
	}
	for i := 0; i < 4; i++ {
		h.Send(keyType(tea.KeyBackspace))
	}
	h.Send(keyType(tea.KeyBackspace))
	h.SendKeys("wo")
	h.Send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true})
	h.SendKeys("rk")
	h.Send(keyType(tea.KeyEnter))

	want := []string{"RenameSession main wo rk"}
	if !reflect.DeepEqual(exec.calls, want) {
		t.Fatalf("expected %v, got %v", want, exec.calls)
	}
}

func TestCreateWindowAllowsEmptyName(t *testing.T) {
	exec := newFakeExecutor().withSession("main", "editor", "vim")
	h, _ := newTestModel(t, exec)

	h.SendKeys("2n")
	if prompt, _ := h.Model().Input(); prompt != "New window name: " {
		t.Fatalf("unexpected prompt %q", prompt)
	}
	h.Send(keyType(tea.KeyEnter))

	if !reflect.DeepEqual(exec.calls, []string{"NewWindow main []"}) {
		t.Fatalf("expected NewWindow with empty name, got %v", exec.calls)
	}
}

func TestNewWindowNeedsSession(t *testing.T) {
	exec := newFakeExecutor()
	h, _ := newTestModel(t, exec)

	h.SendKeys("2n")
	if h.Model().Mode() != ModeNormal {
		t.Fatalf("expected no prompt without a session, got %s", h.Model().Mode())
	}
}

func TestConfirmDeclineAndAccept(t *testing.T) {
	exec := newFakeExecutor().withSession("main", "editor", "vim").withSession("work", "logs", "tail")
	h, _ := newTestModel(t, exec)
	m := h.Model()

	h.SendKeys("d")
	if m.Mode() != ModeConfirm {
		t.Fatalf("expected confirm mode, got %s", m.Mode())
	}
	if got := m.ConfirmMessage(); got != "Kill session 'main'? (y/n)" {
		t.Fatalf("unexpected confirm message %q", got)
	}
	h.SendKeys("n")
	if m.Mode() != ModeNormal || m.ConfirmMessage() != "" {
		t.Fatalf("expected decline to clear confirmation")
	}
	if exec.called("KillSession") != 0 {
		t.Fatalf("expected no kill after decline")
	}

	h.SendKeys("d")
	h.Send(keyType(tea.KeyEnter))
	if !reflect.DeepEqual(exec.calls, []string{"KillSession main"}) {
		t.Fatalf("expected KillSession main, got %v", exec.calls)
	}
	if status, _ := m.Status(); status.Text != "Session 'main' killed" {
		t.Fatalf("unexpected status %q", status.Text)
	}
	sess, ok := m.Selection().SelectedSession()
	if !ok || sess.Name != "work" {
		t.Fatalf("expected selection to fall back to work, got %+v", sess)
	}
}

func TestConfirmIgnoresOtherKeys(t *testing.T) {
	exec := newFakeExecutor().withSession("main", "editor", "vim")
	h, _ := newTestModel(t, exec)

	h.SendKeys("dxq")
	if h.Model().Mode() != ModeConfirm {
		t.Fatalf("expected confirm mode to persist, got %s", h.Model().Mode())
	}
	if h.Quit() {
		t.Fatalf("q must not quit while confirming")
	}
}

func TestKillWindowMessage(t *testing.T) {
	exec := newFakeExecutor().withSession("main", "editor", "vim")
	h, _ := newTestModel(t, exec)

	h.SendKeys("2d")
	if got := h.Model().ConfirmMessage(); got != "Kill window 'main:editor'? (y/n)" {
		t.Fatalf("unexpected confirm message %q", got)
	}
	h.SendKeys("y")
	if !reflect.DeepEqual(exec.calls, []string{"KillWindow main 0"}) {
		t.Fatalf("expected KillWindow main 0, got %v", exec.calls)
	}
	if status, _ := h.Model().Status(); status.Text != "Window main:0 killed" {
		t.Fatalf("unexpected status %q", status.Text)
	}
}

func TestMutationFailureShowsErrorWithoutRefresh(t *testing.T) {
	exec := newFakeExecutor().withSession("main", "editor", "vim")
	exec.fail["KillSession"] = errors.New("can't find session: main")
	h, _ := newTestModel(t, exec)

	h.SendKeys("d")
	before := exec.sessionQueries
	h.SendKeys("y")

	status, ok := h.Model().Status()
	if !ok || !status.Error || status.Text != "can't find session: main" {
		t.Fatalf("expected verbatim error status, got %+v", status)
	}
	if exec.sessionQueries != before {
		t.Fatalf("expected no refresh after failure, queries went %d -> %d", before, exec.sessionQueries)
	}
}

func TestStatusExpiresAfterDwell(t *testing.T) {
	exec := newFakeExecutor().withSession("main", "editor", "vim")
	h, clock := newTestModel(t, exec)

	h.SendKeys("R")
	if status, ok := h.Model().Status(); !ok || status.Text != "Refreshed" {
		t.Fatalf("expected Refreshed status, got %+v", status)
	}

	clock.advance(4 * time.Second)
	h.Send(tickMsg{at: clock.now()})
	if _, ok := h.Model().Status(); !ok {
		t.Fatalf("expected status to survive 4s")
	}

	clock.advance(2 * time.Second)
	h.Send(tickMsg{at: clock.now()})
	if _, ok := h.Model().Status(); ok {
		t.Fatalf("expected status to expire after 6s")
	}
}

func TestTickRefreshesOnlyWhenDue(t *testing.T) {
	exec := newFakeExecutor().withSession("main", "editor", "vim")
	h, clock := newTestModel(t, exec)
	start := exec.sessionQueries

	clock.advance(time.Second)
	h.Send(tickMsg{at: clock.now()})
	if exec.sessionQueries != start {
		t.Fatalf("expected no refresh before the interval")
	}

	clock.advance(time.Second)
	h.Send(tickMsg{at: clock.now()})
	if exec.sessionQueries != start+1 {
		t.Fatalf("expected one refresh at the interval, got %d", exec.sessionQueries-start)
	}
}

func TestTickRefreshLogsAtDebugLevel(t *testing.T) {
	logging.SetDebug(true)
	t.Cleanup(func() { logging.SetDebug(false) })
	exec := newFakeExecutor().withSession("main", "editor", "vim")
	h, clock := newTestModel(t, exec)

	clock.advance(2 * time.Second)
	h.Send(tickMsg{at: clock.now()})

	data, err := os.ReadFile(logging.Path())
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "tick refresh") {
		t.Fatalf("expected a debug line for the due refresh\n%s", data)
	}
}

func TestSwitchOutsideTmuxHandsOff(t *testing.T) {
	exec := newFakeExecutor().withSession("main", "editor", "vim")
	h, _ := newTestModel(t, exec)

	h.SendKeys("2")
	h.Send(keyType(tea.KeyEnter))

	target, ok := h.Model().Handoff()
	if !ok || target != "main:0" {
		t.Fatalf("expected hand-off to main:0, got %q", target)
	}
	if !h.Quit() {
		t.Fatalf("expected program to quit for hand-off")
	}
	if len(exec.calls) != 0 {
		t.Fatalf("expected no switch calls outside tmux, got %v", exec.calls)
	}
}

func TestSwitchInsideTmuxSelectsPane(t *testing.T) {
	exec := newFakeExecutor().withSession("main", "editor", "vim")
	exec.inside = true
	h, _ := newTestModel(t, exec)

	h.SendKeys("3")
	h.Send(keyType(tea.KeyEnter))

	want := []string{"SelectWindow main 0", "SelectPane %main", "SwitchClient main:0"}
	if !reflect.DeepEqual(exec.calls, want) {
		t.Fatalf("expected %v, got %v", want, exec.calls)
	}
	if status, _ := h.Model().Status(); status.Text != "Switched to main:0.0" {
		t.Fatalf("unexpected status %q", status.Text)
	}
	if h.Quit() {
		t.Fatalf("switch inside tmux must not quit")
	}
}

func TestPaneActions(t *testing.T) {
	exec := newFakeExecutor().withSession("main", "editor", "vim")
	h, _ := newTestModel(t, exec)

	h.SendKeys("zNw")
	if len(exec.calls) != 0 {
		t.Fatalf("pane keys must not act outside the panes panel, got %v", exec.calls)
	}

	h.SendKeys("3nNzw")
	want := []string{
		"SplitPane main 0 %main vertical",
		"SplitPane main 0 %main horizontal",
		"ToggleZoom %main",
		"BreakPane %main",
	}
	if !reflect.DeepEqual(exec.calls, want) {
		t.Fatalf("expected %v, got %v", want, exec.calls)
	}
	if status, _ := h.Model().Status(); status.Text != "Pane broken to new window" {
		t.Fatalf("unexpected status %q", status.Text)
	}
}

func TestPanelFocusKeys(t *testing.T) {
	exec := newFakeExecutor().withSession("main", "editor", "vim")
	h, _ := newTestModel(t, exec)
	m := h.Model()

	steps := []struct {
		msg  tea.KeyMsg
		want Panel
	}{
		{keyRune('3'), PanelPanes},
		{keyType(tea.KeyTab), PanelPreview},
		{keyType(tea.KeyTab), PanelSessions},
		{keyType(tea.KeyShiftTab), PanelPreview},
		{keyRune('l'), PanelSessions},
		{keyRune('h'), PanelPreview},
		{keyType(tea.KeyLeft), PanelPanes},
		{keyRune('1'), PanelSessions},
	}
	for i, step := range steps {
		h.Send(step.msg)
		if m.Focus() != step.want {
			t.Fatalf("step %d (%s): expected %s, got %s", i, step.msg, step.want, m.Focus())
		}
	}
}

func TestPreviewPanelIgnoresActions(t *testing.T) {
	exec := newFakeExecutor().withSession("main", "editor", "vim")
	h, _ := newTestModel(t, exec)

	h.SendKeys("4ndrj")
	h.Send(keyType(tea.KeyEnter))
	if h.Model().Mode() != ModeNormal {
		t.Fatalf("expected preview to ignore action keys, got %s", h.Model().Mode())
	}
	if len(exec.calls) != 0 || h.Quit() {
		t.Fatalf("expected no calls from preview, got %v", exec.calls)
	}
}

func TestSelectionMovesWithKeys(t *testing.T) {
	exec := newFakeExecutor().withSession("a", "one", "vim").withSession("b", "two", "top")
	h, _ := newTestModel(t, exec)
	m := h.Model()

	h.SendKeys("j")
	if sess, _ := m.Selection().SelectedSession(); sess.Name != "b" {
		t.Fatalf("expected b selected, got %s", sess.Name)
	}
	if win, _ := m.Selection().SelectedWindow(); win.Name != "two" {
		t.Fatalf("expected windows to cascade, got %s", win.Name)
	}
	h.Send(keyType(tea.KeyDown))
	if m.Selection().SessionCursor() != 1 {
		t.Fatalf("expected cursor to clamp at the last row")
	}
	h.SendKeys("k")
	if m.Selection().SessionCursor() != 0 {
		t.Fatalf("expected cursor back at 0")
	}
}

func TestHelpModeSwallowsKeys(t *testing.T) {
	exec := newFakeExecutor().withSession("main", "editor", "vim")
	h, _ := newTestModel(t, exec)
	m := h.Model()

	h.SendKeys("?")
	if m.Mode() != ModeHelp {
		t.Fatalf("expected help mode, got %s", m.Mode())
	}
	h.SendKeys("qjnd2")
	if m.Mode() != ModeHelp || h.Quit() || m.Focus() != PanelSessions {
		t.Fatalf("expected help to swallow keys")
	}
	if len(exec.calls) != 0 {
		t.Fatalf("expected no calls in help, got %v", exec.calls)
	}
	h.Send(keyType(tea.KeyEsc))
	if m.Mode() != ModeNormal {
		t.Fatalf("expected esc to close help")
	}
	h.SendKeys("??")
	if m.Mode() != ModeNormal {
		t.Fatalf("expected ? to toggle help closed")
	}
}

func TestCtrlCQuitsFromAnyMode(t *testing.T) {
	prefixes := map[string]string{
		"normal":     "",
		"text-input": "n",
		"confirm":    "d",
		"help":       "?",
	}
	for name, prefix := range prefixes {
		t.Run(name, func(t *testing.T) {
			exec := newFakeExecutor().withSession("main", "editor", "vim")
			h, _ := newTestModel(t, exec)
			h.SendKeys(prefix)
			if got := h.Model().Mode().String(); got != name {
				t.Fatalf("expected mode %s, got %s", name, got)
			}
			h.Send(keyType(tea.KeyCtrlC))
			if !h.Quit() {
				t.Fatalf("expected ctrl+c to quit from %s", name)
			}
		})
	}
}

func TestQuitKey(t *testing.T) {
	exec := newFakeExecutor().withSession("main", "editor", "vim")
	h, _ := newTestModel(t, exec)

	h.SendKeys("q")
	if !h.Quit() || !h.Model().Quitting() {
		t.Fatalf("expected q to quit")
	}
	if _, ok := h.Model().Handoff(); ok {
		t.Fatalf("plain quit must not hand off")
	}
}

func TestModeTransitionTable(t *testing.T) {
	modes := []Mode{ModeNormal, ModeTextInput, ModeConfirm, ModeHelp}
	for _, from := range modes {
		for _, to := range modes {
			want := (from == ModeNormal) != (to == ModeNormal)
			if got := canTransition(from, to); got != want {
				t.Fatalf("%s -> %s: expected %v, got %v", from, to, want, got)
			}
		}
	}
}
