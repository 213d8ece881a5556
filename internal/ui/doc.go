// Package ui contains the Bubble Tea program behind the tmux dashboard.
// Model focuses on message orchestration while dedicated files own input,
// actions, and rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are
//     routed through a typed handler registry so each tea.Msg is handled by
//     a focused function (key presses, resizes, ticks).
//   - Key presses are dispatched by input mode (input.go). Normal mode moves
//     focus and selection or starts an action; TextInput and Confirm modes
//     collect a name or a yes/no answer for the pending action; Help mode
//     swallows everything but its close keys.
//   - Mutations (commands.go) run synchronously through the
//     internal/ui/command bus. Success sets an info status and refreshes the
//     selection model; failure shows the error and leaves the lists as they
//     were.
//
// State ownership:
//   - The session, window and pane lists, their cursors and the capture
//     buffer live in internal/state.Selection.
//   - Per-panel scroll offsets live in internal/ui/state.Viewport.
//   - Input mode, focus, the prompt buffer, the pending action and the
//     transient status message live on Model.
//
// Backend interactions:
//   - An internal/backend.Ticker emits timestamps; Update waits for them
//     with waitForTick, expires the status and forces a full refresh once
//     the refresh interval has elapsed.
//   - Switching to a selection outside tmux records a hand-off target and
//     quits so the caller can attach a client in the freed terminal.
//
// Rendering (view.go, panels.go, preview.go, prompt.go) is a pure function
// of that state: four boxed panels, a one-row status bar, and an overlay
// for the active mode.
package ui
