package ui

import "github.com/atomicstack/tmux-dashboard/internal/logging/events"

// Mode is the Action Engine's input state.
type Mode int

const (
	ModeNormal Mode = iota
	ModeTextInput
	ModeConfirm
	ModeHelp
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeTextInput:
		return "text-input"
	case ModeConfirm:
		return "confirm"
	case ModeHelp:
		return "help"
	}
	return "unknown"
}

// modeTransitions lists every permitted mode change. Every non-normal mode
// is entered from and returns to normal.
var modeTransitions = map[Mode][]Mode{
	ModeNormal:    {ModeTextInput, ModeConfirm, ModeHelp},
	ModeTextInput: {ModeNormal},
	ModeConfirm:   {ModeNormal},
	ModeHelp:      {ModeNormal},
}

func canTransition(from, to Mode) bool {
	for _, next := range modeTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// setMode moves to the requested mode if the transition table allows it.
func (m *Model) setMode(to Mode) bool {
	if !canTransition(m.mode, to) {
		return false
	}
	events.Mode.Enter(m.mode.String(), to.String())
	m.mode = to
	return true
}
