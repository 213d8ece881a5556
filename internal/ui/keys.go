package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	ForceQuit key.Binding
	Quit      key.Binding
	Help      key.Binding
	Refresh   key.Binding
	JumpPanel key.Binding
	NextPanel key.Binding
	PrevPanel key.Binding

	Down  key.Binding
	Up    key.Binding
	Left  key.Binding
	Right key.Binding

	New        key.Binding
	SplitHoriz key.Binding
	Rename     key.Binding
	Delete     key.Binding
	Switch     key.Binding
	Zoom       key.Binding
	Break      key.Binding

	Accept  key.Binding
	Decline key.Binding

	Confirm   key.Binding
	Cancel    key.Binding
	Backspace key.Binding

	CloseHelp key.Binding
}

var keys = keyMap{
	ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "Quit")),
	Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "Quit")),
	Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "Toggle help")),
	Refresh:   key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "Force refresh")),
	JumpPanel: key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "Switch panel")),
	NextPanel: key.NewBinding(key.WithKeys("tab"), key.WithHelp("Tab/S-Tab", "Next/prev panel")),
	PrevPanel: key.NewBinding(key.WithKeys("shift+tab")),

	Down:  key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/k ↑/↓", "Navigate")),
	Up:    key.NewBinding(key.WithKeys("k", "up")),
	Left:  key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/l ←/→", "Switch panel")),
	Right: key.NewBinding(key.WithKeys("l", "right")),

	New:        key.NewBinding(key.WithKeys("n")),
	SplitHoriz: key.NewBinding(key.WithKeys("N"), key.WithHelp("N", "Split horizontal")),
	Rename:     key.NewBinding(key.WithKeys("r")),
	Delete:     key.NewBinding(key.WithKeys("d")),
	Switch:     key.NewBinding(key.WithKeys("enter")),
	Zoom:       key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "Toggle zoom")),
	Break:      key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "Break to window")),

	Accept:  key.NewBinding(key.WithKeys("y", "enter")),
	Decline: key.NewBinding(key.WithKeys("n", "esc")),

	Confirm:   key.NewBinding(key.WithKeys("enter")),
	Cancel:    key.NewBinding(key.WithKeys("esc")),
	Backspace: key.NewBinding(key.WithKeys("backspace")),

	CloseHelp: key.NewBinding(key.WithKeys("?", "esc")),
}

// helpEntry is one row of the help overlay.
type helpEntry struct {
	key  string
	desc string
}

func bindingHelp(bindings ...key.Binding) []helpEntry {
	out := make([]helpEntry, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		out = append(out, helpEntry{key: h.Key, desc: h.Desc})
	}
	return out
}

func globalHelp() []helpEntry {
	return bindingHelp(keys.Quit, keys.Help, keys.Refresh, keys.JumpPanel, keys.NextPanel)
}

// panelHelp lists the keys that act on the focused panel.
func panelHelp(p Panel) []helpEntry {
	nav := bindingHelp(keys.Down, keys.Left)
	switch p {
	case PanelSessions:
		return append(nav,
			helpEntry{"n", "New session"},
			helpEntry{"r", "Rename session"},
			helpEntry{"d", "Kill session"},
			helpEntry{"Enter", "Switch to session"},
		)
	case PanelWindows:
		return append(nav,
			helpEntry{"n", "New window"},
			helpEntry{"r", "Rename window"},
			helpEntry{"d", "Kill window"},
			helpEntry{"Enter", "Switch to window"},
		)
	case PanelPanes:
		return append(nav,
			helpEntry{"n", "Split vertical"},
			bindingHelp(keys.SplitHoriz)[0],
			helpEntry{"d", "Kill pane"},
			bindingHelp(keys.Zoom)[0],
			bindingHelp(keys.Break)[0],
			helpEntry{"Enter", "Switch to pane"},
		)
	}
	return bindingHelp(keys.Left)
}
