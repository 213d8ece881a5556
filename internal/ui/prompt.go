package ui

import (
	"fmt"
	"strings"
)

const (
	inputHint = "Enter: confirm  Esc: cancel"
	helpTitle = "Help (press ? or Esc to close)"
)

// textInputBox renders the name prompt: the prompt as title, the buffer
// followed by a cursor, and the key hint.
func (m *Model) textInputBox(width, height int) string {
	boxW := max(width*50/100, 20)
	title := strings.TrimSuffix(m.inputPrompt, ": ")
	lines := []styledLine{
		{text: m.inputBuffer + "_", style: styles.OverlayBody},
		{},
		{text: inputHint, style: styles.StatusHint},
	}
	return renderBox(title, lines, min(boxW, width), min(len(lines)+2, height), styles.OverlayBorder, styles.OverlayTitle)
}

func (m *Model) confirmBox(width, height int) string {
	boxW := max(width*50/100, 20)
	boxH := max(height*20/100, 3)
	lines := []styledLine{{text: m.confirmMsg, style: styles.OverlayBody}}
	return renderBox("Confirm", lines, min(boxW, width), min(boxH, height), styles.OverlayBorder, styles.OverlayTitle)
}

// helpBox lists the global keys followed by those of the focused panel.
func (m *Model) helpBox(width, height int) string {
	boxW := max(width*60/100, 30)
	boxH := max(height*70/100, 5)
	lines := make([]styledLine, 0, 24)
	section := func(name string, entries []helpEntry) {
		lines = append(lines, styledLine{text: name, style: styles.HelpSection})
		for _, e := range entries {
			lines = append(lines, styledLine{
				text:          fmt.Sprintf("  %-12s %s", e.key, e.desc),
				style:         styles.OverlayBody,
				prefixStyle:   styles.HelpKey,
				highlightFrom: 15,
			})
		}
	}
	section("Global", globalHelp())
	lines = append(lines, styledLine{})
	_, name, _ := strings.Cut(m.focus.Title(), " ")
	section(name+" panel", panelHelp(m.focus))
	return renderBox(helpTitle, lines, min(boxW, width), min(boxH, height), styles.OverlayBorder, styles.OverlayTitle)
}
