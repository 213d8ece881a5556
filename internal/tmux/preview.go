package tmux

import (
	"fmt"
	"strings"
)

// CapturePane returns the visible text of a pane. Trailing blank lines are
// dropped; interior blank lines are kept so the capture keeps its shape.
func CapturePane(socketPath, pane string) (string, error) {
	target := strings.TrimSpace(pane)
	if target == "" {
		return "", fmt.Errorf("pane target required")
	}
	args := append(baseArgs(socketPath), "capture-pane", "-p", "-t", target)
	output, err := runExecCommand("tmux", args...).Output()
	if err != nil {
		return "", classify("capture-pane "+target, withStderr(err))
	}
	return strings.Join(splitCaptureLines(string(output)), "\n"), nil
}

func splitCaptureLines(text string) []string {
	if text == "" {
		return nil
	}
	normalised := strings.ReplaceAll(text, "\r\n", "\n")
	normalised = strings.ReplaceAll(normalised, "\r", "\n")
	raw := strings.Split(normalised, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		lines = append(lines, strings.TrimRight(line, " \t"))
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
