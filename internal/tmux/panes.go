package tmux

import (
	"fmt"
	"strings"
)

// SplitPane splits paneID inside session:index. The window target keeps the
// split scoped even if the pane id went stale between refreshes.
func SplitPane(socketPath, session string, index int, paneID string, orientation Orientation) error {
	target := strings.TrimSpace(paneID)
	if target == "" {
		if session == "" {
			return fmt.Errorf("pane target required")
		}
		target = windowTarget(exactSession(session), index)
	}
	_, err := run(socketPath, "split-window", orientation.flag(), "-t", target)
	return err
}

func KillPane(socketPath, paneID string) error {
	if strings.TrimSpace(paneID) == "" {
		return fmt.Errorf("pane target required")
	}
	_, err := run(socketPath, "kill-pane", "-t", paneID)
	return err
}

// ToggleZoom flips the zoomed state of the pane's window.
func ToggleZoom(socketPath, paneID string) error {
	if strings.TrimSpace(paneID) == "" {
		return fmt.Errorf("pane target required")
	}
	_, err := run(socketPath, "resize-pane", "-Z", "-t", paneID)
	return err
}

// BreakPane moves the pane into a new window of the same session.
func BreakPane(socketPath, paneID string) error {
	if strings.TrimSpace(paneID) == "" {
		return fmt.Errorf("pane target required")
	}
	_, err := run(socketPath, "break-pane", "-d", "-s", paneID)
	return err
}

func SelectPane(socketPath, paneID string) error {
	if strings.TrimSpace(paneID) == "" {
		return fmt.Errorf("pane target required")
	}
	client, err := newTmux(socketPath)
	if err != nil {
		return err
	}
	if err := client.SelectPane(paneID); err != nil {
		dropClient(err)
		return err
	}
	return nil
}
