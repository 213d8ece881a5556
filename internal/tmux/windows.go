package tmux

import (
	"fmt"
	"strings"
)

// NewWindow appends a window to session. An empty name leaves naming to
// tmux.
func NewWindow(socketPath, session, name string) error {
	if session == "" {
		return fmt.Errorf("session target required")
	}
	args := []string{"new-window", "-d", "-t", exactSession(session) + ":"}
	if strings.TrimSpace(name) != "" {
		args = append(args, "-n", name)
	}
	_, err := run(socketPath, args...)
	return err
}

func KillWindow(socketPath, session string, index int) error {
	if session == "" {
		return fmt.Errorf("session target required")
	}
	_, err := run(socketPath, "kill-window", "-t", windowTarget(exactSession(session), index))
	return err
}

func RenameWindow(socketPath, session string, index int, name string) error {
	if session == "" {
		return fmt.Errorf("session target required")
	}
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("window name required")
	}
	_, err := run(socketPath, "rename-window", "-t", windowTarget(exactSession(session), index), name)
	return err
}

func SelectWindow(socketPath, session string, index int) error {
	if session == "" {
		return fmt.Errorf("session target required")
	}
	client, err := newTmux(socketPath)
	if err != nil {
		return err
	}
	if err := client.SelectWindow(windowTarget(exactSession(session), index)); err != nil {
		dropClient(err)
		return err
	}
	return nil
}
