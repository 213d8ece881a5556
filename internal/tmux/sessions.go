package tmux

import (
	"fmt"
	"strings"

	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"
)

// NewSession creates a detached session.
func NewSession(socketPath, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("session name required")
	}
	_, err := run(socketPath, "new-session", "-d", "-s", name)
	return err
}

func KillSession(socketPath, name string) error {
	if name == "" {
		return fmt.Errorf("session target required")
	}
	_, err := run(socketPath, "kill-session", "-t", exactSession(name))
	return err
}

func RenameSession(socketPath, oldName, newName string) error {
	if oldName == "" {
		return fmt.Errorf("session target required")
	}
	if strings.TrimSpace(newName) == "" {
		return fmt.Errorf("session name required")
	}
	_, err := run(socketPath, "rename-session", "-t", exactSession(oldName), newName)
	return err
}

// SwitchClient points the launching terminal client at target. When that
// client cannot be identified the control-mode default is used.
func SwitchClient(socketPath, target string) error {
	if strings.TrimSpace(target) == "" {
		return fmt.Errorf("switch target required")
	}
	client, err := newTmux(socketPath)
	if err != nil {
		return err
	}
	opts := &gotmux.SwitchClientOptions{TargetSession: target}
	if id := CurrentClientID(socketPath); id != "" {
		opts.TargetClient = id
	}
	if err := client.SwitchClient(opts); err != nil {
		dropClient(err)
		return err
	}
	return nil
}
