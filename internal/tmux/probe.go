package tmux

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ServerReachable reports whether a tmux server answers on socketPath.
func ServerReachable(socketPath string) bool {
	args := append(baseArgs(socketPath), "list-sessions")
	_, err := runExecCommand("tmux", args...).Output()
	return err == nil
}

// InsideClient reports whether this process runs inside a tmux client.
func InsideClient() bool {
	return strings.TrimSpace(os.Getenv("TMUX")) != ""
}

// AttachClient attaches a new tmux client to target using the terminal's
// stdio. It blocks until that client detaches or exits.
func AttachClient(socketPath, target string) error {
	if strings.TrimSpace(target) == "" {
		return fmt.Errorf("attach target required")
	}
	args := append(baseArgs(socketPath), "attach-session", "-t", target)
	return runAttachCommand("tmux", args...).Run()
}

// withStderr folds an exec failure's stderr into the error text so the
// tmux diagnostic reaches the operator instead of a bare exit status.
func withStderr(err error) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if msg := strings.TrimSpace(string(exitErr.Stderr)); msg != "" {
			return errors.New(msg)
		}
	}
	return err
}
