package tmux

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoEntities marks a query whose target does not exist or whose server
// has nothing to list. Callers treat it as an empty result rather than a
// failure.
var ErrNoEntities = errors.New("no matching tmux entities")

var noEntityMarkers = []string{
	"can't find session",
	"can't find window",
	"can't find pane",
	"no such session",
	"no server running",
	"no sessions",
	"error connecting to",
}

func baseArgs(socketPath string) []string {
	if strings.TrimSpace(socketPath) == "" {
		return []string{}
	}
	return []string{"-S", socketPath}
}

// classify wraps err with ErrNoEntities when tmux reported a missing target.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range noEntityMarkers {
		if strings.Contains(msg, marker) {
			return fmt.Errorf("%s: %w: %w", op, ErrNoEntities, err)
		}
	}
	dropClient(err)
	return fmt.Errorf("%s: %w", op, err)
}

// run issues a raw tmux command over the control-mode connection.
func run(socketPath string, parts ...string) (string, error) {
	client, err := newTmux(socketPath)
	if err != nil {
		return "", err
	}
	out, err := client.Command(parts...)
	if err != nil {
		dropClient(err)
		return "", err
	}
	return out, nil
}

func windowTarget(session string, index int) string {
	return fmt.Sprintf("%s:%d", session, index)
}

// exactSession prefixes a session name with '=' so tmux does not fall back
// to prefix matching.
func exactSession(name string) string {
	return "=" + name
}
