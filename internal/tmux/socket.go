package tmux

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
)

// SocketEnvVar overrides socket detection when set.
const SocketEnvVar = "TMUX_DASHBOARD_SOCKET"

// ResolveSocketPath picks the tmux socket: an explicit value first, then
// $TMUX_DASHBOARD_SOCKET, then the socket of the enclosing tmux client, then
// tmux's own default location.
func ResolveSocketPath(explicit string) (string, error) {
	if explicit = strings.TrimSpace(explicit); explicit != "" {
		return explicit, nil
	}
	if envSocket := strings.TrimSpace(os.Getenv(SocketEnvVar)); envSocket != "" {
		return envSocket, nil
	}
	if tmuxEnv := os.Getenv("TMUX"); tmuxEnv != "" {
		parts := strings.Split(tmuxEnv, ",")
		if len(parts) > 0 && parts[0] != "" {
			return parts[0], nil
		}
	}
	baseDir := os.Getenv("TMUX_TMPDIR")
	if baseDir == "" {
		baseDir = "/tmp"
	}
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return filepath.Join(baseDir, fmt.Sprintf("tmux-%s", u.Uid), "default"), nil
}
