package tmux

import (
	"os"
	"strings"
	"sync"
	"unicode"
)

var (
	clientMu     sync.Mutex
	cachedClient tmuxClient
	cachedSocket string
)

// cachedTmux returns the shared control-mode connection for socketPath,
// dialling a new one when none exists or the socket changed.
func cachedTmux(socketPath string) (tmuxClient, error) {
	clientMu.Lock()
	defer clientMu.Unlock()
	if cachedClient != nil && cachedSocket == socketPath {
		return cachedClient, nil
	}
	if cachedClient != nil {
		_ = cachedClient.Close()
		cachedClient = nil
		cachedSocket = ""
	}
	client, err := dialTmux(socketPath)
	if err != nil {
		return nil, err
	}
	cachedClient = client
	cachedSocket = socketPath
	return client, nil
}

// Shutdown closes the cached control-mode connection, if any.
func Shutdown() {
	clientMu.Lock()
	defer clientMu.Unlock()
	if cachedClient != nil {
		_ = cachedClient.Close()
	}
	cachedClient = nil
	cachedSocket = ""
}

// dropClient forgets the cached connection after a transport failure so
// the next call re-dials.
func dropClient(err error) {
	if err == nil || !isConnectionError(err) {
		return
	}
	Shutdown()
}

func isConnectionError(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, marker := range []string{"closed", "eof", "broken pipe"} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// CurrentClientID finds the terminal client that launched the dashboard so
// switch-client targets it instead of the control-mode connection.
func CurrentClientID(socketPath string) string {
	client, err := newTmux(socketPath)
	if err != nil {
		return ""
	}
	session := ""
	if pane := strings.TrimSpace(os.Getenv("TMUX_PANE")); pane != "" {
		if name, err := client.DisplayMessage(pane, "#{session_name}"); err == nil {
			session = strings.TrimSpace(name)
		}
	}
	sessionID := ""
	if session == "" {
		if parts := strings.Split(os.Getenv("TMUX"), ","); len(parts) >= 3 {
			if id := strings.TrimSpace(parts[2]); id != "" {
				sessionID = "$" + id
			}
		}
	}
	clients, err := client.ListClients()
	if err != nil {
		return ""
	}
	for _, c := range clients {
		if c == nil || c.ControlMode || !isValidClientName(c.Name) {
			continue
		}
		if session != "" && c.Session != session {
			continue
		}
		if sessionID != "" && !clientInSession(client, c.Name, sessionID) {
			continue
		}
		return c.Name
	}
	return ""
}

func clientInSession(client tmuxClient, name, sessionID string) bool {
	id, err := client.DisplayMessage(name, "#{session_id}")
	if err != nil {
		return false
	}
	return strings.TrimSpace(id) == sessionID
}

// isValidClientName rejects empty names and the status-line text tmux
// sometimes returns in place of a tty path.
func isValidClientName(name string) bool {
	if name == "" {
		return false
	}
	return strings.IndexFunc(name, unicode.IsSpace) < 0
}

// realAttachedClients maps session names to their non-control-mode clients.
// gotmuxcc's own connection would otherwise count as an attached client.
func realAttachedClients(client tmuxClient) map[string][]string {
	clients, err := client.ListClients()
	if err != nil {
		return nil
	}
	result := make(map[string][]string)
	for _, c := range clients {
		if c == nil || c.ControlMode || c.Session == "" {
			continue
		}
		result[c.Session] = append(result[c.Session], c.Name)
	}
	return result
}
