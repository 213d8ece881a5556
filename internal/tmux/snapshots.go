package tmux

import (
	"strconv"
	"strings"
	"time"
)

const (
	sessionFormat = "#{session_id}\t#{session_windows}\t#{session_attached}\t#{session_created}\t#{session_activity}\t#{session_name}"
	windowFormat  = "#{window_index}\t#{window_id}\t#{window_active}\t#{window_panes}\t#{window_layout}\t#{window_flags}\t#{window_name}"
	paneFormat    = "#{pane_id}\t#{pane_index}\t#{pane_active}\t#{pane_width}\t#{pane_height}\t#{pane_top}\t#{pane_left}\t#{pane_pid}\t#{pane_current_command}\t#{pane_current_path}"
)

// FetchSessions lists every session on the server in tmux order.
func FetchSessions(socketPath string) ([]Session, error) {
	client, err := newTmux(socketPath)
	if err != nil {
		return nil, classify("list-sessions", err)
	}
	lines, err := client.ListSessionsFormat(sessionFormat)
	if err != nil {
		return nil, classify("list-sessions", err)
	}
	realClients := realAttachedClients(client)
	out := make([]Session, 0, len(lines))
	for _, line := range lines {
		s, ok := parseSessionLine(line)
		if !ok {
			continue
		}
		if realClients != nil {
			s.Attached = len(realClients[s.Name]) > 0
		}
		out = append(out, s)
	}
	return out, nil
}

// FetchWindows lists the windows of one session.
func FetchWindows(socketPath, session string) ([]Window, error) {
	client, err := newTmux(socketPath)
	if err != nil {
		return nil, classify("list-windows", err)
	}
	lines, err := client.ListWindowsFormat(exactSession(session), "", windowFormat)
	if err != nil {
		return nil, classify("list-windows", err)
	}
	out := make([]Window, 0, len(lines))
	for _, line := range lines {
		if w, ok := parseWindowLine(line); ok {
			out = append(out, w)
		}
	}
	return out, nil
}

// FetchPanes lists the panes of one window.
func FetchPanes(socketPath, session string, window int) ([]Pane, error) {
	client, err := newTmux(socketPath)
	if err != nil {
		return nil, classify("list-panes", err)
	}
	lines, err := client.ListPanesFormat(windowTarget(exactSession(session), window), "", paneFormat)
	if err != nil {
		return nil, classify("list-panes", err)
	}
	out := make([]Pane, 0, len(lines))
	for _, line := range lines {
		if p, ok := parsePaneLine(line); ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func splitFields(line string, n int) ([]string, bool) {
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return nil, false
	}
	parts := strings.SplitN(line, "\t", n)
	if len(parts) < n {
		return nil, false
	}
	return parts, true
}

func atoi(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}

func unixTime(s string) time.Time {
	secs, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || secs <= 0 {
		return time.Time{}
	}
	return time.Unix(secs, 0)
}

func flag(s string) bool {
	return strings.TrimSpace(s) == "1"
}

func parseSessionLine(line string) (Session, bool) {
	parts, ok := splitFields(line, 6)
	if !ok || parts[5] == "" {
		return Session{}, false
	}
	return Session{
		ID:       strings.TrimSpace(parts[0]),
		Windows:  atoi(parts[1]),
		Attached: atoi(parts[2]) > 0,
		Created:  unixTime(parts[3]),
		Activity: unixTime(parts[4]),
		Name:     parts[5],
	}, true
}

func parseWindowLine(line string) (Window, bool) {
	parts, ok := splitFields(line, 7)
	if !ok {
		return Window{}, false
	}
	index, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Window{}, false
	}
	return Window{
		Index:  index,
		ID:     strings.TrimSpace(parts[1]),
		Active: flag(parts[2]),
		Panes:  atoi(parts[3]),
		Layout: strings.TrimSpace(parts[4]),
		Flags:  strings.TrimSpace(parts[5]),
		Name:   parts[6],
	}, true
}

func parsePaneLine(line string) (Pane, bool) {
	parts, ok := splitFields(line, 10)
	if !ok {
		return Pane{}, false
	}
	id := strings.TrimSpace(parts[0])
	if id == "" {
		return Pane{}, false
	}
	return Pane{
		ID:      id,
		Index:   atoi(parts[1]),
		Active:  flag(parts[2]),
		Width:   atoi(parts[3]),
		Height:  atoi(parts[4]),
		Top:     atoi(parts[5]),
		Left:    atoi(parts[6]),
		PID:     atoi(parts[7]),
		Command: parts[8],
		Path:    parts[9],
	}, true
}
