package tmux

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const tracerName = "github.com/atomicstack/tmux-dashboard/internal/tmux"

// Executor binds the package's tmux calls to one socket and records each
// call as a span named tmux.<operation>.
type Executor struct {
	socket string
}

func NewExecutor(socketPath string) *Executor {
	return &Executor{socket: socketPath}
}

func (e *Executor) traced(op string, fn func() error, attrs ...attribute.KeyValue) error {
	_, span := otel.Tracer(tracerName).Start(context.Background(), "tmux."+op)
	defer span.End()
	span.SetAttributes(attrs...)
	if e.socket != "" {
		span.SetAttributes(attribute.String("tmux.socket", e.socket))
	}
	err := fn()
	switch {
	case err == nil:
	case errors.Is(err, ErrNoEntities):
		span.SetAttributes(attribute.Bool("tmux.empty", true))
	default:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (e *Executor) ListSessions() ([]Session, error) {
	var out []Session
	err := e.traced("list_sessions", func() error {
		var err error
		out, err = FetchSessions(e.socket)
		return err
	})
	return out, err
}

func (e *Executor) ListWindows(session string) ([]Window, error) {
	var out []Window
	err := e.traced("list_windows", func() error {
		var err error
		out, err = FetchWindows(e.socket, session)
		return err
	}, attribute.String("tmux.session", session))
	return out, err
}

func (e *Executor) ListPanes(session string, window int) ([]Pane, error) {
	var out []Pane
	err := e.traced("list_panes", func() error {
		var err error
		out, err = FetchPanes(e.socket, session, window)
		return err
	}, attribute.String("tmux.session", session), attribute.Int("tmux.window", window))
	return out, err
}

func (e *Executor) CapturePane(paneID string) (string, error) {
	var out string
	err := e.traced("capture_pane", func() error {
		var err error
		out, err = CapturePane(e.socket, paneID)
		return err
	}, attribute.String("tmux.pane", paneID))
	return out, err
}

func (e *Executor) NewSession(name string) error {
	return e.traced("new_session", func() error {
		return NewSession(e.socket, name)
	}, attribute.String("tmux.session", name))
}

func (e *Executor) KillSession(name string) error {
	return e.traced("kill_session", func() error {
		return KillSession(e.socket, name)
	}, attribute.String("tmux.session", name))
}

func (e *Executor) RenameSession(oldName, newName string) error {
	return e.traced("rename_session", func() error {
		return RenameSession(e.socket, oldName, newName)
	}, attribute.String("tmux.session", oldName), attribute.String("tmux.new_name", newName))
}

func (e *Executor) NewWindow(session, name string) error {
	return e.traced("new_window", func() error {
		return NewWindow(e.socket, session, name)
	}, attribute.String("tmux.session", session), attribute.String("tmux.name", name))
}

func (e *Executor) KillWindow(session string, index int) error {
	return e.traced("kill_window", func() error {
		return KillWindow(e.socket, session, index)
	}, attribute.String("tmux.session", session), attribute.Int("tmux.window", index))
}

func (e *Executor) RenameWindow(session string, index int, name string) error {
	return e.traced("rename_window", func() error {
		return RenameWindow(e.socket, session, index, name)
	}, attribute.String("tmux.session", session), attribute.Int("tmux.window", index), attribute.String("tmux.new_name", name))
}

func (e *Executor) SplitPane(session string, index int, paneID string, orientation Orientation) error {
	return e.traced("split_pane", func() error {
		return SplitPane(e.socket, session, index, paneID, orientation)
	}, attribute.String("tmux.pane", paneID), attribute.String("tmux.orientation", orientation.String()))
}

func (e *Executor) KillPane(paneID string) error {
	return e.traced("kill_pane", func() error {
		return KillPane(e.socket, paneID)
	}, attribute.String("tmux.pane", paneID))
}

func (e *Executor) ToggleZoom(paneID string) error {
	return e.traced("toggle_zoom", func() error {
		return ToggleZoom(e.socket, paneID)
	}, attribute.String("tmux.pane", paneID))
}

func (e *Executor) BreakPane(paneID string) error {
	return e.traced("break_pane", func() error {
		return BreakPane(e.socket, paneID)
	}, attribute.String("tmux.pane", paneID))
}

func (e *Executor) SelectWindow(session string, index int) error {
	return e.traced("select_window", func() error {
		return SelectWindow(e.socket, session, index)
	}, attribute.String("tmux.session", session), attribute.Int("tmux.window", index))
}

func (e *Executor) SelectPane(paneID string) error {
	return e.traced("select_pane", func() error {
		return SelectPane(e.socket, paneID)
	}, attribute.String("tmux.pane", paneID))
}

func (e *Executor) SwitchClient(target string) error {
	return e.traced("switch_client", func() error {
		return SwitchClient(e.socket, target)
	}, attribute.String("tmux.target", target))
}

func (e *Executor) AttachClient(target string) error {
	return e.traced("attach_client", func() error {
		return AttachClient(e.socket, target)
	}, attribute.String("tmux.target", target))
}

// InsideClient reports whether the dashboard runs inside a tmux client.
func (e *Executor) InsideClient() bool {
	return InsideClient()
}

// Close drops the shared control-mode connection.
func (e *Executor) Close() {
	Shutdown()
}
