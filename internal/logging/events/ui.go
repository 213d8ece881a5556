package events

import "github.com/atomicstack/tmux-dashboard/internal/logging"

type RefreshTracer struct{}

type SelectionTracer struct{}

type ModeTracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

var (
	Refresh   = RefreshTracer{}
	Selection = SelectionTracer{}
	Mode      = ModeTracer{}
	Action    = ActionTracer{}
	Command   = CommandTracer{}
)

func (RefreshTracer) All(sessions, windows, panes int) {
	logging.Trace("refresh.all", map[string]interface{}{
		"sessions": sessions,
		"windows":  windows,
		"panes":    panes,
	})
}

func (RefreshTracer) QueryFailed(scope string, err error) {
	if err == nil {
		return
	}
	logging.Trace("refresh.query_failed", map[string]interface{}{"scope": scope, "error": err.Error()})
}

func (SelectionTracer) Move(panel string, cursor int) {
	logging.Trace("selection.move", map[string]interface{}{"panel": panel, "cursor": cursor})
}

func (SelectionTracer) Focus(panel string) {
	logging.Trace("selection.focus", map[string]interface{}{"panel": panel})
}

func (ModeTracer) Enter(from, to string) {
	logging.Trace("mode.enter", map[string]interface{}{"from": from, "to": to})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label string, err error) {
	payload := map[string]interface{}{"id": id, "label": label}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("command.result", payload)
}
