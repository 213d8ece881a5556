package command

import "github.com/atomicstack/tmux-dashboard/internal/logging/events"

// Request describes one mutating tmux operation.
type Request struct {
	ID      string
	Label   string
	Run     func() error
	Success string
}

// Result reports how a Request went. Info carries the status text on
// success; Err carries the backend error verbatim on failure.
type Result struct {
	ID   string
	Info string
	Err  error
}

// OK reports whether the request succeeded.
func (r Result) OK() bool { return r.Err == nil }

// Bus executes mutations synchronously so the caller can refresh in the
// same update step.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute runs req and emits trace entries around it.
func (b *Bus) Execute(req Request) Result {
	events.Command.Queue(req.ID, req.Label)
	if req.Run == nil {
		events.Command.Result(req.ID, req.Label, nil)
		return Result{ID: req.ID}
	}
	if err := req.Run(); err != nil {
		events.Command.Result(req.ID, req.Label, err)
		events.Action.Error(err)
		return Result{ID: req.ID, Err: err}
	}
	events.Command.Result(req.ID, req.Label, nil)
	events.Action.Success(req.Success)
	return Result{ID: req.ID, Info: req.Success}
}
