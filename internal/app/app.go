package app

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tmux-dashboard/internal/backend"
	"github.com/atomicstack/tmux-dashboard/internal/logging"
	"github.com/atomicstack/tmux-dashboard/internal/tmux"
	"github.com/atomicstack/tmux-dashboard/internal/ui"
)

// ErrServerUnreachable is returned when no tmux server answers on the
// resolved socket.
var ErrServerUnreachable = errors.New("tmux server is not running")

// Config describes user-provided application options.
type Config struct {
	SocketPath      string
	RefreshInterval time.Duration
	TickInterval    time.Duration
}

// OutcomeKind says how the dashboard ended.
type OutcomeKind int

const (
	// OutcomeQuit means the operator quit; nothing else needs doing.
	OutcomeQuit OutcomeKind = iota
	// OutcomeAttach means the dashboard stepped aside so a tmux client can
	// attach to Target in the same terminal.
	OutcomeAttach
)

// Outcome is what Run reports once the program exits.
type Outcome struct {
	Kind       OutcomeKind
	Target     string
	SocketPath string
}

// sessionExecutor is the tmux surface the dashboard drives for one run.
type sessionExecutor interface {
	ui.Executor
	Close()
}

var (
	serverReachable = tmux.ServerReachable
	newExecutor     = func(socketPath string) sessionExecutor {
		return tmux.NewExecutor(socketPath)
	}
	runProgram      = func(model tea.Model) (tea.Model, error) {
		return tea.NewProgram(model, tea.WithAltScreen()).Run()
	}
)

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) (Outcome, error) {
	socketPath, err := tmux.ResolveSocketPath(cfg.SocketPath)
	if err != nil {
		return Outcome{}, fmt.Errorf("resolve socket path: %w", err)
	}
	if !serverReachable(socketPath) {
		return Outcome{}, ErrServerUnreachable
	}

	logging.Info("dashboard starting", "socket", socketPath, "log", logging.Path())

	exec := newExecutor(socketPath)
	defer exec.Close()
	ticker := backend.NewTicker(cfg.TickInterval)
	defer func() {
		ticker.Stop()
		ticker.Wait()
	}()

	model := ui.NewModel(ui.Options{
		Executor:        exec,
		Ticker:          ticker,
		RefreshInterval: cfg.RefreshInterval,
	})
	final, err := runProgram(model)
	if errors.Is(err, tea.ErrProgramKilled) {
		err = nil
	}
	if err != nil {
		return Outcome{}, err
	}
	if m, ok := final.(*ui.Model); ok {
		model = m
	}
	return outcomeFor(model, socketPath), nil
}

func outcomeFor(model *ui.Model, socketPath string) Outcome {
	if target, ok := model.Handoff(); ok {
		return Outcome{Kind: OutcomeAttach, Target: target, SocketPath: socketPath}
	}
	return Outcome{Kind: OutcomeQuit, SocketPath: socketPath}
}
