package tmux

import (
	"os"
	"os/exec"
	"time"

	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"
)

// Session is a point-in-time snapshot of a tmux session.
type Session struct {
	Name     string
	ID       string
	Windows  int
	Attached bool
	Created  time.Time
	Activity time.Time
}

// Window is a point-in-time snapshot of a window inside one session.
type Window struct {
	Name   string
	Index  int
	ID     string
	Active bool
	Panes  int
	Layout string
	Flags  string
}

// Pane is a point-in-time snapshot of a pane inside one window. Geometry is
// in cells relative to the window origin.
type Pane struct {
	ID      string
	Index   int
	Active  bool
	Command string
	Width   int
	Height  int
	Top     int
	Left    int
	Path    string
	PID     int
}

// Orientation selects how a pane is split.
type Orientation int

const (
	// SplitVertical places the new pane beside the target (split-window -h).
	SplitVertical Orientation = iota
	// SplitHorizontal places the new pane below the target (split-window -v).
	SplitHorizontal
)

func (o Orientation) flag() string {
	if o == SplitHorizontal {
		return "-v"
	}
	return "-h"
}

func (o Orientation) String() string {
	if o == SplitHorizontal {
		return "horizontal"
	}
	return "vertical"
}

var (
	dialTmux = func(socketPath string) (tmuxClient, error) {
		if socketPath != "" {
			return gotmux.NewTmux(socketPath)
		}
		return gotmux.DefaultTmux()
	}

	newTmux = cachedTmux

	runExecCommand = func(name string, args ...string) commander {
		return realCommander{cmd: exec.Command(name, args...)}
	}

	runAttachCommand = func(name string, args ...string) commander {
		cmd := exec.Command(name, args...)
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		return realCommander{cmd: cmd}
	}
)

type tmuxClient interface {
	ListClients() ([]*gotmux.Client, error)
	SwitchClient(*gotmux.SwitchClientOptions) error
	SelectWindow(target string) error
	SelectPane(target string) error
	DisplayMessage(target, format string) (string, error)
	ListSessionsFormat(format string) ([]string, error)
	ListWindowsFormat(target, filter, format string) ([]string, error)
	ListPanesFormat(target, filter, format string) ([]string, error)
	Command(parts ...string) (string, error)
	KillServer() error
	Close() error
}

type commander interface {
	Run() error
	Output() ([]byte, error)
}

type realCommander struct {
	cmd *exec.Cmd
}

func (r realCommander) Run() error {
	return r.cmd.Run()
}

func (r realCommander) Output() ([]byte, error) {
	return r.cmd.Output()
}
