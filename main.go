package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/atomicstack/tmux-dashboard/internal/app"
	"github.com/atomicstack/tmux-dashboard/internal/config"
	"github.com/atomicstack/tmux-dashboard/internal/logging"
	"github.com/atomicstack/tmux-dashboard/internal/logging/events"
	"github.com/atomicstack/tmux-dashboard/internal/telemetry"
	"github.com/atomicstack/tmux-dashboard/internal/tmux"
)

var version = "dev"

const unreachableMessage = "Error: tmux server is not running.\nStart tmux first, then run tmux-dashboard."

// exitError carries a process exit code out of RunE.
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string { return e.msg }

func main() {
	if err := newRootCmd().Execute(); err != nil {
		code := 1
		var exit *exitError
		if errors.As(err, &exit) {
			code = exit.code
		}
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(code)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "tmux-dashboard",
		Short:         "Browse and manage tmux sessions, windows and panes",
		Long:          "tmux-dashboard is a full-screen terminal dashboard over a running tmux server.\nSettings come from $XDG_CONFIG_HOME/tmux-dashboard/config.yaml and TMUX_DASHBOARD_* variables.",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(*cobra.Command, []string) error {
			return run()
		},
	}
}

func run() error {
	runtimeCfg, err := config.Load()
	if err != nil {
		return &exitError{code: 2, msg: fmt.Sprintf("Configuration error: %v", err)}
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)
	logging.SetDebug(runtimeCfg.Logging.Debug)

	provider, err := telemetry.NewProvider(telemetry.Config{File: runtimeCfg.Telemetry.File})
	if err != nil {
		logging.Error(err)
		return &exitError{code: 1, msg: fmt.Sprintf("Error: %v", err)}
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := provider.Shutdown(ctx); err != nil {
			logging.Warn("span flush failed", "err", err)
		}
	}()
	if provider.Enabled() {
		logging.Info("exporting spans", "file", runtimeCfg.Telemetry.File)
	}

	traceStartup(runtimeCfg)

	outcome, err := app.Run(runtimeCfg.App)
	if errors.Is(err, app.ErrServerUnreachable) {
		return &exitError{code: 1, msg: unreachableMessage}
	}
	if err != nil {
		logging.Error(err)
		return &exitError{code: 1, msg: fmt.Sprintf("Error: %v", err)}
	}
	if outcome.Kind == app.OutcomeAttach {
		if err := tmux.AttachClient(outcome.SocketPath, outcome.Target); err != nil {
			logging.Error(err, "target", outcome.Target)
			return &exitError{code: 1, msg: fmt.Sprintf("Error: attach %s: %v", outcome.Target, err)}
		}
	}
	return nil
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	settings := map[string]interface{}{
		"socket":          cfg.App.SocketPath,
		"refreshInterval": cfg.App.RefreshInterval.String(),
		"tickInterval":    cfg.App.TickInterval.String(),
		"trace":           cfg.Logging.Trace,
		"logFile":         cfg.Logging.FilePath,
		"spanFile":        cfg.Telemetry.File,
		"configFile":      cfg.File,
	}
	payload := map[string]interface{}{
		"argv":     os.Args,
		"settings": settings,
		"config":   cfg,
		"version":  version,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tty"] = collectTTYDetails()
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails inspects standard descriptors for terminal support and dimensions.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name string
		fd   uintptr
	}{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	results := make([]ttyProbeResult, 0, len(probes))
	var detected *ttyDetected
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.fd)
		if fd >= 0 && term.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry.Width = width
				entry.Height = height
				if detected == nil {
					detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
				}
			} else {
				entry.Error = err.Error()
			}
		} else {
			entry.IsTerminal = false
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}
