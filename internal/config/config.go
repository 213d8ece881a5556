package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/atomicstack/tmux-dashboard/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App       app.Config
	Logging   Logging
	Telemetry Telemetry
	// File is the YAML file that was read, if any.
	File string
}

type Logging struct {
	FilePath string
	Trace    bool
	// Debug writes debug-level lines to the log file.
	Debug bool
}

type Telemetry struct {
	File string
}

const (
	envSocketPath = "TMUX_DASHBOARD_SOCKET"
	envRefresh    = "TMUX_DASHBOARD_REFRESH"
	envTick       = "TMUX_DASHBOARD_TICK"
	envLogFile    = "TMUX_DASHBOARD_LOG_FILE"
	envTrace      = "TMUX_DASHBOARD_TRACE"
	envDebug      = "TMUX_DASHBOARD_DEBUG"
	envOtelFile   = "TMUX_DASHBOARD_OTEL_FILE"
	envConfig     = "TMUX_DASHBOARD_CONFIG"

	defaultRefresh = 2 * time.Second
	defaultTick    = 250 * time.Millisecond

	configRelPath = "tmux-dashboard/config.yaml"
)

// fileConfig mirrors the YAML layout. Durations stay strings so a bad value
// reports the key that holds it.
type fileConfig struct {
	Socket          string `yaml:"socket"`
	RefreshInterval string `yaml:"refresh_interval"`
	TickInterval    string `yaml:"tick_interval"`
	LogFile         string `yaml:"log_file"`
	Trace           *bool  `yaml:"trace"`
	Debug           *bool  `yaml:"debug"`
	Telemetry       struct {
		File string `yaml:"file"`
	} `yaml:"telemetry"`
}

// Load reads configuration from the process environment and the YAML file.
func Load() (Config, error) {
	return LoadArgs(nil, os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. The dashboard
// takes no positional arguments.
func LoadArgs(args []string, environ []string) (Config, error) {
	if len(args) > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(args, " "))
	}
	env := parseEnv(environ)

	cfg := Config{
		App: app.Config{
			RefreshInterval: defaultRefresh,
			TickInterval:    defaultTick,
		},
	}

	path, err := configPath(env)
	if err != nil {
		return Config{}, err
	}
	if path != "" {
		if err := applyFile(&cfg, path); err != nil {
			return Config{}, err
		}
		cfg.File = path
	}

	cfg.App.SocketPath = envOrDefault(env, envSocketPath, cfg.App.SocketPath)
	if cfg.App.RefreshInterval, err = envOrDuration(env, envRefresh, cfg.App.RefreshInterval); err != nil {
		return Config{}, err
	}
	if cfg.App.TickInterval, err = envOrDuration(env, envTick, cfg.App.TickInterval); err != nil {
		return Config{}, err
	}
	cfg.Logging.FilePath = envOrDefault(env, envLogFile, cfg.Logging.FilePath)
	cfg.Logging.Trace = envOrBool(env, envTrace, cfg.Logging.Trace)
	cfg.Logging.Debug = envOrBool(env, envDebug, cfg.Logging.Debug)
	cfg.Telemetry.File = envOrDefault(env, envOtelFile, cfg.Telemetry.File)

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// configPath returns the YAML file to read. An explicit path must exist; the
// XDG location is optional.
func configPath(env map[string]string) (string, error) {
	if explicit := strings.TrimSpace(env[envConfig]); explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file %s: %w", explicit, err)
		}
		return explicit, nil
	}
	if home := strings.TrimSpace(env["XDG_CONFIG_HOME"]); home != "" {
		candidate := filepath.Join(home, configRelPath)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		return "", nil
	}
	path, err := xdg.SearchConfigFile(configRelPath)
	if err != nil {
		return "", nil
	}
	return path, nil
}

func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	if fc.Socket != "" {
		cfg.App.SocketPath = fc.Socket
	}
	if fc.RefreshInterval != "" {
		d, err := time.ParseDuration(fc.RefreshInterval)
		if err != nil {
			return fmt.Errorf("config %s: refresh_interval: %w", path, err)
		}
		cfg.App.RefreshInterval = d
	}
	if fc.TickInterval != "" {
		d, err := time.ParseDuration(fc.TickInterval)
		if err != nil {
			return fmt.Errorf("config %s: tick_interval: %w", path, err)
		}
		cfg.App.TickInterval = d
	}
	if fc.LogFile != "" {
		cfg.Logging.FilePath = fc.LogFile
	}
	if fc.Trace != nil {
		cfg.Logging.Trace = *fc.Trace
	}
	if fc.Debug != nil {
		cfg.Logging.Debug = *fc.Debug
	}
	if fc.Telemetry.File != "" {
		cfg.Telemetry.File = fc.Telemetry.File
	}
	return nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) (time.Duration, error) {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// Validate checks the loop timings: the tick must be positive and no slower
// than the refresh interval it drives.
func Validate(cfg Config) error {
	var errs []error
	if cfg.App.RefreshInterval <= 0 {
		errs = append(errs, fmt.Errorf("refresh interval must be > 0 (got %s)", cfg.App.RefreshInterval))
	}
	if cfg.App.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("tick interval must be > 0 (got %s)", cfg.App.TickInterval))
	}
	if len(errs) == 0 && cfg.App.TickInterval > cfg.App.RefreshInterval {
		errs = append(errs, fmt.Errorf("tick interval %s exceeds refresh interval %s", cfg.App.TickInterval, cfg.App.RefreshInterval))
	}
	return errors.Join(errs...)
}
