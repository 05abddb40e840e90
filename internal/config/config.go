// Package config provides configuration types and defaults for renflow.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/renflow/renflow/internal/log"
	"github.com/renflow/renflow/internal/window"
)

// Config holds all configuration options for renflow.
type Config struct {
	Server  ServerConfig    `mapstructure:"server"`
	Window  WindowConfig    `mapstructure:"window"`
	Host    HostConfig      `mapstructure:"host"`
	Tracing TracingConfig   `mapstructure:"tracing"`
	Flags   map[string]bool `mapstructure:"flags"`
}

// ServerConfig configures the HTTP invoke bridge.
type ServerConfig struct {
	Addr        string        `mapstructure:"addr"`
	ReadTimeout time.Duration `mapstructure:"read_timeout"`
}

// WindowConfig holds the defaults applied when a create request omits them.
type WindowConfig struct {
	Title  string  `mapstructure:"title"`
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`
	// Platform overrides decorator selection: a GOOS name or one of
	// "overlay", "borderless", "mica", "plain". Empty uses the running OS.
	Platform string `mapstructure:"platform"`
}

// Defaults converts the section to window.Defaults.
func (w WindowConfig) Defaults() window.Defaults {
	return window.Defaults{Title: w.Title, Width: w.Width, Height: w.Height}
}

// HostConfig configures the headless host.
type HostConfig struct {
	ScreenWidth  float64 `mapstructure:"screen_width"`
	ScreenHeight float64 `mapstructure:"screen_height"`
}

// TracingConfig holds OpenTelemetry configuration.
type TracingConfig struct {
	// Enabled controls whether tracing is active.
	// Default: false
	Enabled bool `mapstructure:"enabled"`

	// Exporter selects the trace export backend.
	// Options: "none", "file", "stdout", "otlp"
	// Default: "file"
	Exporter string `mapstructure:"exporter"`

	// FilePath is the output file for "file" exporter.
	// Default: ~/.config/renflow/traces/traces.jsonl
	FilePath string `mapstructure:"file_path"`

	// OTLPEndpoint is the collector endpoint for "otlp" exporter.
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`

	// SampleRate controls trace sampling (0.0 to 1.0).
	SampleRate float64 `mapstructure:"sample_rate"`
}

// DefaultAddr is where serve listens and the CLI client connects.
const DefaultAddr = "localhost:17420"

// DefaultTracesFilePath returns ~/.config/renflow/traces/traces.jsonl, or ""
// when the home directory is unavailable.
func DefaultTracesFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "renflow", "traces", "traces.jsonl")
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		Server: ServerConfig{
			Addr:        DefaultAddr,
			ReadTimeout: 10 * time.Second,
		},
		Window: WindowConfig{
			Title:  window.DefaultTitle,
			Width:  window.DefaultWidth,
			Height: window.DefaultHeight,
		},
		Host: HostConfig{
			ScreenWidth:  1920,
			ScreenHeight: 1080,
		},
		Tracing: TracingConfig{
			Enabled:      false,
			Exporter:     "file",
			FilePath:     DefaultTracesFilePath(),
			OTLPEndpoint: "localhost:4317",
			SampleRate:   1.0,
		},
		Flags: map[string]bool{},
	}
}

// Validate checks the whole configuration.
func Validate(cfg Config) error {
	if cfg.Server.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}
	if cfg.Server.ReadTimeout < 0 {
		return fmt.Errorf("server.read_timeout must not be negative, got %v", cfg.Server.ReadTimeout)
	}
	if err := ValidateWindow(cfg.Window); err != nil {
		return err
	}
	if cfg.Host.ScreenWidth < 0 || cfg.Host.ScreenHeight < 0 {
		return fmt.Errorf("host screen size must not be negative, got %gx%g", cfg.Host.ScreenWidth, cfg.Host.ScreenHeight)
	}
	return ValidateTracing(cfg.Tracing)
}

// ValidateWindow checks window defaults and the platform override.
func ValidateWindow(w WindowConfig) error {
	if w.Width <= 0 {
		return fmt.Errorf("window.width must be positive, got %v", w.Width)
	}
	if w.Height <= 0 {
		return fmt.Errorf("window.height must be positive, got %v", w.Height)
	}
	if _, err := window.DecoratorFor(w.Platform); err != nil {
		return fmt.Errorf("window.platform: %w", err)
	}
	return nil
}

// ValidateTracing checks tracing configuration for errors.
func ValidateTracing(tracing TracingConfig) error {
	if tracing.SampleRate < 0.0 || tracing.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", tracing.SampleRate)
	}

	if tracing.Exporter != "" {
		switch tracing.Exporter {
		case "none", "file", "stdout", "otlp":
		default:
			return fmt.Errorf("tracing.exporter must be \"none\", \"file\", \"stdout\", or \"otlp\", got %q", tracing.Exporter)
		}
	}

	if tracing.Enabled {
		if tracing.Exporter == "file" && tracing.FilePath == "" {
			return fmt.Errorf("tracing.file_path is required when exporter is \"file\"")
		}
		if tracing.Exporter == "otlp" && tracing.OTLPEndpoint == "" {
			return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
		}
	}

	return nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Ren Flow window host configuration

# HTTP invoke bridge
server:
  addr: localhost:17420
  read_timeout: 10s

# Defaults for create requests that omit title or size.
# Changes are picked up by a running "renflow serve" without a restart.
window:
  title: Ren Flow
  width: 850
  height: 530
  # platform: overlay   # overlay | borderless | mica | plain (default: current OS)

# Headless host screen size, used for maximize and centering
host:
  screen_width: 1920
  screen_height: 1080

# OpenTelemetry tracing
# tracing:
#   enabled: true
#   exporter: file        # none | file | stdout | otlp
#   file_path: ~/.config/renflow/traces/traces.jsonl
#   otlp_endpoint: localhost:4317
#   sample_rate: 1.0

# Feature flags
flags:
  backdrop-effects: true  # apply the mica backdrop after build on windows
  event-stream: true      # serve GET /events
`
}

// WriteDefaultConfig creates a config file at the given path with default
// settings and comments. Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
