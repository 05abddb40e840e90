package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	require.Equal(t, DefaultAddr, cfg.Server.Addr)
	require.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	require.Equal(t, "Ren Flow", cfg.Window.Title)
	require.Equal(t, 850.0, cfg.Window.Width)
	require.Equal(t, 530.0, cfg.Window.Height)
	require.Empty(t, cfg.Window.Platform)
	require.Equal(t, 1920.0, cfg.Host.ScreenWidth)
	require.False(t, cfg.Tracing.Enabled)
	require.NoError(t, Validate(cfg))
}

func TestWindowConfig_Defaults(t *testing.T) {
	d := WindowConfig{Title: "T", Width: 1, Height: 2, Platform: "mica"}.Defaults()
	require.Equal(t, "T", d.Title)
	require.Equal(t, 1.0, d.Width)
	require.Equal(t, 2.0, d.Height)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"empty addr", func(c *Config) { c.Server.Addr = "" }, "server.addr must not be empty"},
		{"negative timeout", func(c *Config) { c.Server.ReadTimeout = -time.Second }, "server.read_timeout"},
		{"zero width", func(c *Config) { c.Window.Width = 0 }, "window.width must be positive"},
		{"negative height", func(c *Config) { c.Window.Height = -5 }, "window.height must be positive"},
		{"unknown platform", func(c *Config) { c.Window.Platform = "beos" }, `window.platform: unknown window platform "beos"`},
		{"negative screen", func(c *Config) { c.Host.ScreenWidth = -1 }, "host screen size"},
		{"bad sample rate", func(c *Config) { c.Tracing.SampleRate = 2 }, "tracing.sample_rate"},
		{"bad exporter", func(c *Config) { c.Tracing.Exporter = "zipkin" }, "tracing.exporter"},
		{"file exporter without path", func(c *Config) {
			c.Tracing.Enabled = true
			c.Tracing.FilePath = ""
		}, "tracing.file_path is required"},
		{"otlp without endpoint", func(c *Config) {
			c.Tracing.Enabled = true
			c.Tracing.Exporter = "otlp"
			c.Tracing.OTLPEndpoint = ""
		}, "tracing.otlp_endpoint is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := Validate(cfg)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateWindow_KnownPlatforms(t *testing.T) {
	for _, p := range []string{"", "darwin", "linux", "windows", "overlay", "borderless", "mica", "plain"} {
		require.NoError(t, ValidateWindow(WindowConfig{Width: 1, Height: 1, Platform: p}), p)
	}
}

func TestDefaultConfigTemplate_ParsesToDefaults(t *testing.T) {
	var parsed struct {
		Server struct {
			Addr        string `yaml:"addr"`
			ReadTimeout string `yaml:"read_timeout"`
		} `yaml:"server"`
		Window struct {
			Title  string  `yaml:"title"`
			Width  float64 `yaml:"width"`
			Height float64 `yaml:"height"`
		} `yaml:"window"`
		Flags map[string]bool `yaml:"flags"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(DefaultConfigTemplate()), &parsed))

	d := Defaults()
	require.Equal(t, d.Server.Addr, parsed.Server.Addr)
	require.Equal(t, d.Server.ReadTimeout.String(), "10s")
	require.Equal(t, "10s", parsed.Server.ReadTimeout)
	require.Equal(t, d.Window.Title, parsed.Window.Title)
	require.Equal(t, d.Window.Width, parsed.Window.Width)
	require.Equal(t, d.Window.Height, parsed.Window.Height)
	require.True(t, parsed.Flags["backdrop-effects"])
	require.True(t, parsed.Flags["event-stream"])
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	require.NoError(t, WriteDefaultConfig(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "# Ren Flow window host configuration"))
}
