package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/renflow/renflow/internal/api"
	"github.com/renflow/renflow/internal/config"
	"github.com/renflow/renflow/internal/flags"
	"github.com/renflow/renflow/internal/host"
	"github.com/renflow/renflow/internal/log"
	"github.com/renflow/renflow/internal/monitor"
	"github.com/renflow/renflow/internal/tracing"
	"github.com/renflow/renflow/internal/watcher"
	"github.com/renflow/renflow/internal/window"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the headless window host",
	Long: `Run the headless window host and expose the window commands over HTTP.

The front-end (or "renflow window") invokes commands with
POST /invoke/{command}. GET /windows lists live windows and GET /events
streams host events as server-sent events.

Window defaults are reloaded when the config file changes.

Example:
  renflow serve                        # Start on the configured address
  renflow serve --addr localhost:0     # Let the OS pick a port
  renflow serve --monitor              # Watch windows in the terminal`,
	RunE: runServe,
}

var (
	serveAddr    string
	serveMonitor bool
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Address to listen on (overrides config)")
	serveCmd.Flags().BoolVar(&serveMonitor, "monitor", false, "Show the terminal monitor while serving")
}

func runServe(_ *cobra.Command, _ []string) error {
	cleanup, err := initLogging("renflow-serve", serveMonitor)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	tp, err := tracing.NewProvider(tracingConfig(cfg.Tracing))
	if err != nil {
		return fmt.Errorf("creating tracing provider: %w", err)
	}

	decorator, err := window.DecoratorFor(cfg.Window.Platform)
	if err != nil {
		return err
	}

	featureFlags := flags.WithDefaults(cfg.Flags)
	h := host.New(host.Config{
		ScreenWidth:  cfg.Host.ScreenWidth,
		ScreenHeight: cfg.Host.ScreenHeight,
	})
	svc := window.NewService(window.Config{
		Host:      h,
		Decorator: decorator,
		Defaults:  cfg.Window.Defaults(),
		Tracer:    tp.Tracer(),
		Flags:     featureFlags,
	})

	// Priority: --addr flag > server.addr config
	addr := serveAddr
	if addr == "" {
		addr = cfg.Server.Addr
	}

	server, err := api.NewServer(api.ServerConfig{
		Addr:        addr,
		Windows:     svc,
		Registry:    h,
		Flags:       featureFlags,
		Tracer:      tp.Tracer(),
		ReadTimeout: cfg.Server.ReadTimeout,
	})
	if err != nil {
		return fmt.Errorf("creating API server: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	stopWatch := watchConfig(ctx, viper.ConfigFileUsed(), svc)
	defer stopWatch()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	log.Info(log.CatAPI, "Serving window commands", "addr", server.Addr(), "platform", decorator.Name())

	if serveMonitor {
		go func() {
			if err := monitor.Run(ctx, monitor.LocalSource{Host: h}); err != nil {
				log.ErrorErr(log.CatMonitor, "Monitor exited", err)
			}
			cancel()
		}()
	} else {
		fmt.Printf("renflow host listening on %s (decorator: %s)\n", server.Addr(), decorator.Name())
		fmt.Println("Press Ctrl+C to stop")
	}

	select {
	case <-ctx.Done():
		if !serveMonitor {
			fmt.Println("\nShutting down...")
		}
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Stop(shutdownCtx); err != nil {
		log.ErrorErr(log.CatAPI, "Error stopping API server", err)
	}
	h.Shutdown()
	if err := tp.Shutdown(shutdownCtx); err != nil {
		log.ErrorErr(log.CatTrace, "Error flushing traces", err)
	}

	if !serveMonitor {
		fmt.Println("Host stopped")
	}
	return nil
}

func tracingConfig(t config.TracingConfig) tracing.Config {
	return tracing.Config{
		Enabled:      t.Enabled,
		Exporter:     t.Exporter,
		FilePath:     t.FilePath,
		OTLPEndpoint: t.OTLPEndpoint,
		SampleRate:   t.SampleRate,
		ServiceName:  tracing.DefaultServiceName,
	}
}

// watchConfig reloads window defaults into svc whenever path changes. It is a
// no-op when no config file was loaded. The returned func stops the watcher.
func watchConfig(ctx context.Context, path string, svc *window.Service) func() {
	if path == "" {
		return func() {}
	}

	w, err := watcher.New(watcher.DefaultConfig(path))
	if err != nil {
		log.ErrorErr(log.CatWatcher, "Config watcher unavailable", err, "path", path)
		return func() {}
	}
	changes, err := w.Start()
	if err != nil {
		_ = w.Stop()
		log.ErrorErr(log.CatWatcher, "Config watcher unavailable", err, "path", path)
		return func() {}
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-changes:
				if !ok {
					return
				}
				if err := reloadDefaults(path, svc); err != nil {
					log.Warn(log.CatConfig, "Ignoring config change", "path", path, "error", err)
				}
			}
		}
	}()

	return func() { _ = w.Stop() }
}

// reloadDefaults re-reads path and swaps in its window section. An invalid
// file leaves the previous defaults in place.
func reloadDefaults(path string, svc *window.Service) error {
	v := viper.New()
	setDefaults(v, config.Defaults())
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	var next config.Config
	if err := v.Unmarshal(&next); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}
	if err := config.ValidateWindow(next.Window); err != nil {
		return err
	}

	svc.SetDefaults(next.Window.Defaults())
	log.Info(log.CatConfig, "Reloaded window defaults",
		"title", next.Window.Title, "width", next.Window.Width, "height", next.Window.Height)
	return nil
}
