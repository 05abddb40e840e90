package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/renflow/renflow/internal/api"
	"github.com/renflow/renflow/internal/monitor"
)

var monitorAddr string

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Watch the windows of a running host",
	Long: `Open a terminal view of a running "renflow serve": the live windows with
their state, and a tail of window events.

Keys: r refresh, c clear events, q quit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cleanup, err := initLogging("renflow-monitor", true)
		if err != nil {
			return err
		}
		defer cleanup()

		addr := monitorAddr
		if addr == "" {
			addr = cfg.Server.Addr
		}

		client := api.NewClient(addr)
		if _, err := client.Health(cmd.Context()); err != nil {
			return fmt.Errorf("no renflow host at %s: %w", addr, err)
		}
		return monitor.Run(cmd.Context(), monitor.RemoteSource{Client: client, Addr: addr})
	},
}

func init() {
	rootCmd.AddCommand(monitorCmd)

	monitorCmd.Flags().StringVar(&monitorAddr, "addr", "", "Host address (default: server.addr from config)")
}
