package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/renflow/renflow/internal/api"
	"github.com/renflow/renflow/internal/window"
)

var (
	windowAddr    string
	windowTimeout time.Duration

	createLabel  string
	createURL    string
	createTitle  string
	createWidth  float64
	createHeight float64
)

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#73F59F")).Bold(true)
	kindStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF8787"))
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Send window commands to a running host",
	Long: `Send window commands to a running "renflow serve".

Each subcommand posts one invoke call and prints the reply: a status such
as "created" or "minimized", or true/false for is-maximized.

Examples:
  renflow window create --label settings --url /settings --title Settings
  renflow window minimize settings
  renflow window toggle-maximize settings
  renflow window is-maximized settings
  renflow window drag settings`,
}

var windowCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a window, or reveal it if the label already exists",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		opts := window.CreateOptions{Label: createLabel, URL: createURL}
		if cmd.Flags().Changed("title") {
			opts.Title = &createTitle
		}
		if cmd.Flags().Changed("width") {
			opts.Width = &createWidth
		}
		if cmd.Flags().Changed("height") {
			opts.Height = &createHeight
		}
		return invoke(cmd, api.CmdCreateWindow, api.InvokeArgs{Options: &opts})
	},
}

var windowDragCmd = &cobra.Command{
	Use:   "drag [label]",
	Short: "Start a native drag of the window",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var a api.InvokeArgs
		if len(args) == 1 {
			a.Label = &args[0]
		}
		return invoke(cmd, api.CmdStartDragging, a)
	},
}

// labelCommands are the subcommands that take exactly one label.
var labelCommands = []struct {
	use, short, command string
}{
	{"close", "Close the window", api.CmdCloseWindow},
	{"show", "Show and focus the window", api.CmdShowWindow},
	{"hide", "Hide the window", api.CmdHideWindow},
	{"minimize", "Minimize the window", api.CmdMinimize},
	{"maximize", "Maximize the window", api.CmdMaximize},
	{"unmaximize", "Restore the window from maximized", api.CmdUnmaximize},
	{"toggle-maximize", "Maximize or restore the window", api.CmdToggleMaximize},
	{"is-maximized", "Report whether the window is maximized", api.CmdIsMaximized},
}

func init() {
	rootCmd.AddCommand(windowCmd)

	windowCmd.PersistentFlags().StringVar(&windowAddr, "addr", "", "Host address (default: server.addr from config)")
	windowCmd.PersistentFlags().DurationVar(&windowTimeout, "timeout", 10*time.Second, "Request timeout")

	windowCreateCmd.Flags().StringVarP(&createLabel, "label", "l", "", "Window label")
	windowCreateCmd.Flags().StringVarP(&createURL, "url", "u", "", "Page to load, relative to the app or absolute")
	windowCreateCmd.Flags().StringVarP(&createTitle, "title", "t", "", "Window title (default: window.title)")
	windowCreateCmd.Flags().Float64Var(&createWidth, "width", 0, "Inner width (default: window.width)")
	windowCreateCmd.Flags().Float64Var(&createHeight, "height", 0, "Inner height (default: window.height)")
	windowCmd.AddCommand(windowCreateCmd, windowDragCmd)

	for _, lc := range labelCommands {
		command := lc.command
		windowCmd.AddCommand(&cobra.Command{
			Use:   lc.use + " <label>",
			Short: lc.short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return invoke(cmd, command, api.InvokeArgs{Label: &args[0]})
			},
		})
	}
}

func invoke(cmd *cobra.Command, command string, args api.InvokeArgs) error {
	addr := windowAddr
	if addr == "" {
		addr = cfg.Server.Addr
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), windowTimeout)
	defer cancel()

	value, err := api.NewClient(addr).Invoke(ctx, command, args)
	if err != nil {
		return formatInvokeError(cmd.ErrOrStderr(), err)
	}
	printValue(cmd.OutOrStdout(), value)
	return nil
}

func printValue(w io.Writer, value any) {
	switch v := value.(type) {
	case string:
		_, _ = fmt.Fprintln(w, statusStyle.Render(v))
	default:
		_, _ = fmt.Fprintln(w, v)
	}
}

// formatInvokeError prints the reply's kind next to the message so scripts can
// tell a missing window from a host failure.
func formatInvokeError(w io.Writer, err error) error {
	var remote *api.RemoteError
	if errors.As(err, &remote) && remote.Kind != "" {
		_, _ = fmt.Fprintln(w, kindStyle.Render("["+remote.Kind+"]"), remote.Msg)
	}
	return err
}
