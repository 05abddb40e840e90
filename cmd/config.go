package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/renflow/renflow/internal/config"
)

var (
	configForce bool

	defaultsTitle  string
	defaultsWidth  float64
	defaultsHeight float64
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the renflow config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default config file",
	Long: `Write the commented default config file.

Without a path the file goes to .renflow/config.yaml. An existing file is
left alone unless --force is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := localConfigPath
		if len(args) == 1 {
			path = args[0]
		}
		if _, err := os.Stat(path); err == nil && !configForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("checking %s: %w", path, err)
		}

		if err := config.WriteDefaultConfig(path); err != nil {
			return err
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Wrote", path)
		return nil
	},
}

var configWindowCmd = &cobra.Command{
	Use:   "window",
	Short: "Update the window defaults in the config file",
	Long: `Update window.title, window.width or window.height in place, keeping
the rest of the file and its comments. A running serve picks the change up
without a restart.

Example:
  renflow config window --title "Ren Flow" --width 1024 --height 640`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		var upd config.WindowDefaultsUpdate
		if cmd.Flags().Changed("title") {
			upd.Title = &defaultsTitle
		}
		if cmd.Flags().Changed("width") {
			upd.Width = &defaultsWidth
		}
		if cmd.Flags().Changed("height") {
			upd.Height = &defaultsHeight
		}
		if upd.Title == nil && upd.Width == nil && upd.Height == nil {
			return errors.New("nothing to update: pass --title, --width or --height")
		}

		next := cfg.Window
		if upd.Title != nil {
			next.Title = *upd.Title
		}
		if upd.Width != nil {
			next.Width = *upd.Width
		}
		if upd.Height != nil {
			next.Height = *upd.Height
		}
		if err := config.ValidateWindow(next); err != nil {
			return err
		}

		path := configPath()
		if err := config.SaveWindowDefaults(path, upd); err != nil {
			return err
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Updated", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd, configWindowCmd)

	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "Overwrite an existing file")

	configWindowCmd.Flags().StringVar(&defaultsTitle, "title", "", "Default window title")
	configWindowCmd.Flags().Float64Var(&defaultsWidth, "width", 0, "Default inner width")
	configWindowCmd.Flags().Float64Var(&defaultsHeight, "height", 0, "Default inner height")
}
