// Package cmd provides Cobra CLI commands for edgedock.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/edgedock/internal/cli"
	"github.com/bnema/edgedock/internal/domain/build"
)

var (
	app        *cli.App
	buildInfo  build.Info
	configFile string
	logLevel   string
	rootCmd    = &cobra.Command{
		Use:   "edgedock",
		Short: "An auto-hiding dock that slides in from a screen edge",
		Long: `edgedock - a launcher panel that hides off-screen and slides back in
when the pointer touches a screen edge.

The panel sits on the left, right, top or bottom edge. Moving the pointer
into the trigger strip along that edge shows it; leaving it hides the panel
again after a short delay.

Use 'edgedock run' to start the dock, or explore the subcommands to preview
and simulate placement, launch items and inspect launch history.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs", "version":
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.Options{
				ConfigFile: configFile,
				LogLevel:   logLevel,
				FileLog:    cmd.Name() == runCmd.Name(),
			})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			// Set build info from main.go
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default $XDG_CONFIG_HOME/edgedock/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

func requireApp() (*cli.App, error) {
	a := GetApp()
	if a == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return a, nil
}
