package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/edgedock/internal/infrastructure/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
	Long:  `Show the config file location, the effective settings and the JSON schema.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE:  runConfigPath,
}

var configStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the config file and effective dock settings",
	RunE:  runConfigStatus,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	RunE:  runConfigShow,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the config JSON schema",
	Long: `Print the JSON schema of config.toml. Editors with TOML schema support pick
it up through the #:schema comment at the top of the generated config.`,
	RunE: runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configStatusCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSchemaCmd)
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	fmt.Println(app.Manager.GetConfigFile())
	return nil
}

func runConfigStatus(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	path := app.Manager.GetConfigFile()
	if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
		fmt.Println(app.Renderer.RenderWarning("no config file at " + path + ", using defaults"))
	} else {
		fmt.Println(app.Renderer.RenderSuccess(path))
	}
	fmt.Println()

	cfg := app.Manager.Get()
	settings, err := cfg.DockSettings()
	if err != nil {
		return err
	}

	hotkey := "disabled"
	if cfg.Hotkey.Enabled {
		hotkey = strings.Join(append(append([]string(nil), cfg.Hotkey.Modifiers...), cfg.Hotkey.Key), "+")
	}

	fmt.Println(app.Renderer.RenderKV([][2]string{
		{"edge", string(settings.Edge)},
		{"edge offset", strconv.FormatFloat(settings.EdgeOffset, 'g', -1, 64)},
		{"trigger distance", strconv.FormatFloat(settings.TriggerDistance, 'g', -1, 64)},
		{"hide delay", settings.HideDelay.String()},
		{"items", strconv.Itoa(len(cfg.Items))},
		{"poll interval", cfg.PollInterval().String()},
		{"hotkey", hotkey},
		{"notifications", strconv.FormatBool(cfg.Notifications.Enabled)},
		{"database", cfg.Database.Path},
		{"log level", cfg.Logging.Level},
	}))
	return nil
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	data, err := config.EncodeConfig(app.Manager.Get())
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	schema, err := config.GenerateSchema()
	if err != nil {
		return err
	}
	_, err = fmt.Println(string(schema))
	return err
}
