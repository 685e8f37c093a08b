package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/edgedock/internal/cli/styles"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show version and build information",
	Long:  `Display version, build info, repository URL, and contributors.`,
	RunE:  runAbout,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("edgedock %s (%s, %s)\n", buildInfo.Version, buildInfo.Commit, buildInfo.GoVersion)
	},
}

func init() {
	rootCmd.AddCommand(aboutCmd)
	rootCmd.AddCommand(versionCmd)
}

func runAbout(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	renderer := styles.NewAboutRenderer(app.Theme)
	fmt.Println(renderer.Render(app.BuildInfo))
	return nil
}
