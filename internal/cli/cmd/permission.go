package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/edgedock/internal/application/usecase"
)

var permissionPrompt bool

var permissionCmd = &cobra.Command{
	Use:   "permission",
	Short: "Check global pointer access",
	Long: `Report whether edgedock may read the global pointer position. On macOS this
is the Accessibility permission; --prompt asks the system to show its
permission dialog when access has not been granted yet.

The command exits non-zero while access is missing.`,
	RunE: runPermission,
}

func init() {
	rootCmd.AddCommand(permissionCmd)
	permissionCmd.Flags().BoolVar(&permissionPrompt, "prompt", false, "request access when not yet granted")
}

func runPermission(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	out, err := app.PermissionUC.Execute(app.Ctx(), usecase.CheckPermissionInput{Prompt: permissionPrompt})
	if err != nil {
		return err
	}

	if out.Trusted {
		fmt.Println(app.Renderer.RenderSuccess("pointer access granted"))
		return nil
	}
	if out.Prompted {
		fmt.Println(app.Renderer.RenderWarning("access requested, grant it in System Settings and run again"))
	} else {
		fmt.Println(app.Renderer.RenderWarning("pointer access not granted (run with --prompt to request it)"))
	}
	return errors.New("pointer access unavailable")
}
