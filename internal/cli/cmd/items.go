package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/bnema/edgedock/internal/application/usecase"
	"github.com/bnema/edgedock/internal/cli/styles"
	"github.com/bnema/edgedock/internal/domain/entity"
)

var itemsJSON bool

var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "List the configured dock items",
	RunE:  runItems,
}

var launchCmd = &cobra.Command{
	Use:   "launch <id|name>",
	Short: "Launch a dock item",
	Long: `Launch a dock item by ID, or by name ignoring case, exactly as clicking it
in the panel would. The launch is recorded in the history.

Examples:
  edgedock launch terminal
  edgedock launch "System Settings"`,
	Args: cobra.ExactArgs(1),
	RunE: runLaunch,
}

func init() {
	rootCmd.AddCommand(itemsCmd)
	rootCmd.AddCommand(launchCmd)
	itemsCmd.Flags().BoolVar(&itemsJSON, "json", false, "output as JSON")
}

type jsonItem struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Icon   string `json:"icon,omitempty"`
	Target string `json:"target"`
}

func runItems(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	items := app.Manager.Get().DockItems()

	if itemsJSON {
		out := make([]jsonItem, 0, len(items))
		for _, it := range items {
			out = append(out, jsonItem{ID: string(it.ID), Name: it.Name, Icon: it.Icon, Target: it.Target})
		}
		return printJSON(out)
	}

	if len(items) == 0 {
		fmt.Println(app.Renderer.RenderWarning("no items configured"))
		return nil
	}
	rows := make([]table.Row, 0, len(items))
	for i, it := range items {
		rows = append(rows, styles.ItemRow(i, it))
	}
	fmt.Println(app.Renderer.RenderTable(styles.ItemTableColumns(), rows))
	return nil
}

func runLaunch(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	out, err := app.LaunchUC.Execute(app.Ctx(), usecase.LaunchItemInput{Ref: args[0]})
	if errors.Is(err, entity.ErrItemNotFound) {
		fmt.Println(app.Renderer.RenderError(err))
		fmt.Println(app.Theme.Subtle.Render("Hint: run `edgedock items` to list configured items."))
		return err
	}
	if err != nil {
		return err
	}

	fmt.Println(app.Renderer.RenderSuccess(fmt.Sprintf("launched %s (%s)", out.Item.Name, out.Item.Target)))
	return nil
}
