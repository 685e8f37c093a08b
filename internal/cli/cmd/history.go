package cmd

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/bnema/edgedock/internal/cli/styles"
)

const defaultHistoryMax = 20

var (
	historyJSON   bool
	historyMax    int
	historyCounts bool
	historyPrune  bool
	historyDays   int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show launch history",
	Long: `Show recent dock launches, or launches per item with --counts.

Examples:
  edgedock history
  edgedock history --counts
  edgedock history --prune --days 30`,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output as JSON")
	historyCmd.Flags().IntVar(&historyMax, "max", defaultHistoryMax, "maximum launches to show")
	historyCmd.Flags().BoolVar(&historyCounts, "counts", false, "show successful launches per item")
	historyCmd.Flags().BoolVar(&historyPrune, "prune", false, "delete launches older than the retention period")
	historyCmd.Flags().IntVar(&historyDays, "days", 0, "retention in days for --prune (default: database.retention_days)")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	ctx := app.Ctx()

	switch {
	case historyPrune:
		days := app.Manager.Get().Database.RetentionDays
		if cmd.Flags().Changed("days") {
			days = historyDays
		}
		deleted, err := app.HistoryUC.Prune(ctx, days)
		if err != nil {
			return err
		}
		fmt.Println(app.Renderer.RenderSuccess(fmt.Sprintf("deleted %d launches", deleted)))
		return nil

	case historyCounts:
		counts, err := app.HistoryUC.Counts(ctx)
		if err != nil {
			return err
		}
		if historyJSON {
			out := make([]jsonCount, 0, len(counts))
			for _, c := range counts {
				out = append(out, jsonCount{ItemID: string(c.ItemID), Name: c.Name, Count: c.Count, LastLaunched: c.LastLaunched})
			}
			return printJSON(out)
		}
		rows := make([]table.Row, 0, len(counts))
		for _, c := range counts {
			rows = append(rows, styles.CountRow(c))
		}
		return printTable(app.Renderer, styles.CountTableColumns(), rows)

	default:
		recent, err := app.HistoryUC.Recent(ctx, historyMax)
		if err != nil {
			return err
		}
		if historyJSON {
			out := make([]jsonLaunch, 0, len(recent))
			for _, r := range recent {
				out = append(out, jsonLaunch{
					ItemID:     string(r.ItemID),
					Name:       r.Name,
					Target:     r.Target,
					LaunchedAt: r.LaunchedAt,
					Success:    r.Success,
					Error:      r.Error,
				})
			}
			return printJSON(out)
		}
		rows := make([]table.Row, 0, len(recent))
		for _, r := range recent {
			rows = append(rows, styles.LaunchRow(r))
		}
		return printTable(app.Renderer, styles.LaunchTableColumns(), rows)
	}
}

func printTable(r *styles.CLIRenderer, columns []table.Column, rows []table.Row) error {
	if len(rows) == 0 {
		fmt.Println(r.RenderWarning("no launches recorded yet"))
		return nil
	}
	fmt.Println(r.RenderTable(columns, rows))
	return nil
}

type jsonLaunch struct {
	ItemID     string    `json:"item_id"`
	Name       string    `json:"name"`
	Target     string    `json:"target"`
	LaunchedAt time.Time `json:"launched_at"`
	Success    bool      `json:"success"`
	Error      string    `json:"error,omitempty"`
}

type jsonCount struct {
	ItemID       string    `json:"item_id"`
	Name         string    `json:"name"`
	Count        int64     `json:"count"`
	LastLaunched time.Time `json:"last_launched"`
}
