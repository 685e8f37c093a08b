package styles

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/edgedock/internal/domain/entity"
)

const timeLayout = "2006-01-02 15:04:05"

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	// Static output has no cursor, so the selected row looks like any other.
	s.Selected = s.Cell.
		Foreground(theme.Text)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// LaunchTableColumns returns columns for the recent launches table.
func LaunchTableColumns() []table.Column {
	return []table.Column{
		{Title: "When", Width: 20},
		{Title: "Item", Width: 18},
		{Title: "Target", Width: 28},
		{Title: "Result", Width: 30},
	}
}

// LaunchRow converts a launch record to a table row.
func LaunchRow(r *entity.LaunchRecord) table.Row {
	result := "ok"
	if !r.Success {
		result = "failed: " + r.Error
	}
	return table.Row{r.LaunchedAt.Local().Format(timeLayout), r.Name, r.Target, result}
}

// CountTableColumns returns columns for the per-item launch counts table.
func CountTableColumns() []table.Column {
	return []table.Column{
		{Title: "Item", Width: 20},
		{Title: "Launches", Width: 10},
		{Title: "Last", Width: 12},
	}
}

// CountRow converts a launch count to a table row.
func CountRow(c *entity.LaunchCount) table.Row {
	return table.Row{c.Name, formatInt(c.Count), RelativeTime(c.LastLaunched)}
}

// ItemTableColumns returns columns for the dock items table.
func ItemTableColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 3},
		{Title: "ID", Width: 16},
		{Title: "Name", Width: 18},
		{Title: "Icon", Width: 16},
		{Title: "Target", Width: 30},
	}
}

// ItemRow converts a dock item to a table row.
func ItemRow(i int, item entity.DockItem) table.Row {
	return table.Row{strconv.Itoa(i + 1), string(item.ID), item.Name, item.Icon, item.Target}
}

// formatInt formats an integer for display.
func formatInt(n int64) string {
	switch {
	case n >= 1000000:
		return strconv.FormatFloat(float64(n)/1000000, 'f', 1, 64) + "M"
	case n >= 1000:
		return strconv.FormatFloat(float64(n)/1000, 'f', 1, 64) + "K"
	default:
		return strconv.FormatInt(n, 10)
	}
}
