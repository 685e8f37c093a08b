package styles

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/edgedock/internal/application/usecase"
	"github.com/bnema/edgedock/internal/domain/entity"
	"github.com/bnema/edgedock/internal/ui/simulate"
)

// Map size used by non-interactive commands.
const (
	mapCols = 48
	mapRows = 15
)

// CLIRenderer renders non-interactive command output.
type CLIRenderer struct {
	theme *Theme
}

// NewCLIRenderer creates a renderer with the given theme.
func NewCLIRenderer(theme *Theme) *CLIRenderer {
	return &CLIRenderer{theme: theme}
}

// RenderError formats err with an error marker.
func (r *CLIRenderer) RenderError(err error) string {
	return fmt.Sprintf("%s %v", r.theme.ErrorStyle.Render(IconX), err)
}

// RenderSuccess formats a one-line success message.
func (r *CLIRenderer) RenderSuccess(msg string) string {
	return fmt.Sprintf("%s %s", r.theme.SuccessStyle.Render(IconCheck), msg)
}

// RenderWarning formats a one-line warning.
func (r *CLIRenderer) RenderWarning(msg string) string {
	return fmt.Sprintf("%s %s", r.theme.WarningStyle.Render(IconWarning), msg)
}

// RenderKV renders aligned key/value lines.
func (r *CLIRenderer) RenderKV(pairs [][2]string) string {
	width := 0
	for _, p := range pairs {
		width = max(width, lipgloss.Width(p[0]))
	}

	lines := make([]string, 0, len(pairs))
	keyStyle := r.theme.Subtle.Width(width + 2)
	for _, p := range pairs {
		lines = append(lines, keyStyle.Render(p[0])+r.theme.Normal.Render(p[1]))
	}
	return strings.Join(lines, "\n")
}

// RenderGeometry renders one block per layout with a screen map.
func (r *CLIRenderer) RenderGeometry(screen entity.Screen, triggerDistance float64, layouts []usecase.EdgeLayout) string {
	blocks := make([]string, 0, len(layouts))
	for _, l := range layouts {
		geo := l.Geometry
		header := r.theme.BoxHeader.Render(fmt.Sprintf("%s %s", r.theme.EdgeBadge(string(geo.Edge)), "edge"))

		info := r.RenderKV([][2]string{
			{"panel", fmt.Sprintf("%gx%g", geo.Size.W, geo.Size.H)},
			{"anchor", FormatPoint(geo.Anchor)},
			{"visible", FormatRect(geo.Rect)},
			{"hidden", FormatRect(l.HiddenRect)},
			{"trigger", FormatRect(l.TriggerZone)},
		})

		m := ScreenMap{Screen: screen, Geometry: geo, TriggerDistance: triggerDistance, Visible: true}
		body := lipgloss.JoinHorizontal(lipgloss.Top, info, "   ", m.Render(r.theme, mapCols, mapRows))

		parts := []string{header, body}
		for _, f := range l.Findings {
			parts = append(parts, r.RenderWarning(f.Error()))
		}
		blocks = append(blocks, strings.Join(parts, "\n"))
	}
	return strings.Join(blocks, "\n\n")
}

// RenderTimeline renders replay events one per line.
func (r *CLIRenderer) RenderTimeline(tl *simulate.Timeline) string {
	if len(tl.Events) == 0 {
		return r.theme.Subtle.Render("no transitions")
	}

	lines := make([]string, 0, len(tl.Events)+2)
	for _, ev := range tl.Events {
		at := r.theme.Subtle.Width(10).Align(lipgloss.Right).Render(FormatOffset(ev.At))
		lines = append(lines, fmt.Sprintf("%s  %s", at, r.eventLabel(ev)))
	}

	lines = append(lines, "", r.RenderKV([][2]string{
		{"final", string(tl.Final.State)},
		{"pending hide", fmt.Sprintf("%t", tl.Final.PendingHide)},
		{"duration", FormatOffset(tl.Duration)},
	}))
	return strings.Join(lines, "\n")
}

func (r *CLIRenderer) eventLabel(ev simulate.Event) string {
	switch ev.Kind {
	case simulate.EventShown:
		return r.theme.SuccessStyle.Render(IconEye+" shown") + " " + r.theme.Subtle.Render(FormatRect(ev.Geometry.Rect))
	case simulate.EventHidden:
		return r.theme.Subtle.Render(IconEyeSlash + " hidden")
	case simulate.EventRepositioned:
		return r.theme.Highlight.Render(IconArrow+" repositioned") + " " + r.theme.Subtle.Render(FormatRect(ev.Geometry.Rect))
	case simulate.EventUnavailable:
		return r.theme.WarningStyle.Render(IconLock + " pointer unavailable")
	case simulate.EventAvailable:
		return r.theme.Normal.Render(IconPointer + " pointer available")
	default:
		return string(ev.Kind)
	}
}

// RenderTable renders rows under columns as a static table.
func (r *CLIRenderer) RenderTable(columns []table.Column, rows []table.Row) string {
	t := NewStyledTable(r.theme, columns, rows, len(rows)+1)
	return t.View()
}

// FormatPoint formats a point as (x,y).
func FormatPoint(p entity.Point) string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// FormatRect formats a rect as x0..x1 y0..y1.
func FormatRect(rect entity.Rect) string {
	return fmt.Sprintf("x %g..%g  y %g..%g", rect.Min.X, rect.Max.X, rect.Min.Y, rect.Max.Y)
}

// FormatOffset formats a replay offset as seconds with millisecond precision.
func FormatOffset(d time.Duration) string {
	return fmt.Sprintf("%.3fs", d.Seconds())
}
