package styles

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// LaunchBadge renders a launch count badge.
func (t *Theme) LaunchBadge(count int64) string {
	text := fmt.Sprintf("%d launches", count)
	if count == 1 {
		text = "1 launch"
	}
	return t.BadgeMuted.Render(text)
}

// TimeBadge renders a relative time badge.
func (t *Theme) TimeBadge(tm time.Time) string {
	return t.BadgeMuted.Render(RelativeTime(tm))
}

// EdgeBadge renders the edge name with the accent color.
func (t *Theme) EdgeBadge(edge string) string {
	return t.Badge.Render(edge)
}

// VisibilityBadge renders "visible" or "hidden".
func (t *Theme) VisibilityBadge(visible bool) string {
	if visible {
		return t.StatusBadge(IconEye+" visible", t.Background, t.Success)
	}
	return t.BadgeMuted.Render(IconEyeSlash + " hidden")
}

// ResultBadge renders "ok" or "failed".
func (t *Theme) ResultBadge(success bool) string {
	if success {
		return t.StatusBadge("ok", t.Background, t.Success)
	}
	return t.StatusBadge("failed", t.Background, t.Error)
}

// StatusBadge renders a status badge with custom colors.
func (t *Theme) StatusBadge(text string, fg, bg lipgloss.Color) string {
	style := lipgloss.NewStyle().
		Foreground(fg).
		Background(bg).
		Padding(0, 1)
	return style.Render(text)
}

// RelativeTime formats a time as a short "3h ago" string.
func RelativeTime(tm time.Time) string {
	return relativeTime(time.Now(), tm)
}

func relativeTime(now, tm time.Time) string {
	diff := now.Sub(tm)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		mins := int(diff.Minutes())
		if mins == 1 {
			return "1m ago"
		}
		return fmt.Sprintf("%dm ago", mins)
	case diff < 24*time.Hour:
		hours := int(diff.Hours())
		if hours == 1 {
			return "1h ago"
		}
		return fmt.Sprintf("%dh ago", hours)
	case diff < 7*24*time.Hour:
		days := int(diff.Hours() / 24)
		if days == 1 {
			return "1d ago"
		}
		return fmt.Sprintf("%dd ago", days)
	case diff < 30*24*time.Hour:
		weeks := int(diff.Hours() / (24 * 7))
		if weeks == 1 {
			return "1w ago"
		}
		return fmt.Sprintf("%dw ago", weeks)
	default:
		months := int(diff.Hours() / (24 * 30))
		if months == 1 {
			return "1mo ago"
		}
		return fmt.Sprintf("%dmo ago", months)
	}
}
