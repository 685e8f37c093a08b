package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/edgedock/internal/domain/entity"
	"github.com/bnema/edgedock/internal/domain/geometry"
)

// Cell glyphs of a rendered screen map.
const (
	GlyphScreen  = "·"
	GlyphPanel   = "█"
	GlyphHidden  = "░"
	GlyphTrigger = "┆"
	GlyphPointer = "●"
)

// ScreenMap is a scaled-down character picture of the screen, the panel and
// the trigger strip.
type ScreenMap struct {
	Screen          entity.Screen
	Geometry        entity.PanelGeometry
	TriggerDistance float64
	Visible         bool
	// Pointer is drawn when non-nil.
	Pointer *entity.Point
}

// Render draws the map into a cols x rows grid.
func (m ScreenMap) Render(theme *Theme, cols, rows int) string {
	cells := m.Cells(cols, rows)

	var b strings.Builder
	for y, row := range cells {
		for _, glyph := range row {
			b.WriteString(theme.cellStyle(glyph).Render(glyph))
		}
		if y < len(cells)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Cells returns the unstyled glyph grid, row by row.
func (m ScreenMap) Cells(cols, rows int) [][]string {
	cols = max(cols, 1)
	rows = max(rows, 1)

	frame := m.Screen.Frame
	cellW := frame.Width() / float64(cols)
	cellH := frame.Height() / float64(rows)
	trigger := geometry.TriggerZoneRect(m.Geometry.Edge, frame, m.TriggerDistance)

	pointerCol, pointerRow := -1, -1
	if m.Pointer != nil && cellW > 0 && cellH > 0 {
		// Clamped so a pointer on the far boundary lands in the last cell.
		pointerCol = min(int((m.Pointer.X-frame.Min.X)/cellW), cols-1)
		pointerRow = min(int((m.Pointer.Y-frame.Min.Y)/cellH), rows-1)
	}

	grid := make([][]string, rows)
	for y := range rows {
		grid[y] = make([]string, cols)
		for x := range cols {
			cell := entity.Rect{
				Min: entity.Point{X: frame.Min.X + float64(x)*cellW, Y: frame.Min.Y + float64(y)*cellH},
				Max: entity.Point{X: frame.Min.X + float64(x+1)*cellW, Y: frame.Min.Y + float64(y+1)*cellH},
			}

			switch {
			case x == pointerCol && y == pointerRow:
				grid[y][x] = GlyphPointer
			case m.Geometry.Rect.Overlaps(cell) && m.Visible:
				grid[y][x] = GlyphPanel
			case m.onEdge(x, y, cols, rows) || trigger.Overlaps(cell):
				grid[y][x] = GlyphTrigger
			case m.Geometry.Rect.Overlaps(cell):
				grid[y][x] = GlyphHidden
			default:
				grid[y][x] = GlyphScreen
			}
		}
	}
	return grid
}

// onEdge reports whether the cell touches the panel's edge. The boundary is
// always part of the trigger zone even when the strip is thinner than a cell.
func (m ScreenMap) onEdge(x, y, cols, rows int) bool {
	switch m.Geometry.Edge {
	case entity.EdgeTop:
		return y == 0
	case entity.EdgeBottom:
		return y == rows-1
	case entity.EdgeLeft:
		return x == 0
	default:
		return x == cols-1
	}
}

func (t *Theme) cellStyle(glyph string) lipgloss.Style {
	switch glyph {
	case GlyphPanel:
		return t.PanelCell
	case GlyphHidden:
		return t.HiddenCell
	case GlyphTrigger:
		return t.TriggerCell
	case GlyphPointer:
		return t.PointerCell
	default:
		return t.ScreenCell
	}
}
