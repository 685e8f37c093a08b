// Package geometry maps an edge, panel content and offset to panel placement
// and pointer hit tests. Every function here is pure.
//
// Coordinates use a top-left origin with y growing downwards. Callers must
// convert pointer positions to that convention before calling in.
package geometry

import (
	"math"

	"github.com/bnema/edgedock/internal/domain/entity"
)

// IsHorizontal reports whether a panel on edge lays its items out in a row.
func IsHorizontal(edge entity.Edge) bool {
	return edge.IsHorizontal()
}

// AnchorPoint returns the center of the panel so that its outer side sits
// edgeOffset points inside the screen boundary on the edge axis, centered on
// the other axis. Left and right panels center vertically on the usable area
// when the screen reports one.
//
// Offsets larger than the screen allows are not clamped: the panel is placed
// where the configuration says, even partly off-screen.
func AnchorPoint(edge entity.Edge, screen entity.Screen, panel entity.Size, edgeOffset float64) entity.Point {
	frame := screen.Frame
	center := frame.Center()

	switch edge {
	case entity.EdgeTop:
		return entity.Point{X: center.X, Y: frame.Min.Y + panel.H/2 + edgeOffset}
	case entity.EdgeBottom:
		return entity.Point{X: center.X, Y: frame.Max.Y - panel.H/2 - edgeOffset}
	case entity.EdgeLeft:
		return entity.Point{X: frame.Min.X + panel.W/2 + edgeOffset, Y: screen.CenteringFrame().Center().Y}
	default:
		return entity.Point{X: frame.Max.X - panel.W/2 - edgeOffset, Y: screen.CenteringFrame().Center().Y}
	}
}

// HiddenOffset returns the translation that moves a panel anchored with a
// zero offset fully off-screen along its short axis.
func HiddenOffset(edge entity.Edge, panel entity.Size) entity.Vector {
	switch edge {
	case entity.EdgeTop:
		return entity.Vector{DY: -panel.H}
	case entity.EdgeBottom:
		return entity.Vector{DY: panel.H}
	case entity.EdgeLeft:
		return entity.Vector{DX: -panel.W}
	default:
		return entity.Vector{DX: panel.W}
	}
}

// IsInTriggerZone reports whether pointer lies within triggerDistance of the
// edge, measured inwards from the frame boundary. The boundary itself and a
// pointer at exactly triggerDistance are inside. Pointers past the boundary,
// e.g. on a neighbouring display, are outside.
func IsInTriggerZone(edge entity.Edge, pointer entity.Point, frame entity.Rect, triggerDistance float64) bool {
	inward := InwardDistance(edge, pointer, frame)
	return inward >= 0 && inward <= triggerDistance
}

// InwardDistance is the distance from the edge boundary to pointer along the
// edge axis, positive towards the screen interior.
func InwardDistance(edge entity.Edge, pointer entity.Point, frame entity.Rect) float64 {
	switch edge {
	case entity.EdgeTop:
		return pointer.Y - frame.Min.Y
	case entity.EdgeBottom:
		return frame.Max.Y - pointer.Y
	case entity.EdgeLeft:
		return pointer.X - frame.Min.X
	default:
		return frame.Max.X - pointer.X
	}
}

// TriggerZoneRect returns the strip of frame covered by the trigger zone.
func TriggerZoneRect(edge entity.Edge, frame entity.Rect, triggerDistance float64) entity.Rect {
	zone := frame
	switch edge {
	case entity.EdgeTop:
		zone.Max.Y = frame.Min.Y + triggerDistance
	case entity.EdgeBottom:
		zone.Min.Y = frame.Max.Y - triggerDistance
	case entity.EdgeLeft:
		zone.Max.X = frame.Min.X + triggerDistance
	default:
		zone.Min.X = frame.Max.X - triggerDistance
	}
	return zone
}

// PanelSize derives the panel extent from its item count. The long axis holds
// the items plus spacing and padding, the short axis is the layout thickness.
// An empty panel still keeps its padding so the primary axis is never zero.
func PanelSize(edge entity.Edge, itemCount int, layout entity.PanelLayout) entity.Size {
	count := float64(max(itemCount, 0))
	spacing := layout.ItemSpacing * math.Max(count-1, 0)
	long := count*layout.ItemSize + spacing + layout.Padding

	if edge.IsHorizontal() {
		return entity.Size{W: long, H: layout.Thickness}
	}
	return entity.Size{W: layout.Thickness, H: long}
}

// PanelRect returns the rectangle occupied by a panel centered on anchor.
func PanelRect(anchor entity.Point, size entity.Size) entity.Rect {
	return entity.RectFromCenter(anchor, size)
}

// Compute derives the full panel placement for the given settings.
func Compute(settings entity.DockSettings, screen entity.Screen, itemCount int) entity.PanelGeometry {
	size := PanelSize(settings.Edge, itemCount, settings.Layout)
	anchor := AnchorPoint(settings.Edge, screen, size, settings.EdgeOffset)

	return entity.PanelGeometry{
		Edge:         settings.Edge,
		Anchor:       anchor,
		Size:         size,
		Rect:         PanelRect(anchor, size),
		HiddenOffset: HiddenOffset(settings.Edge, size),
	}
}
