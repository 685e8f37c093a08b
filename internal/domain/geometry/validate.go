package geometry

import "github.com/bnema/edgedock/internal/domain/entity"

// maxTriggerRatio keeps the trigger strip small relative to the screen so the
// panel is not triggered from most of the display.
const maxTriggerRatio = 0.1

// Validate reports geometry settings the panel cannot fully honour. Findings
// are informational: Compute still places the panel where the settings say.
func Validate(settings entity.DockSettings, screen entity.Screen, itemCount int) []*entity.GeometryConfigError {
	var findings []*entity.GeometryConfigError
	add := func(field string, value, limit float64, msg string) {
		findings = append(findings, &entity.GeometryConfigError{Field: field, Value: value, Limit: limit, Msg: msg})
	}

	edgeExtent := screen.Frame.Width()
	crossExtent := screen.Frame.Height()
	if settings.Edge.IsHorizontal() {
		edgeExtent, crossExtent = crossExtent, edgeExtent
	}

	if settings.EdgeOffset < 0 {
		add("dock.edge_offset", settings.EdgeOffset, 0, "must not be negative")
	}
	if settings.EdgeOffset > entity.MaxEdgeOffset {
		add("dock.edge_offset", settings.EdgeOffset, entity.MaxEdgeOffset, "exceeds maximum offset")
	}
	if half := edgeExtent / 2; settings.EdgeOffset > half {
		add("dock.edge_offset", settings.EdgeOffset, half, "places the panel past the middle of the screen")
	}

	if settings.TriggerDistance <= 0 {
		add("dock.trigger_distance", settings.TriggerDistance, 0, "must be positive")
	}
	if limit := edgeExtent * maxTriggerRatio; settings.TriggerDistance >= limit {
		add("dock.trigger_distance", settings.TriggerDistance, limit, "trigger zone too large for the screen")
	}

	size := PanelSize(settings.Edge, itemCount, settings.Layout)
	if size.W <= 0 || size.H <= 0 {
		add("dock.layout", min(size.W, size.H), 0, "panel has no area")
	}

	long := size.H
	if settings.Edge.IsHorizontal() {
		long = size.W
	}
	if long > crossExtent {
		add("items", long, crossExtent, "panel is longer than the screen edge")
	}

	return findings
}
