package usecase

import (
	"context"

	"github.com/bnema/edgedock/internal/domain/entity"
	"github.com/bnema/edgedock/internal/domain/geometry"
)

// DescribeGeometryUseCase computes where the panel and its trigger strip sit
// for a given configuration, without running the dock.
type DescribeGeometryUseCase struct{}

// NewDescribeGeometryUseCase creates a new DescribeGeometryUseCase.
func NewDescribeGeometryUseCase() *DescribeGeometryUseCase {
	return &DescribeGeometryUseCase{}
}

// DescribeGeometryInput holds the configuration to lay out.
type DescribeGeometryInput struct {
	Settings  entity.DockSettings
	ItemCount int
	Screen    entity.Screen
	// AllEdges lays the panel out on every edge instead of Settings.Edge.
	AllEdges bool
}

// EdgeLayout is the placement on one edge.
type EdgeLayout struct {
	Geometry    entity.PanelGeometry
	HiddenRect  entity.Rect
	TriggerZone entity.Rect
	Findings    []*entity.GeometryConfigError
}

// DescribeGeometryOutput contains one layout per requested edge.
type DescribeGeometryOutput struct {
	Layouts []EdgeLayout
}

// Execute lays out the panel.
func (uc *DescribeGeometryUseCase) Execute(_ context.Context, input DescribeGeometryInput) (*DescribeGeometryOutput, error) {
	if !input.Settings.Edge.Valid() {
		return nil, entity.ErrInvalidEdge
	}

	edges := []entity.Edge{input.Settings.Edge}
	if input.AllEdges {
		edges = entity.AllEdges()
	}

	out := &DescribeGeometryOutput{Layouts: make([]EdgeLayout, 0, len(edges))}
	for _, edge := range edges {
		settings := input.Settings
		settings.Edge = edge

		geo := geometry.Compute(settings, input.Screen, input.ItemCount)
		out.Layouts = append(out.Layouts, EdgeLayout{
			Geometry:    geo,
			HiddenRect:  geo.HiddenRect(),
			TriggerZone: geometry.TriggerZoneRect(edge, input.Screen.Frame, settings.TriggerDistance),
			Findings:    geometry.Validate(settings, input.Screen, input.ItemCount),
		})
	}
	return out, nil
}
