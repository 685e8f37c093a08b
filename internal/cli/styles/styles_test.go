package styles_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/edgedock/internal/application/usecase"
	"github.com/bnema/edgedock/internal/cli/styles"
	"github.com/bnema/edgedock/internal/domain/entity"
	"github.com/bnema/edgedock/internal/domain/geometry"
	"github.com/bnema/edgedock/internal/ui/simulate"
)

func rightEdgeMap(visible bool) styles.ScreenMap {
	settings := entity.DefaultDockSettings()
	screen := entity.NewScreen(1000, 800)
	return styles.ScreenMap{
		Screen:          screen,
		Geometry:        geometry.Compute(settings, screen, len(entity.SampleDockItems())),
		TriggerDistance: settings.TriggerDistance,
		Visible:         visible,
	}
}

func TestScreenMap_VisiblePanelOnRightEdge(t *testing.T) {
	cells := rightEdgeMap(true).Cells(50, 40)

	require.Len(t, cells, 40)
	require.Len(t, cells[0], 50)
	assert.Equal(t, styles.GlyphPanel, cells[20][49])
	assert.Equal(t, styles.GlyphPanel, cells[20][46])
	assert.Equal(t, styles.GlyphScreen, cells[20][45])
	assert.Equal(t, styles.GlyphTrigger, cells[0][49])
	assert.Equal(t, styles.GlyphScreen, cells[0][0])
}

func TestScreenMap_HiddenPanelShowsGhostBehindTrigger(t *testing.T) {
	cells := rightEdgeMap(false).Cells(50, 40)

	assert.Equal(t, styles.GlyphTrigger, cells[20][49])
	assert.Equal(t, styles.GlyphHidden, cells[20][47])
}

func TestScreenMap_PointerWins(t *testing.T) {
	m := rightEdgeMap(true)
	m.Pointer = &entity.Point{X: 995, Y: 405}

	cells := m.Cells(50, 40)
	assert.Equal(t, styles.GlyphPointer, cells[20][49])
}

func TestRelativeTime(t *testing.T) {
	assert.Equal(t, "just now", styles.RelativeTime(time.Now()))
	assert.Equal(t, "5m ago", styles.RelativeTime(time.Now().Add(-5*time.Minute-time.Second)))
	assert.Equal(t, "1d ago", styles.RelativeTime(time.Now().Add(-25*time.Hour)))
}

func TestCLIRenderer_Geometry(t *testing.T) {
	r := styles.NewCLIRenderer(styles.NewTheme())
	screen := entity.NewScreen(1000, 800)
	geo := geometry.Compute(entity.DefaultDockSettings(), screen, 6)

	out := r.RenderGeometry(screen, 2, []usecase.EdgeLayout{{
		Geometry:    geo,
		HiddenRect:  geo.HiddenRect(),
		TriggerZone: geometry.TriggerZoneRect(geo.Edge, screen.Frame, 2),
		Findings: []*entity.GeometryConfigError{
			{Field: "dock.edge_offset", Value: 80, Limit: 50, Msg: "exceeds maximum offset"},
		},
	}})

	assert.Contains(t, out, "right")
	assert.Contains(t, out, "80x450")
	assert.Contains(t, out, "(960,400)")
	assert.Contains(t, out, "exceeds maximum offset")
}

func TestCLIRenderer_Timeline(t *testing.T) {
	r := styles.NewCLIRenderer(styles.NewTheme())

	assert.Contains(t, r.RenderTimeline(&simulate.Timeline{}), "no transitions")

	out := r.RenderTimeline(&simulate.Timeline{
		Events: []simulate.Event{
			{At: 0, Kind: simulate.EventShown},
			{At: 600 * time.Millisecond, Kind: simulate.EventHidden},
		},
		Final:    entity.VisibilityStatus{State: entity.VisibilityHidden},
		Duration: 600 * time.Millisecond,
	})
	assert.Contains(t, out, "0.600s")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "hidden")
}

func TestCLIRenderer_Error(t *testing.T) {
	r := styles.NewCLIRenderer(styles.NewTheme())
	assert.Contains(t, r.RenderError(errors.New("nope")), "nope")
}

func TestTableRows(t *testing.T) {
	row := styles.LaunchRow(&entity.LaunchRecord{
		Name:       "Mail",
		Target:     "Mail",
		LaunchedAt: time.Now(),
		Error:      "exit status 1",
	})
	assert.Equal(t, "failed: exit status 1", row[3])

	count := styles.CountRow(&entity.LaunchCount{Name: "Mail", Count: 1500, LastLaunched: time.Now()})
	assert.Equal(t, "1.5K", count[1])

	item := styles.ItemRow(0, entity.SampleDockItems()[0])
	assert.Equal(t, "1", item[0])
	assert.Equal(t, "finder", item[1])
}
