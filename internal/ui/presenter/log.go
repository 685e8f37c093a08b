// Package presenter turns controller notifications into side effects the
// user can see: log lines, terminal frames, desktop notifications.
package presenter

import (
	"context"

	"github.com/bnema/edgedock/internal/application/port"
	"github.com/bnema/edgedock/internal/domain/entity"
	"github.com/bnema/edgedock/internal/logging"
	"github.com/rs/zerolog"
)

// LogPresenter renders visibility changes as structured log lines. It is the
// headless stand-in for a window.
type LogPresenter struct {
	logger *zerolog.Logger
}

var _ port.VisibilityObserver = (*LogPresenter)(nil)

// NewLogPresenter creates a presenter logging through the context logger.
func NewLogPresenter(ctx context.Context) *LogPresenter {
	return &LogPresenter{logger: logging.FromContext(logging.WithComponent(ctx, "presenter"))}
}

func (p *LogPresenter) OnVisibilityChanged(visible bool, geo entity.PanelGeometry) {
	msg := "panel hidden"
	if visible {
		msg = "panel shown"
	}
	p.geometryEvent(p.logger.Info(), geo).Bool("visible", visible).Msg(msg)
}

func (p *LogPresenter) OnGeometryChanged(geo entity.PanelGeometry) {
	p.geometryEvent(p.logger.Info(), geo).Msg("panel repositioned")
}

func (p *LogPresenter) OnAvailabilityChanged(available bool) {
	if available {
		p.logger.Info().Msg("pointer access available")
		return
	}
	p.logger.Warn().Msg("pointer access unavailable, panel suspended")
}

func (p *LogPresenter) geometryEvent(ev *zerolog.Event, geo entity.PanelGeometry) *zerolog.Event {
	return ev.
		Str("edge", geo.Edge.String()).
		Float64("anchor_x", geo.Anchor.X).
		Float64("anchor_y", geo.Anchor.Y).
		Float64("width", geo.Size.W).
		Float64("height", geo.Size.H)
}
