package presenter

import (
	"context"

	"github.com/bnema/edgedock/internal/application/port"
	"github.com/bnema/edgedock/internal/domain/entity"
	"github.com/bnema/edgedock/internal/logging"
)

const (
	lostTitle     = "Pointer access lost"
	lostMessage   = "The dock is hidden until accessibility access is granted again."
	regainedTitle = "Pointer access restored"
	regainedBody  = "Move the pointer to the screen edge to show the dock."
)

// AvailabilityNotifier posts a desktop notification when pointer access is
// lost, and again when it comes back after a loss.
type AvailabilityNotifier struct {
	ctx      context.Context
	notifier port.Notifier
	lost     bool
}

var _ port.VisibilityObserver = (*AvailabilityNotifier)(nil)

// NewAvailabilityNotifier wires notifier to availability changes.
func NewAvailabilityNotifier(ctx context.Context, notifier port.Notifier) *AvailabilityNotifier {
	return &AvailabilityNotifier{ctx: ctx, notifier: notifier}
}

func (n *AvailabilityNotifier) OnVisibilityChanged(bool, entity.PanelGeometry) {}

func (n *AvailabilityNotifier) OnGeometryChanged(entity.PanelGeometry) {}

func (n *AvailabilityNotifier) OnAvailabilityChanged(available bool) {
	var err error
	switch {
	case !available:
		n.lost = true
		err = n.notifier.Notify(n.ctx, lostTitle, lostMessage)
	case n.lost:
		n.lost = false
		err = n.notifier.Notify(n.ctx, regainedTitle, regainedBody)
	}
	if err != nil {
		logging.FromContext(n.ctx).Debug().Err(err).Msg("availability notification failed")
	}
}
