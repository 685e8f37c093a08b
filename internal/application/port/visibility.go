package port

import "github.com/bnema/edgedock/internal/domain/entity"

// VisibilityObserver is implemented by the presentation layer.
// Callbacks run on the controller loop and must not block.
type VisibilityObserver interface {
	OnVisibilityChanged(visible bool, geometry entity.PanelGeometry)
	// OnGeometryChanged asks a visible panel to reposition in place.
	OnGeometryChanged(geometry entity.PanelGeometry)
	// OnAvailabilityChanged reports whether pointer sampling works, so the
	// presentation layer can prompt for permission.
	OnAvailabilityChanged(available bool)
}
