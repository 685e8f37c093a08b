package port

import (
	"context"

	"github.com/bnema/edgedock/internal/domain/entity"
)

// ScreenProvider reports the geometry of the display hosting the panel.
type ScreenProvider interface {
	Screen(ctx context.Context) (entity.Screen, error)
}
