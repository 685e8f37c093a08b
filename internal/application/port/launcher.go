package port

import (
	"context"

	"github.com/bnema/edgedock/internal/domain/entity"
)

// AppLauncher activates a dock item.
type AppLauncher interface {
	Launch(ctx context.Context, item entity.DockItem) error
}
