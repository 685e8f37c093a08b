//go:build !darwin

package screen

import (
	"context"
	"fmt"
	"runtime"

	"github.com/bnema/edgedock/internal/domain/entity"
)

// SystemProvider has no display binding on this platform.
type SystemProvider struct{}

// NewSystemProvider returns the provider for this platform.
func NewSystemProvider() SystemProvider {
	return SystemProvider{}
}

func (SystemProvider) Screen(context.Context) (entity.Screen, error) {
	return entity.Screen{}, fmt.Errorf("%w: no display binding on %s", ErrNoScreen, runtime.GOOS)
}
