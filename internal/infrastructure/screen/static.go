// Package screen reports the geometry of the display hosting the panel.
package screen

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/edgedock/internal/application/port"
	"github.com/bnema/edgedock/internal/domain/entity"
	"github.com/bnema/edgedock/internal/logging"
)

// ErrNoScreen is returned when no display geometry can be determined.
var ErrNoScreen = errors.New("no screen geometry available")

// StaticProvider always reports the same screen.
type StaticProvider struct {
	screen entity.Screen
}

var _ port.ScreenProvider = StaticProvider{}

// NewStaticProvider returns a provider for a width x height display with an
// optional usable area.
func NewStaticProvider(width, height float64, usable *entity.Rect) StaticProvider {
	s := entity.NewScreen(width, height)
	s.Usable = usable
	return StaticProvider{screen: s}
}

func (p StaticProvider) Screen(context.Context) (entity.Screen, error) {
	if p.screen.Frame.Empty() {
		return entity.Screen{}, fmt.Errorf("%w: configured size %gx%g", ErrNoScreen,
			p.screen.Frame.Width(), p.screen.Frame.Height())
	}
	return p.screen, nil
}

// FallbackProvider asks each provider in turn and returns the first screen
// that has an area.
type FallbackProvider struct {
	providers []port.ScreenProvider
}

// NewFallbackProvider chains providers, most preferred first.
func NewFallbackProvider(providers ...port.ScreenProvider) FallbackProvider {
	return FallbackProvider{providers: providers}
}

func (p FallbackProvider) Screen(ctx context.Context) (entity.Screen, error) {
	var errs []error
	for _, provider := range p.providers {
		s, err := provider.Screen(ctx)
		if err == nil && !s.Frame.Empty() {
			return s, nil
		}
		if err == nil {
			err = ErrNoScreen
		}
		logging.FromContext(ctx).Debug().Err(err).Msg("screen provider failed, trying next")
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return entity.Screen{}, ErrNoScreen
	}
	return entity.Screen{}, errors.Join(errs...)
}
