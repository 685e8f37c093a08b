package screen_test

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/edgedock/internal/application/port/mocks"
	"github.com/bnema/edgedock/internal/domain/entity"
	"github.com/bnema/edgedock/internal/infrastructure/screen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStaticProvider(t *testing.T) {
	usable := entity.Rect{Min: entity.Point{Y: 25}, Max: entity.Point{X: 1000, Y: 800}}
	p := screen.NewStaticProvider(1000, 800, &usable)

	s, err := p.Screen(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1000.0, s.Frame.Width())
	assert.Equal(t, usable, s.CenteringFrame())
}

func TestStaticProvider_EmptySizeFails(t *testing.T) {
	_, err := screen.NewStaticProvider(0, 800, nil).Screen(context.Background())
	assert.ErrorIs(t, err, screen.ErrNoScreen)
}

func TestFallbackProvider_UsesFirstWorkingProvider(t *testing.T) {
	failing := mocks.NewMockScreenProvider(t)
	failing.EXPECT().Screen(mock.Anything).Return(entity.Screen{}, errors.New("no display")).Once()

	p := screen.NewFallbackProvider(failing, screen.NewStaticProvider(1920, 1080, nil))

	s, err := p.Screen(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1080.0, s.Frame.Height())
}

func TestFallbackProvider_AllFail(t *testing.T) {
	p := screen.NewFallbackProvider(screen.NewStaticProvider(0, 0, nil))

	_, err := p.Screen(context.Background())
	assert.ErrorIs(t, err, screen.ErrNoScreen)
}
