package presenter_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/bnema/edgedock/internal/application/port/mocks"
	"github.com/bnema/edgedock/internal/domain/entity"
	"github.com/bnema/edgedock/internal/logging"
	"github.com/bnema/edgedock/internal/ui/presenter"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestLogPresenter_WritesGeometry(t *testing.T) {
	var buf bytes.Buffer
	ctx := logging.WithContext(context.Background(), zerolog.New(&buf))
	p := presenter.NewLogPresenter(ctx)

	p.OnVisibilityChanged(true, entity.PanelGeometry{
		Edge:   entity.EdgeBottom,
		Anchor: entity.Point{X: 960, Y: 1040},
		Size:   entity.Size{W: 450, H: 80},
	})
	p.OnAvailabilityChanged(false)

	out := buf.String()
	assert.Contains(t, out, `"message":"panel shown"`)
	assert.Contains(t, out, `"edge":"bottom"`)
	assert.Contains(t, out, `"anchor_y":1040`)
	assert.Contains(t, out, `"component":"presenter"`)
	assert.Contains(t, out, "panel suspended")
}

func TestAvailabilityNotifier_NotifiesLossAndRecovery(t *testing.T) {
	notifier := mocks.NewMockNotifier(t)
	notifier.EXPECT().Notify(mock.Anything, "Pointer access lost", mock.Anything).Return(nil).Once()
	notifier.EXPECT().Notify(mock.Anything, "Pointer access restored", mock.Anything).Return(nil).Once()

	n := presenter.NewAvailabilityNotifier(context.Background(), notifier)
	n.OnAvailabilityChanged(true) // initial availability is not news
	n.OnAvailabilityChanged(false)
	n.OnAvailabilityChanged(true)
	n.OnVisibilityChanged(true, entity.PanelGeometry{})
}

func TestAvailabilityNotifier_IgnoresNotifyErrors(t *testing.T) {
	notifier := mocks.NewMockNotifier(t)
	notifier.EXPECT().Notify(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("no daemon")).Once()

	n := presenter.NewAvailabilityNotifier(context.Background(), notifier)
	assert.NotPanics(t, func() { n.OnAvailabilityChanged(false) })
}
