//go:build !((darwin && cgo) || windows || (linux && cgo && x11hotkey))

package hotkey

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerReportsUnavailable(t *testing.T) {
	pressed := false
	h := New(func() { pressed = true })
	b := Binding{Modifiers: []string{"ctrl"}, Key: "space"}

	err := h.Register(context.Background(), b)
	require.ErrorIs(t, err, ErrUnavailable)
	assert.Contains(t, err.Error(), "ctrl+space")

	require.ErrorIs(t, h.Run(context.Background(), b), ErrUnavailable)
	assert.NoError(t, h.Unregister())
	assert.Equal(t, Binding{}, h.Current())
	assert.False(t, pressed)
}

func TestRunOnMainThreadCallsFnDirectly(t *testing.T) {
	called := false
	RunOnMainThread(func() { called = true })
	assert.True(t, called)
}
