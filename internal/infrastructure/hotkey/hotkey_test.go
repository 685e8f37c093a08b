package hotkey

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBindingString(t *testing.T) {
	assert.Equal(t, "ctrl+alt+d", Binding{Modifiers: []string{"ctrl", "alt"}, Key: "d"}.String())
	assert.Equal(t, "f12", Binding{Key: "f12"}.String())
}

func TestRepeatFilterSwallowsHeldKey(t *testing.T) {
	var f repeatFilter
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.True(t, f.accept(t0))
	assert.False(t, f.accept(t0.Add(50*time.Millisecond)))
	assert.False(t, f.accept(t0.Add(repeatInterval-time.Millisecond)))
	assert.True(t, f.accept(t0.Add(repeatInterval)))
	// Measured from the last accepted press, not the last dropped one.
	assert.False(t, f.accept(t0.Add(repeatInterval+100*time.Millisecond)))
}
