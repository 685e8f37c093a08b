// Package hotkey binds a global keyboard shortcut.
//
// On Linux the X11 backend is only linked with the x11hotkey build tag: the
// underlying library opens the display when the binary starts and aborts
// without one. Other builds get a Handler whose Register reports
// ErrUnavailable.
package hotkey

import (
	"errors"
	"strings"
	"time"
)

// repeatInterval swallows key repeat while the shortcut is held.
const repeatInterval = 300 * time.Millisecond

// ErrUnavailable is returned when this build or platform cannot grab a
// global shortcut.
var ErrUnavailable = errors.New("global hotkeys unavailable")

// Binding names a shortcut, e.g. {"ctrl", "alt"} + "d".
type Binding struct {
	Modifiers []string
	Key       string
}

func (b Binding) String() string {
	return strings.Join(append(append([]string(nil), b.Modifiers...), b.Key), "+")
}

// repeatFilter drops keydowns that arrive within repeatInterval of the last
// accepted one.
type repeatFilter struct {
	last time.Time
}

func (f *repeatFilter) accept(now time.Time) bool {
	if !f.last.IsZero() && now.Sub(f.last) < repeatInterval {
		return false
	}
	f.last = now
	return true
}
