//go:build (darwin && cgo) || windows || (linux && cgo && x11hotkey)

package hotkey

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bnema/edgedock/internal/logging"
	"golang.design/x/hotkey"
	"golang.design/x/hotkey/mainthread"
)

// Handler calls onPress every time the registered shortcut goes down.
type Handler struct {
	mu      sync.Mutex
	hk      *hotkey.Hotkey
	onPress func()
	current Binding
	stopCh  chan struct{}
}

// New creates a handler. Nothing is registered until Register.
func New(onPress func()) *Handler {
	return &Handler{onPress: onPress}
}

// Register replaces any previous shortcut with b.
func (h *Handler) Register(ctx context.Context, b Binding) error {
	log := logging.FromContext(ctx)

	mods, key, err := resolve(b)
	if err != nil {
		return err
	}

	if err := h.Unregister(); err != nil {
		log.Warn().Err(err).Msg("failed to release previous hotkey")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	hk := hotkey.New(mods, key)
	if err := hk.Register(); err != nil {
		return fmt.Errorf("register hotkey %s: %w", b, err)
	}
	h.hk = hk
	h.current = b
	h.stopCh = make(chan struct{})

	log.Info().Str("hotkey", b.String()).Msg("hotkey registered")
	go h.listen(hk, h.stopCh)
	return nil
}

// Run registers b and keeps it until ctx is done.
func (h *Handler) Run(ctx context.Context, b Binding) error {
	if err := h.Register(ctx, b); err != nil {
		return err
	}
	<-ctx.Done()
	return h.Unregister()
}

func (h *Handler) listen(hk *hotkey.Hotkey, stopCh chan struct{}) {
	var repeats repeatFilter
	for {
		select {
		case <-stopCh:
			return
		case _, ok := <-hk.Keydown():
			if !ok {
				return
			}
			if !repeats.accept(time.Now()) {
				continue
			}
			if h.onPress != nil {
				h.onPress()
			}
		}
	}
}

// Unregister releases the current shortcut, if any.
func (h *Handler) Unregister() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.stopCh != nil {
		close(h.stopCh)
		h.stopCh = nil
	}
	if h.hk == nil {
		return nil
	}
	err := h.hk.Unregister()
	h.hk = nil
	return err
}

// Current returns the registered binding.
func (h *Handler) Current() Binding {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current
}

// RunOnMainThread runs fn while the main thread services hotkey events.
// macOS delivers them only there. Call it from main.
func RunOnMainThread(fn func()) {
	mainthread.Init(fn)
}

func resolve(b Binding) ([]hotkey.Modifier, hotkey.Key, error) {
	mods := make([]hotkey.Modifier, 0, len(b.Modifiers))
	for _, name := range b.Modifiers {
		mod, ok := modifierMap[strings.ToLower(name)]
		if !ok {
			return nil, 0, fmt.Errorf("unknown hotkey modifier %q", name)
		}
		mods = append(mods, mod)
	}

	key, ok := keyMap[strings.ToLower(b.Key)]
	if !ok {
		return nil, 0, fmt.Errorf("unknown hotkey key %q", b.Key)
	}
	return mods, key, nil
}

// modifierMap is defined per platform.

var keyMap = map[string]hotkey.Key{
	"space": hotkey.KeySpace, "return": hotkey.KeyReturn, "enter": hotkey.KeyReturn,
	"tab": hotkey.KeyTab, "escape": hotkey.KeyEscape, "esc": hotkey.KeyEscape,
	"a": hotkey.KeyA, "b": hotkey.KeyB, "c": hotkey.KeyC, "d": hotkey.KeyD,
	"e": hotkey.KeyE, "f": hotkey.KeyF, "g": hotkey.KeyG, "h": hotkey.KeyH,
	"i": hotkey.KeyI, "j": hotkey.KeyJ, "k": hotkey.KeyK, "l": hotkey.KeyL,
	"m": hotkey.KeyM, "n": hotkey.KeyN, "o": hotkey.KeyO, "p": hotkey.KeyP,
	"q": hotkey.KeyQ, "r": hotkey.KeyR, "s": hotkey.KeyS, "t": hotkey.KeyT,
	"u": hotkey.KeyU, "v": hotkey.KeyV, "w": hotkey.KeyW, "x": hotkey.KeyX,
	"y": hotkey.KeyY, "z": hotkey.KeyZ,
	"0": hotkey.Key0, "1": hotkey.Key1, "2": hotkey.Key2, "3": hotkey.Key3,
	"4": hotkey.Key4, "5": hotkey.Key5, "6": hotkey.Key6, "7": hotkey.Key7,
	"8": hotkey.Key8, "9": hotkey.Key9,
	"f1": hotkey.KeyF1, "f2": hotkey.KeyF2, "f3": hotkey.KeyF3, "f4": hotkey.KeyF4,
	"f5": hotkey.KeyF5, "f6": hotkey.KeyF6, "f7": hotkey.KeyF7, "f8": hotkey.KeyF8,
	"f9": hotkey.KeyF9, "f10": hotkey.KeyF10, "f11": hotkey.KeyF11, "f12": hotkey.KeyF12,
}
