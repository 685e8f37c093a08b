//go:build !((darwin && cgo) || windows || (linux && cgo && x11hotkey))

package hotkey

import (
	"context"
	"fmt"
)

// Handler stands in for the native handler. Nothing can be registered.
type Handler struct {
	onPress func()
}

// New creates a handler.
func New(onPress func()) *Handler {
	return &Handler{onPress: onPress}
}

// Register always fails with ErrUnavailable.
func (h *Handler) Register(_ context.Context, b Binding) error {
	return fmt.Errorf("register hotkey %s: %w", b, ErrUnavailable)
}

// Run fails immediately, the same as Register.
func (h *Handler) Run(ctx context.Context, b Binding) error {
	return h.Register(ctx, b)
}

// Unregister is a no-op.
func (h *Handler) Unregister() error { return nil }

// Current always returns the zero binding.
func (h *Handler) Current() Binding { return Binding{} }

// RunOnMainThread calls fn directly. No event loop needs the main thread.
func RunOnMainThread(fn func()) {
	fn()
}
