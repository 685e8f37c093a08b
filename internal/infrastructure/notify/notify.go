// Package notify posts desktop notifications.
package notify

import (
	"context"
	"fmt"

	"github.com/bnema/edgedock/internal/application/port"
	"github.com/gen2brain/beeep"
)

const appName = "edgedock"

// sendFunc matches beeep.Notify.
type sendFunc func(title, message, appIcon string) error

// Notifier sends notifications through the platform notification center.
type Notifier struct {
	enabled bool
	icon    string
	send    sendFunc
}

var _ port.Notifier = (*Notifier)(nil)

// New creates a notifier. A disabled notifier drops everything.
func New(enabled bool) *Notifier {
	return &Notifier{enabled: enabled, send: beeep.Notify}
}

// Notify implements port.Notifier.
func (n *Notifier) Notify(_ context.Context, title, message string) error {
	if !n.enabled {
		return nil
	}
	if title == "" {
		title = appName
	} else {
		title = appName + ": " + title
	}
	if err := n.send(title, message, n.icon); err != nil {
		return fmt.Errorf("notify: %w", err)
	}
	return nil
}
