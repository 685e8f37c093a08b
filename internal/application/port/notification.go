package port

import "context"

// Notifier posts a desktop notification. Failures are reported but callers
// treat them as non-fatal.
type Notifier interface {
	Notify(ctx context.Context, title, message string) error
}
