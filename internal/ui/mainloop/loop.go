// Package mainloop serializes work onto a single consumer.
package mainloop

import (
	"context"
	"runtime/debug"
	"sync"

	"github.com/bnema/edgedock/internal/logging"
)

// Loop is a FIFO task queue drained by exactly one goroutine. Tasks posted
// from any goroutine run one at a time, in post order.
type Loop struct {
	mu     sync.Mutex
	queue  []func()
	wake   chan struct{}
	closed bool
}

// NewLoop creates an idle loop. Call Run to start draining.
func NewLoop() *Loop {
	return &Loop{wake: make(chan struct{}, 1)}
}

// Post enqueues fn. It returns false once the loop is closed.
func (l *Loop) Post(fn func()) bool {
	if fn == nil {
		return false
	}

	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return false
	}
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
	return true
}

// Run drains tasks until ctx is cancelled or Close is called.
func (l *Loop) Run(ctx context.Context) error {
	for {
		for _, fn := range l.take() {
			l.exec(ctx, fn)
		}

		l.mu.Lock()
		closed := l.closed
		empty := len(l.queue) == 0
		l.mu.Unlock()
		if closed && empty {
			return nil
		}
		if !empty {
			continue
		}

		select {
		case <-ctx.Done():
			l.Close()
			return ctx.Err()
		case <-l.wake:
		}
	}
}

// Close stops accepting tasks. Tasks already queued still run.
func (l *Loop) Close() {
	l.mu.Lock()
	l.closed = true
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Len returns the number of queued tasks.
func (l *Loop) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}

func (l *Loop) take() []func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	batch := l.queue
	l.queue = nil
	return batch
}

func (l *Loop) exec(ctx context.Context, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			logging.FromContext(ctx).Error().
				Interface("panic", r).
				Bytes("stack", debug.Stack()).
				Msg("main loop task panicked")
		}
	}()
	fn()
}
