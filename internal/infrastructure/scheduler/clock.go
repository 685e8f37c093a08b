// Package scheduler provides port.Scheduler implementations backed by the wall
// clock and by a manually advanced virtual clock.
package scheduler

import (
	"time"

	"github.com/bnema/edgedock/internal/application/port"
)

// Clock schedules callbacks with time.AfterFunc.
type Clock struct{}

var _ port.Scheduler = Clock{}

// NewClock returns a wall-clock scheduler.
func NewClock() Clock {
	return Clock{}
}

// AfterFunc runs fn on its own goroutine once d has elapsed.
func (Clock) AfterFunc(d time.Duration, fn func()) port.Timer {
	return time.AfterFunc(d, fn)
}
