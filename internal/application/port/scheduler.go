package port

import "time"

// Timer is a cancellable scheduled callback.
type Timer interface {
	// Stop prevents the callback from running. It returns false if the
	// callback already ran or was already stopped.
	Stop() bool
}

// Scheduler arms one-shot callbacks. fn may run on any goroutine; callers
// that own serialized state re-post it onto their own loop.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}
