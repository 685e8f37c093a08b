package mainloop

// Inline runs posted tasks on the posting goroutine. A task posted while
// another is running is queued and runs right after it, so tasks still never
// interleave. Inline is not safe for concurrent use; it backs replays and
// tests that drive everything from one goroutine.
type Inline struct {
	queue   []func()
	running bool
}

// Post runs fn now, or after the task currently running.
func (in *Inline) Post(fn func()) bool {
	if fn == nil {
		return false
	}
	in.queue = append(in.queue, fn)
	if in.running {
		return true
	}

	in.running = true
	defer func() { in.running = false }()
	for len(in.queue) > 0 {
		next := in.queue[0]
		in.queue = in.queue[1:]
		next()
	}
	return true
}
