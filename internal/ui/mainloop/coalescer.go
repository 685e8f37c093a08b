package mainloop

import "sync"

// Coalescer merges bursts of same-key tasks into a single posted run.
// The latest task posted for a key wins.
type Coalescer[K comparable] struct {
	mu      sync.Mutex
	pending map[K]func()
	post    func(func()) bool
	closed  bool
}

// NewCoalescer returns a coalescer that schedules work through post.
func NewCoalescer[K comparable](post func(func()) bool) *Coalescer[K] {
	if post == nil {
		panic("mainloop.NewCoalescer: post function cannot be nil")
	}

	return &Coalescer[K]{
		pending: make(map[K]func()),
		post:    post,
	}
}

// Post schedules fn under key. If a run for key is already scheduled, fn
// replaces its task and no new run is posted.
func (c *Coalescer[K]) Post(key K, fn func()) {
	if fn == nil {
		return
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	_, scheduled := c.pending[key]
	c.pending[key] = fn
	if scheduled {
		c.mu.Unlock()
		return
	}
	post := c.post
	c.mu.Unlock()

	if !post(func() { c.run(key) }) {
		c.mu.Lock()
		delete(c.pending, key)
		c.mu.Unlock()
	}
}

// Pending reports whether a run for key is scheduled but not yet executed.
func (c *Coalescer[K]) Pending(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.pending[key]
	return ok
}

func (c *Coalescer[K]) run(key K) {
	c.mu.Lock()
	fn := c.pending[key]
	delete(c.pending, key)
	closed := c.closed
	c.mu.Unlock()

	if closed || fn == nil {
		return
	}
	fn()
}

// Close drops scheduled work and ignores further posts.
func (c *Coalescer[K]) Close() {
	c.mu.Lock()
	c.closed = true
	c.pending = map[K]func(){}
	c.mu.Unlock()
}
