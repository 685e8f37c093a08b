package mainloop

import "testing"

func queuePost(queue *[]func()) func(func()) bool {
	return func(fn func()) bool {
		*queue = append(*queue, fn)
		return true
	}
}

func TestCoalescerMergesBurstIntoSingleRun(t *testing.T) {
	queue := make([]func(), 0, 8)
	c := NewCoalescer[string](queuePost(&queue))

	value := 0
	for i := 1; i <= 5; i++ {
		v := i
		c.Post("reposition", func() { value = v })
	}

	if len(queue) != 1 {
		t.Fatalf("expected 1 scheduled callback, got %d", len(queue))
	}
	if !c.Pending("reposition") {
		t.Fatalf("expected key to be pending before the run")
	}
	queue[0]()

	if value != 5 {
		t.Fatalf("expected latest callback to run, got %d", value)
	}
	if c.Pending("reposition") {
		t.Fatalf("expected key to be cleared after the run")
	}
}

func TestCoalescerKeysAreIndependent(t *testing.T) {
	queue := make([]func(), 0, 4)
	c := NewCoalescer[int](queuePost(&queue))

	c.Post(1, func() {})
	c.Post(2, func() {})

	if len(queue) != 2 {
		t.Fatalf("expected 2 scheduled callbacks, got %d", len(queue))
	}
}

func TestCoalescerDropsWorkAfterClose(t *testing.T) {
	queue := make([]func(), 0, 4)
	c := NewCoalescer[string](queuePost(&queue))

	ran := false
	c.Post("availability", func() { ran = true })
	c.Close()

	if len(queue) != 1 {
		t.Fatalf("expected one queued callback before close, got %d", len(queue))
	}
	queue[0]()

	if ran {
		t.Fatalf("expected queued work to be dropped after close")
	}

	c.Post("availability", func() { ran = true })
	if len(queue) != 1 {
		t.Fatalf("expected no new callback after close, got %d", len(queue))
	}
}

func TestCoalescerReleasesKeyWhenPostRejected(t *testing.T) {
	c := NewCoalescer[string](func(func()) bool { return false })

	c.Post("reposition", func() {})
	if c.Pending("reposition") {
		t.Fatalf("expected rejected post to leave no pending key")
	}
}

func TestNewCoalescerPanicsOnNilPost(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected NewCoalescer to panic when post is nil")
		}
	}()

	_ = NewCoalescer[string](nil)
}
