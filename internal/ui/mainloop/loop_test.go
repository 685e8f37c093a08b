package mainloop

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoopRunsTasksInPostOrder(t *testing.T) {
	l := NewLoop()
	var got []int
	for i := 0; i < 100; i++ {
		v := i
		require.True(t, l.Post(func() { got = append(got, v) }))
	}
	l.Close()

	require.NoError(t, l.Run(context.Background()))
	require.Len(t, got, 100)
	for i, v := range got {
		assert.Equal(t, i, v)
	}
}

func TestLoopSerializesConcurrentPosters(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	l := NewLoop()
	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()

	var (
		wg      sync.WaitGroup
		active  int
		overlap bool
		count   int
	)
	for p := 0; p < 8; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				l.Post(func() {
					active++
					if active > 1 {
						overlap = true
					}
					count++
					active--
				})
			}
		}()
	}
	wg.Wait()

	finished := make(chan struct{})
	l.Post(func() { close(finished) })
	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not drain")
	}

	assert.False(t, overlap)
	assert.Equal(t, 400, count)

	l.Close()
	require.NoError(t, <-done)
}

func TestLoopRejectsPostsAfterClose(t *testing.T) {
	l := NewLoop()
	l.Close()
	assert.False(t, l.Post(func() {}))
	assert.Equal(t, 0, l.Len())
}

func TestLoopRecoversPanickingTask(t *testing.T) {
	l := NewLoop()
	ran := false
	l.Post(func() { panic("boom") })
	l.Post(func() { ran = true })
	l.Close()

	require.NoError(t, l.Run(context.Background()))
	assert.True(t, ran)
}

func TestLoopStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	l := NewLoop()
	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop")
	}
	assert.False(t, l.Post(func() {}))
}

func TestInlineQueuesReentrantPosts(t *testing.T) {
	var in Inline
	var order []string

	in.Post(func() {
		order = append(order, "outer-start")
		in.Post(func() { order = append(order, "inner") })
		order = append(order, "outer-end")
	})

	assert.Equal(t, []string{"outer-start", "outer-end", "inner"}, order)
}
