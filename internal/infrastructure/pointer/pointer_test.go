package pointer

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bnema/edgedock/internal/application/port"
	"github.com/bnema/edgedock/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sinkRecorder struct {
	mu           sync.Mutex
	samples      []entity.Point
	availability []bool
}

func (s *sinkRecorder) OnPointerSample(sample port.PointerSample) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.samples = append(s.samples, sample.Position)
}

func (s *sinkRecorder) OnAvailabilityChanged(available bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.availability = append(s.availability, available)
}

func (s *sinkRecorder) snapshot() ([]entity.Point, []bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.Point(nil), s.samples...), append([]bool(nil), s.availability...)
}

// scriptedSampler returns its script in order, then repeats the last entry.
type scriptedSampler struct {
	mu     sync.Mutex
	script []scriptStep
	origin Origin
}

type scriptStep struct {
	p   entity.Point
	err error
}

func (s *scriptedSampler) Sample() (entity.Point, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	step := s.script[0]
	if len(s.script) > 1 {
		s.script = s.script[1:]
	}
	return step.p, step.err
}

func (s *scriptedSampler) Origin() Origin { return s.origin }

func TestToTopLeft(t *testing.T) {
	frame := entity.RectFromSize(entity.Size{W: 1000, H: 800})

	assert.Equal(t, entity.Point{X: 998, Y: 790}, ToTopLeft(entity.Point{X: 998, Y: 10}, OriginBottomLeft, frame))
	assert.Equal(t, entity.Point{X: 998, Y: 10}, ToTopLeft(entity.Point{X: 998, Y: 10}, OriginTopLeft, frame))
}

func TestParseOrigin(t *testing.T) {
	o, err := ParseOrigin("Bottom-Left")
	require.NoError(t, err)
	assert.Equal(t, OriginBottomLeft, o)

	o, err = ParseOrigin("")
	require.NoError(t, err)
	assert.Equal(t, OriginTopLeft, o)

	_, err = ParseOrigin("center")
	assert.Error(t, err)
}

func TestPollingSource_DeduplicatesAndReportsAvailability(t *testing.T) {
	denied := errors.Join(entity.ErrPermissionUnavailable)
	sampler := &scriptedSampler{script: []scriptStep{
		{err: denied},
		{err: denied},
		{p: entity.Point{X: 10, Y: 10}},
		{p: entity.Point{X: 10, Y: 10}},
		{p: entity.Point{X: 20, Y: 10}},
	}}
	src := NewPollingSource(sampler, PollingConfig{
		Interval:           time.Millisecond,
		PermissionInterval: time.Millisecond,
	})
	sink := &sinkRecorder{}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- src.Start(ctx, sink) }()

	require.Eventually(t, func() bool {
		samples, _ := sink.snapshot()
		return len(samples) >= 2
	}, time.Second, time.Millisecond)
	cancel()
	require.NoError(t, <-done)

	samples, availability := sink.snapshot()
	assert.Equal(t, []entity.Point{{X: 10, Y: 10}, {X: 20, Y: 10}}, samples)
	assert.Equal(t, []bool{false, true}, availability)
}

func TestPollingSource_FlipsBottomLeftSamplers(t *testing.T) {
	sampler := &scriptedSampler{
		origin: OriginBottomLeft,
		script: []scriptStep{{p: entity.Point{X: 500, Y: 0}}},
	}
	frame := entity.RectFromSize(entity.Size{W: 1000, H: 800})
	src := NewPollingSource(sampler, PollingConfig{
		Interval: time.Millisecond,
		Frame:    func() entity.Rect { return frame },
	})
	sink := &sinkRecorder{}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = src.Start(ctx, sink) }()

	require.Eventually(t, func() bool {
		samples, _ := sink.snapshot()
		return len(samples) == 1
	}, time.Second, time.Millisecond)

	samples, _ := sink.snapshot()
	assert.Equal(t, entity.Point{X: 500, Y: 800}, samples[0])
}

func TestParseRecording(t *testing.T) {
	input := `# scenario B
{"x": 998, "y": 400, "t_ms": 0}

{"x": 500, "y": 400, "t_ms": 100}
{"available": false, "t_ms": 150}
`
	frame := entity.RectFromSize(entity.Size{W: 1000, H: 800})

	events, err := ParseRecording(strings.NewReader(input), OriginTopLeft, frame)
	require.NoError(t, err)
	require.Len(t, events, 3)

	assert.Equal(t, entity.Point{X: 998, Y: 400}, *events[0].Position)
	assert.Equal(t, 100*time.Millisecond, events[1].At)
	assert.Nil(t, events[2].Position)
	require.NotNil(t, events[2].Available)
	assert.False(t, *events[2].Available)
}

func TestParseRecording_Errors(t *testing.T) {
	frame := entity.RectFromSize(entity.Size{W: 1000, H: 800})
	tests := map[string]string{
		"bad json":  `{"x": }`,
		"only x":    `{"x": 1, "t_ms": 0}`,
		"empty":     `{"t_ms": 0}`,
		"backwards": "{\"x\":1,\"y\":1,\"t_ms\":10}\n{\"x\":1,\"y\":1,\"t_ms\":5}",
	}

	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseRecording(strings.NewReader(input), OriginTopLeft, frame)
			assert.Error(t, err)
		})
	}
}

func TestParseRecording_BottomLeft(t *testing.T) {
	frame := entity.RectFromSize(entity.Size{W: 1000, H: 800})

	events, err := ParseRecording(strings.NewReader(`{"x": 10, "y": 790, "t_ms": 0}`), OriginBottomLeft, frame)
	require.NoError(t, err)
	assert.Equal(t, entity.Point{X: 10, Y: 10}, *events[0].Position)
}

func TestReplaySource_DeliversInOrder(t *testing.T) {
	p1 := entity.Point{X: 1, Y: 1}
	p2 := entity.Point{X: 2, Y: 2}
	off := false
	events := []RecordedEvent{
		{At: 0, Position: &p1},
		{At: 10 * time.Millisecond, Available: &off},
		{At: 20 * time.Millisecond, Position: &p2},
	}

	var waited []time.Duration
	wait := func(_ context.Context, at time.Duration) error {
		waited = append(waited, at)
		return nil
	}
	sink := &sinkRecorder{}

	require.NoError(t, NewReplaySource(events, time.Time{}, wait).Start(context.Background(), sink))

	samples, availability := sink.snapshot()
	assert.Equal(t, []entity.Point{p1, p2}, samples)
	assert.Equal(t, []bool{false}, availability)
	assert.Equal(t, []time.Duration{0, 10 * time.Millisecond, 20 * time.Millisecond}, waited)
}

func TestReplaySource_StopsOnCancel(t *testing.T) {
	p := entity.Point{X: 1, Y: 1}
	events := []RecordedEvent{{At: time.Hour, Position: &p}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewReplaySource(events, time.Time{}, nil).Start(ctx, &sinkRecorder{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSystemSamplerImplementsSampler(t *testing.T) {
	var _ Sampler = (*SystemSampler)(nil)
}
