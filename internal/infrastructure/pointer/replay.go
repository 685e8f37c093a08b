package pointer

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bnema/edgedock/internal/application/port"
	"github.com/bnema/edgedock/internal/domain/entity"
)

// RecordedEvent is one line of a recording: either a pointer position or an
// availability change, at an offset from the start of the recording.
type RecordedEvent struct {
	At        time.Duration
	Position  *entity.Point
	Available *bool
}

type recordLine struct {
	X         *float64 `json:"x"`
	Y         *float64 `json:"y"`
	TMs       float64  `json:"t_ms"`
	Available *bool    `json:"available"`
}

// ParseRecording reads JSON lines of the form {"x":..,"y":..,"t_ms":..} or
// {"available":false,"t_ms":..}. Blank lines and lines starting with # are
// skipped. Positions are converted from origin to top-left within frame and
// timestamps must not go backwards.
func ParseRecording(r io.Reader, origin Origin, frame entity.Rect) ([]RecordedEvent, error) {
	var (
		events []RecordedEvent
		prev   time.Duration
	)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var rec recordLine
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		at := time.Duration(rec.TMs * float64(time.Millisecond))
		if at < prev {
			return nil, fmt.Errorf("line %d: t_ms %g goes backwards", lineNo, rec.TMs)
		}
		prev = at

		ev := RecordedEvent{At: at, Available: rec.Available}
		switch {
		case rec.X != nil && rec.Y != nil:
			p := ToTopLeft(entity.Point{X: *rec.X, Y: *rec.Y}, origin, frame)
			ev.Position = &p
		case rec.X != nil || rec.Y != nil:
			return nil, fmt.Errorf("line %d: both x and y are required", lineNo)
		case rec.Available == nil:
			return nil, fmt.Errorf("line %d: neither a position nor availability", lineNo)
		}
		events = append(events, ev)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read recording: %w", err)
	}
	return events, nil
}

// WaitFunc blocks until the recording offset at is reached.
type WaitFunc func(ctx context.Context, at time.Duration) error

// RealTime returns a WaitFunc that sleeps on the wall clock relative to the
// first call.
func RealTime() WaitFunc {
	var start time.Time
	return func(ctx context.Context, at time.Duration) error {
		if start.IsZero() {
			start = time.Now()
		}
		d := time.Until(start.Add(at))
		if d <= 0 {
			return ctx.Err()
		}
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			return nil
		}
	}
}

// ReplaySource feeds a parsed recording to a sink.
type ReplaySource struct {
	events []RecordedEvent
	wait   WaitFunc
	start  time.Time
}

var _ port.PointerSource = (*ReplaySource)(nil)

// NewReplaySource creates a source replaying events. Sample timestamps are
// start plus the recorded offset. A nil wait replays in real time.
func NewReplaySource(events []RecordedEvent, start time.Time, wait WaitFunc) *ReplaySource {
	if wait == nil {
		wait = RealTime()
	}
	return &ReplaySource{events: events, wait: wait, start: start}
}

// Start delivers every event in order and returns once the recording ends.
func (s *ReplaySource) Start(ctx context.Context, sink port.PointerSink) error {
	for _, ev := range s.events {
		if err := s.wait(ctx, ev.At); err != nil {
			return err
		}
		if ev.Available != nil {
			sink.OnAvailabilityChanged(*ev.Available)
		}
		if ev.Position != nil {
			sink.OnPointerSample(port.PointerSample{Position: *ev.Position, Time: s.start.Add(ev.At)})
		}
	}
	return nil
}
