// Package simulate replays recorded pointer movement through the visibility
// controller on a virtual clock and reports what the panel did.
package simulate

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/edgedock/internal/domain/entity"
	"github.com/bnema/edgedock/internal/infrastructure/pointer"
	"github.com/bnema/edgedock/internal/infrastructure/scheduler"
	"github.com/bnema/edgedock/internal/logging"
	"github.com/bnema/edgedock/internal/ui/controller"
	"github.com/bnema/edgedock/internal/ui/mainloop"
)

// EventKind names a controller notification.
type EventKind string

const (
	EventShown        EventKind = "shown"
	EventHidden       EventKind = "hidden"
	EventRepositioned EventKind = "repositioned"
	EventAvailable    EventKind = "available"
	EventUnavailable  EventKind = "unavailable"
)

// Event is one notification at an offset from the start of the recording.
type Event struct {
	At       time.Duration
	Kind     EventKind
	Geometry entity.PanelGeometry
}

// Input is a dock configuration plus the movement to replay.
type Input struct {
	Settings  entity.DockSettings
	Items     []entity.DockItem
	Screen    entity.Screen
	Recording []pointer.RecordedEvent
	// Tail is how long the clock keeps running after the last event so a
	// pending hide can fire. Zero uses the hide delay.
	Tail time.Duration
}

// Timeline is the result of a replay.
type Timeline struct {
	Events   []Event
	Final    entity.VisibilityStatus
	Duration time.Duration
}

// origin anchors virtual time. Only offsets are reported.
var origin = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// Run replays in.Recording. It never sleeps: the clock jumps to each event.
func Run(ctx context.Context, in Input) (*Timeline, error) {
	if !in.Settings.Edge.Valid() {
		return nil, fmt.Errorf("%w: %q", entity.ErrInvalidEdge, string(in.Settings.Edge))
	}
	ctx = logging.WithComponent(ctx, "simulate")

	clock := scheduler.NewVirtual(origin)
	store := controller.NewSettingsStore(in.Settings, in.Items, in.Screen)
	ctrl := controller.NewVisibilityController(ctx, store, clock, &mainloop.Inline{})
	defer ctrl.Close()

	rec := &recorder{clock: clock}
	ctrl.Subscribe(rec)

	advance := func(ctx context.Context, at time.Duration) error {
		clock.AdvanceTo(origin.Add(at))
		return ctx.Err()
	}
	if err := pointer.NewReplaySource(in.Recording, origin, advance).Start(ctx, ctrl); err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}

	tail := in.Tail
	if tail <= 0 {
		tail = in.Settings.HideDelay
	}
	clock.Advance(tail)

	return &Timeline{
		Events:   rec.events,
		Final:    ctrl.Status(),
		Duration: clock.Now().Sub(origin),
	}, nil
}

// recorder collects notifications. Everything runs on the replay goroutine.
type recorder struct {
	clock  *scheduler.Virtual
	events []Event
}

func (r *recorder) add(kind EventKind, geo entity.PanelGeometry) {
	r.events = append(r.events, Event{At: r.clock.Now().Sub(origin), Kind: kind, Geometry: geo})
}

func (r *recorder) OnVisibilityChanged(visible bool, geo entity.PanelGeometry) {
	if visible {
		r.add(EventShown, geo)
		return
	}
	r.add(EventHidden, geo)
}

func (r *recorder) OnGeometryChanged(geo entity.PanelGeometry) {
	r.add(EventRepositioned, geo)
}

func (r *recorder) OnAvailabilityChanged(available bool) {
	if available {
		r.add(EventAvailable, entity.PanelGeometry{})
		return
	}
	r.add(EventUnavailable, entity.PanelGeometry{})
}
