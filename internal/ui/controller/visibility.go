package controller

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bnema/edgedock/internal/application/port"
	"github.com/bnema/edgedock/internal/domain/entity"
	"github.com/bnema/edgedock/internal/domain/geometry"
	"github.com/bnema/edgedock/internal/logging"
	"github.com/bnema/edgedock/internal/ui/mainloop"
	"github.com/rs/zerolog"
)

const repositionKey = "reposition"

// Dispatcher serializes tasks onto the goroutine that owns controller state.
// mainloop.Loop and mainloop.Inline implement it.
type Dispatcher interface {
	Post(fn func()) bool
}

type eventKind uint8

const (
	eventVisibility eventKind = iota
	eventAvailability
)

type observerEntry struct {
	id  int
	obs port.VisibilityObserver
}

type event struct {
	kind      eventKind
	visible   bool
	available bool
	geometry  entity.PanelGeometry
}

// VisibilityController drives the Hidden/Visible state machine from pointer
// samples. Every mutation runs as a task on the dispatcher, so evaluations
// never interleave. Public methods may be called from any goroutine.
type VisibilityController struct {
	store     *SettingsStore
	scheduler port.Scheduler
	dispatch  Dispatcher
	coalescer *mainloop.Coalescer[string]
	logger    *zerolog.Logger

	mu         sync.RWMutex
	state      entity.VisibilityState
	suspended  bool
	available  bool
	generation uint64
	hideTimer  port.Timer

	obsMu     sync.RWMutex
	observers []observerEntry
	nextObsID int

	closed      atomic.Bool
	unsubscribe func()
}

var _ port.PointerSink = (*VisibilityController)(nil)

// NewVisibilityController creates a controller in the Hidden state. Geometry
// is read from store on every decision.
func NewVisibilityController(
	ctx context.Context,
	store *SettingsStore,
	scheduler port.Scheduler,
	dispatch Dispatcher,
) *VisibilityController {
	ctx = logging.WithComponent(ctx, "visibility")

	c := &VisibilityController{
		store:     store,
		scheduler: scheduler,
		dispatch:  dispatch,
		coalescer: mainloop.NewCoalescer[string](dispatch.Post),
		logger:    logging.FromContext(ctx),
		state:     entity.VisibilityHidden,
		available: true,
	}
	c.unsubscribe = store.OnChange(c.onSettingsChange)
	c.reportFindings(store.Snapshot())
	return c
}

// Subscribe registers obs for visibility, geometry and availability
// notifications. The returned function removes it.
func (c *VisibilityController) Subscribe(obs port.VisibilityObserver) func() {
	c.obsMu.Lock()
	id := c.nextObsID
	c.nextObsID++
	c.observers = append(c.observers, observerEntry{id: id, obs: obs})
	c.obsMu.Unlock()

	return func() {
		c.obsMu.Lock()
		defer c.obsMu.Unlock()
		c.observers = slices.DeleteFunc(c.observers, func(e observerEntry) bool {
			return e.id == id
		})
	}
}

// OnPointerSample queues one evaluation of the transition rules.
func (c *VisibilityController) OnPointerSample(sample port.PointerSample) {
	c.post(func() { c.evaluate(sample) })
}

// OnAvailabilityChanged implements port.PointerSink.
func (c *VisibilityController) OnAvailabilityChanged(available bool) {
	c.SetAvailability(available)
}

// Show makes the panel visible and cancels a pending hide.
// It is ignored while suspended.
func (c *VisibilityController) Show() {
	c.post(func() {
		c.mu.Lock()
		if c.suspended {
			c.mu.Unlock()
			c.logger.Debug().Msg("show ignored while suspended")
			return
		}
		c.cancelHideLocked()
		events := c.setStateLocked(entity.VisibilityVisible, entity.TriggerShow, c.store.Geometry())
		c.mu.Unlock()
		c.emit(events)
	})
}

// Hide hides the panel immediately and cancels a pending hide.
func (c *VisibilityController) Hide() {
	c.post(func() {
		c.mu.Lock()
		c.cancelHideLocked()
		events := c.setStateLocked(entity.VisibilityHidden, entity.TriggerHide, c.store.Geometry())
		c.mu.Unlock()
		c.emit(events)
	})
}

// Suspend forces the panel hidden and stops hit-testing until Resume.
func (c *VisibilityController) Suspend() {
	c.post(func() {
		c.mu.Lock()
		events := c.suspendLocked(entity.TriggerSuspend)
		c.mu.Unlock()
		c.emit(events)
	})
}

// Resume re-enables hit-testing. The panel stays hidden until the next
// trigger zone entry.
func (c *VisibilityController) Resume() {
	c.post(func() {
		c.mu.Lock()
		c.resumeLocked()
		c.mu.Unlock()
	})
}

// SetAvailability records whether pointer sampling works. Losing it
// suspends the controller, regaining it resumes.
func (c *VisibilityController) SetAvailability(available bool) {
	c.post(func() {
		c.mu.Lock()
		if c.available == available {
			c.mu.Unlock()
			return
		}
		c.available = available

		var events []event
		if available {
			c.resumeLocked()
		} else {
			events = c.suspendLocked(entity.TriggerAvailability)
		}
		events = append(events, event{kind: eventAvailability, available: available})
		c.mu.Unlock()

		c.logger.Info().Bool("available", available).Msg("pointer availability changed")
		c.emit(events)
	})
}

// CurrentGeometry returns the panel placement computed from the current
// settings.
func (c *VisibilityController) CurrentGeometry() entity.PanelGeometry {
	return c.store.Geometry()
}

// Status returns a snapshot of the state machine.
func (c *VisibilityController) Status() entity.VisibilityStatus {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return entity.VisibilityStatus{
		State:       c.state,
		PendingHide: c.hideTimer != nil,
		Suspended:   c.suspended,
		Generation:  c.generation,
	}
}

// Run drains the dispatcher when it is a runnable loop, otherwise it blocks
// until ctx is done.
func (c *VisibilityController) Run(ctx context.Context) error {
	if runner, ok := c.dispatch.(interface{ Run(context.Context) error }); ok {
		return runner.Run(ctx)
	}
	<-ctx.Done()
	return ctx.Err()
}

// Close detaches the controller from its store and drops further work.
// A pending hide is cancelled.
func (c *VisibilityController) Close() {
	if c.closed.Swap(true) {
		return
	}
	c.unsubscribe()
	c.coalescer.Close()

	c.mu.Lock()
	c.cancelHideLocked()
	c.mu.Unlock()
}

func (c *VisibilityController) post(fn func()) {
	if c.closed.Load() {
		return
	}
	if !c.dispatch.Post(fn) {
		c.logger.Debug().Msg("dispatcher closed, task dropped")
	}
}

func (c *VisibilityController) evaluate(sample port.PointerSample) {
	if c.closed.Load() {
		return
	}

	// Always fresh: settings may have changed since the last sample.
	snap := c.store.Snapshot()
	settings := snap.Settings
	pos := sample.Position

	c.mu.Lock()
	if c.suspended {
		c.mu.Unlock()
		return
	}

	var events []event
	switch {
	case geometry.IsInTriggerZone(settings.Edge, pos, snap.Screen.Frame, settings.TriggerDistance):
		c.cancelHideLocked()
		events = c.setStateLocked(entity.VisibilityVisible, entity.TriggerPointerZone, snap.Geometry())
	case !c.state.IsVisible():
		// Hidden and away from the edge: nothing to decide.
	case snap.Geometry().Rect.Contains(pos):
		c.cancelHideLocked()
	default:
		c.armHideLocked(settings.HideDelay)
	}
	c.mu.Unlock()

	c.emit(events)
}

// armHideLocked (re)starts the debounce. The previous timer is cancelled and
// a fresh generation is captured by the new callback.
func (c *VisibilityController) armHideLocked(delay time.Duration) {
	c.cancelHideLocked()

	c.generation++
	gen := c.generation
	c.hideTimer = c.scheduler.AfterFunc(delay, func() {
		c.post(func() { c.hideExpired(gen) })
	})
}

func (c *VisibilityController) cancelHideLocked() {
	if c.hideTimer == nil {
		return
	}
	c.hideTimer.Stop()
	c.hideTimer = nil
	c.generation++
}

func (c *VisibilityController) hideExpired(gen uint64) {
	c.mu.Lock()
	if gen != c.generation || c.hideTimer == nil {
		current := c.generation
		c.mu.Unlock()
		c.logger.Debug().
			Uint64("timer_generation", gen).
			Uint64("generation", current).
			Msg("stale hide timer ignored")
		return
	}
	c.hideTimer = nil
	events := c.setStateLocked(entity.VisibilityHidden, entity.TriggerDebounce, c.store.Geometry())
	c.mu.Unlock()

	c.emit(events)
}

func (c *VisibilityController) suspendLocked(trigger entity.VisibilityTrigger) []event {
	if !c.suspended {
		c.logger.Info().Str("trigger", string(trigger)).Msg("visibility suspended")
	}
	c.suspended = true
	c.cancelHideLocked()
	return c.setStateLocked(entity.VisibilityHidden, trigger, c.store.Geometry())
}

func (c *VisibilityController) resumeLocked() {
	if !c.suspended {
		return
	}
	c.suspended = false
	c.logger.Info().Msg("visibility resumed")
}

// setStateLocked reports geo, the placement the transition was decided on,
// so observers never see geometry from a later settings snapshot.
func (c *VisibilityController) setStateLocked(state entity.VisibilityState, trigger entity.VisibilityTrigger, geo entity.PanelGeometry) []event {
	if c.state == state {
		return nil
	}
	c.state = state

	c.logger.Debug().
		Str("state", string(state)).
		Str("trigger", string(trigger)).
		Str("edge", geo.Edge.String()).
		Msg("visibility changed")

	return []event{{kind: eventVisibility, visible: state.IsVisible(), geometry: geo}}
}

func (c *VisibilityController) onSettingsChange(change Change) {
	c.reportFindings(change.Snapshot)
	if !change.Fields.AffectsGeometry() {
		return
	}
	c.post(func() {
		c.mu.RLock()
		visible := c.state.IsVisible()
		c.mu.RUnlock()
		if !visible {
			return
		}
		// Bursts of changes (e.g. a config reload touching several keys)
		// produce one reposition with the latest geometry.
		c.coalescer.Post(repositionKey, func() {
			c.mu.RLock()
			visible := c.state.IsVisible()
			c.mu.RUnlock()
			if !visible {
				return
			}
			geo := c.store.Geometry()
			c.logger.Debug().
				Float64("anchor_x", geo.Anchor.X).
				Float64("anchor_y", geo.Anchor.Y).
				Msg("repositioning visible panel")
			c.emitGeometry(geo)
		})
	})
}

func (c *VisibilityController) reportFindings(snap Snapshot) {
	for _, finding := range snap.Validate() {
		c.logger.Warn().
			Str("field", finding.Field).
			Float64("value", finding.Value).
			Float64("limit", finding.Limit).
			Msg(finding.Msg)
	}
}

func (c *VisibilityController) snapshotObservers() []port.VisibilityObserver {
	c.obsMu.RLock()
	defer c.obsMu.RUnlock()
	out := make([]port.VisibilityObserver, 0, len(c.observers))
	for _, e := range c.observers {
		out = append(out, e.obs)
	}
	return out
}

func (c *VisibilityController) emit(events []event) {
	if len(events) == 0 {
		return
	}
	observers := c.snapshotObservers()
	for _, ev := range events {
		for _, obs := range observers {
			switch ev.kind {
			case eventVisibility:
				obs.OnVisibilityChanged(ev.visible, ev.geometry)
			case eventAvailability:
				obs.OnAvailabilityChanged(ev.available)
			}
		}
	}
}

func (c *VisibilityController) emitGeometry(geo entity.PanelGeometry) {
	for _, obs := range c.snapshotObservers() {
		obs.OnGeometryChanged(geo)
	}
}
