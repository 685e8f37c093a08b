// Package controller owns the dock's runtime state: the settings the panel is
// laid out from and the pointer-driven visibility state machine.
package controller

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/bnema/edgedock/internal/domain/entity"
	"github.com/bnema/edgedock/internal/domain/geometry"
)

// ChangeField is a bit set naming which parts of the settings changed.
type ChangeField uint16

const (
	ChangeEdge ChangeField = 1 << iota
	ChangeEdgeOffset
	ChangeTriggerDistance
	ChangeHideDelay
	ChangeLayout
	ChangeItems
	ChangeScreen
)

// Has reports whether any of f is set.
func (c ChangeField) Has(f ChangeField) bool {
	return c&f != 0
}

// AffectsGeometry reports whether the change can move or resize the panel.
func (c ChangeField) AffectsGeometry() bool {
	return c.Has(ChangeEdge | ChangeEdgeOffset | ChangeLayout | ChangeItems | ChangeScreen)
}

// Snapshot is a consistent copy of everything the panel geometry depends on.
type Snapshot struct {
	Settings entity.DockSettings
	Items    []entity.DockItem
	Screen   entity.Screen
}

// Geometry computes the panel placement for the snapshot.
func (s Snapshot) Geometry() entity.PanelGeometry {
	return geometry.Compute(s.Settings, s.Screen, len(s.Items))
}

// Validate reports settings the panel cannot honour on this screen.
func (s Snapshot) Validate() []*entity.GeometryConfigError {
	return geometry.Validate(s.Settings, s.Screen, len(s.Items))
}

// Change is delivered to OnChange observers after a mutation.
type Change struct {
	Fields   ChangeField
	Snapshot Snapshot
}

// SettingsStore holds the mutable dock configuration. It is safe for
// concurrent use. Observers run on the mutating goroutine after the store's
// lock is released, in registration order.
type SettingsStore struct {
	mu       sync.RWMutex
	settings entity.DockSettings
	items    []entity.DockItem
	screen   entity.Screen

	obsMu     sync.Mutex
	observers map[int]func(Change)
	nextObsID int
}

// NewSettingsStore creates a store seeded with the given state.
func NewSettingsStore(settings entity.DockSettings, items []entity.DockItem, screen entity.Screen) *SettingsStore {
	return &SettingsStore{
		settings:  settings,
		items:     slices.Clone(items),
		screen:    screen,
		observers: make(map[int]func(Change)),
	}
}

// Snapshot returns a copy of the current state.
func (s *SettingsStore) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *SettingsStore) snapshotLocked() Snapshot {
	return Snapshot{
		Settings: s.settings,
		Items:    slices.Clone(s.items),
		Screen:   s.screen,
	}
}

// Settings returns the current dock settings.
func (s *SettingsStore) Settings() entity.DockSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Items returns a copy of the configured items.
func (s *SettingsStore) Items() []entity.DockItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items)
}

// Screen returns the current screen.
func (s *SettingsStore) Screen() entity.Screen {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.screen
}

// Geometry computes the panel placement from the current state.
func (s *SettingsStore) Geometry() entity.PanelGeometry {
	return s.Snapshot().Geometry()
}

// SetEdge moves the panel to another edge.
func (s *SettingsStore) SetEdge(edge entity.Edge) error {
	if !edge.Valid() {
		return fmt.Errorf("%w: %q", entity.ErrInvalidEdge, string(edge))
	}
	s.update(func(st *entity.DockSettings, _ *[]entity.DockItem, _ *entity.Screen) ChangeField {
		if st.Edge == edge {
			return 0
		}
		st.Edge = edge
		return ChangeEdge
	})
	return nil
}

// SetEdgeOffset changes the gap between panel and screen edge. Out of range
// offsets are stored as given; Snapshot.Validate reports them.
func (s *SettingsStore) SetEdgeOffset(offset float64) {
	s.update(func(st *entity.DockSettings, _ *[]entity.DockItem, _ *entity.Screen) ChangeField {
		if st.EdgeOffset == offset {
			return 0
		}
		st.EdgeOffset = offset
		return ChangeEdgeOffset
	})
}

// SetTriggerDistance changes the depth of the trigger strip.
func (s *SettingsStore) SetTriggerDistance(d float64) {
	s.update(func(st *entity.DockSettings, _ *[]entity.DockItem, _ *entity.Screen) ChangeField {
		if st.TriggerDistance == d {
			return 0
		}
		st.TriggerDistance = d
		return ChangeTriggerDistance
	})
}

// SetHideDelay changes the debounce applied before hiding.
func (s *SettingsStore) SetHideDelay(d time.Duration) {
	s.update(func(st *entity.DockSettings, _ *[]entity.DockItem, _ *entity.Screen) ChangeField {
		if st.HideDelay == d {
			return 0
		}
		st.HideDelay = d
		return ChangeHideDelay
	})
}

// SetItems replaces the launchable items.
func (s *SettingsStore) SetItems(items []entity.DockItem) {
	s.update(func(_ *entity.DockSettings, cur *[]entity.DockItem, _ *entity.Screen) ChangeField {
		if slices.Equal(*cur, items) {
			return 0
		}
		*cur = slices.Clone(items)
		return ChangeItems
	})
}

// SetScreen records new display geometry.
func (s *SettingsStore) SetScreen(screen entity.Screen) {
	s.update(func(_ *entity.DockSettings, _ *[]entity.DockItem, cur *entity.Screen) ChangeField {
		if screensEqual(*cur, screen) {
			return 0
		}
		*cur = screen
		return ChangeScreen
	})
}

// Apply replaces settings and items in one step, as after a config reload.
// Observers see a single Change naming every field that differed.
func (s *SettingsStore) Apply(settings entity.DockSettings, items []entity.DockItem) error {
	if !settings.Edge.Valid() {
		return fmt.Errorf("%w: %q", entity.ErrInvalidEdge, string(settings.Edge))
	}
	s.update(func(st *entity.DockSettings, cur *[]entity.DockItem, _ *entity.Screen) ChangeField {
		fields := diffSettings(*st, settings)
		if !slices.Equal(*cur, items) {
			fields |= ChangeItems
			*cur = slices.Clone(items)
		}
		*st = settings
		return fields
	})
	return nil
}

// OnChange registers fn and returns a function that removes it.
func (s *SettingsStore) OnChange(fn func(Change)) func() {
	if fn == nil {
		return func() {}
	}

	s.obsMu.Lock()
	id := s.nextObsID
	s.nextObsID++
	s.observers[id] = fn
	s.obsMu.Unlock()

	return func() {
		s.obsMu.Lock()
		delete(s.observers, id)
		s.obsMu.Unlock()
	}
}

func (s *SettingsStore) update(mutate func(*entity.DockSettings, *[]entity.DockItem, *entity.Screen) ChangeField) {
	s.mu.Lock()
	fields := mutate(&s.settings, &s.items, &s.screen)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	if fields == 0 {
		return
	}
	s.notify(Change{Fields: fields, Snapshot: snap})
}

func (s *SettingsStore) notify(change Change) {
	s.obsMu.Lock()
	ids := make([]int, 0, len(s.observers))
	for id := range s.observers {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	fns := make([]func(Change), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, s.observers[id])
	}
	s.obsMu.Unlock()

	for _, fn := range fns {
		fn(change)
	}
}

func diffSettings(a, b entity.DockSettings) ChangeField {
	var fields ChangeField
	if a.Edge != b.Edge {
		fields |= ChangeEdge
	}
	if a.EdgeOffset != b.EdgeOffset {
		fields |= ChangeEdgeOffset
	}
	if a.TriggerDistance != b.TriggerDistance {
		fields |= ChangeTriggerDistance
	}
	if a.HideDelay != b.HideDelay {
		fields |= ChangeHideDelay
	}
	if a.Layout != b.Layout {
		fields |= ChangeLayout
	}
	return fields
}

func screensEqual(a, b entity.Screen) bool {
	if a.Frame != b.Frame {
		return false
	}
	if (a.Usable == nil) != (b.Usable == nil) {
		return false
	}
	return a.Usable == nil || *a.Usable == *b.Usable
}
