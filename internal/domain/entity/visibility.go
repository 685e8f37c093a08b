package entity

// VisibilityState is the panel's show/hide state.
type VisibilityState string

const (
	VisibilityHidden  VisibilityState = "hidden"
	VisibilityVisible VisibilityState = "visible"
)

// IsVisible reports whether the state is VisibilityVisible.
func (s VisibilityState) IsVisible() bool {
	return s == VisibilityVisible
}

// VisibilityStatus is a point-in-time snapshot of the controller.
type VisibilityStatus struct {
	State VisibilityState
	// PendingHide is true while a debounce timer is armed.
	PendingHide bool
	// Suspended is true while pointer sampling is unavailable.
	Suspended bool
	// Generation counts armed and cancelled hide timers.
	Generation uint64
}

// VisibilityTrigger names what caused a transition.
type VisibilityTrigger string

const (
	TriggerPointerZone  VisibilityTrigger = "trigger_zone"
	TriggerDebounce     VisibilityTrigger = "debounce"
	TriggerShow         VisibilityTrigger = "show"
	TriggerHide         VisibilityTrigger = "hide"
	TriggerSuspend      VisibilityTrigger = "suspend"
	TriggerAvailability VisibilityTrigger = "availability"
)
