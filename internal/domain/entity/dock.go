package entity

import "time"

// Default dock metrics, in points.
const (
	DefaultItemSize        = 60
	DefaultItemSpacing     = 10
	DefaultPanelPadding    = 40
	DefaultPanelThickness  = 80
	DefaultTriggerDistance = 5
	DefaultHideDelay       = 500 * time.Millisecond

	// MaxEdgeOffset bounds the user-configurable gap to the screen edge.
	MaxEdgeOffset = 50
)

// DockItemID uniquely identifies a launchable item.
type DockItemID string

// DockItem is a single launchable entry in the panel.
type DockItem struct {
	ID   DockItemID
	Name string
	// Icon is an icon identifier understood by the presentation layer.
	Icon string
	// Target is an application name or a command line.
	Target string
}

// PanelLayout holds the metrics used to size the panel from its content.
type PanelLayout struct {
	ItemSize    float64
	ItemSpacing float64
	Padding     float64
	Thickness   float64
}

// DefaultPanelLayout returns the stock dock metrics.
func DefaultPanelLayout() PanelLayout {
	return PanelLayout{
		ItemSize:    DefaultItemSize,
		ItemSpacing: DefaultItemSpacing,
		Padding:     DefaultPanelPadding,
		Thickness:   DefaultPanelThickness,
	}
}

// DockSettings is the externally configured part of the dock state.
type DockSettings struct {
	Edge            Edge
	EdgeOffset      float64
	TriggerDistance float64
	HideDelay       time.Duration
	Layout          PanelLayout
}

// DefaultDockSettings returns settings for a right-edge dock.
func DefaultDockSettings() DockSettings {
	return DockSettings{
		Edge:            EdgeRight,
		TriggerDistance: DefaultTriggerDistance,
		HideDelay:       DefaultHideDelay,
		Layout:          DefaultPanelLayout(),
	}
}

// SampleDockItems returns the items shipped in a fresh config.
func SampleDockItems() []DockItem {
	return []DockItem{
		{ID: "finder", Name: "Finder", Icon: "folder.fill", Target: "Finder"},
		{ID: "safari", Name: "Safari", Icon: "safari.fill", Target: "Safari"},
		{ID: "mail", Name: "Mail", Icon: "envelope.fill", Target: "Mail"},
		{ID: "music", Name: "Music", Icon: "music.note", Target: "Music"},
		{ID: "settings", Name: "Settings", Icon: "gearshape.fill", Target: "System Settings"},
		{ID: "terminal", Name: "Terminal", Icon: "terminal.fill", Target: "Terminal"},
	}
}
