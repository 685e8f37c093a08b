package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/edgedock/internal/domain/entity"
)

// Config represents the complete configuration for edgedock.
type Config struct {
	Dock DockConfig `mapstructure:"dock" toml:"dock" jsonschema:"description=Panel placement and auto-hide behaviour"`
	// Items are the launchable entries, in display order.
	Items         []ItemConfig        `mapstructure:"items" toml:"items"`
	Screen        ScreenConfig        `mapstructure:"screen" toml:"screen"`
	Input         InputConfig         `mapstructure:"input" toml:"input"`
	Hotkey        HotkeyConfig        `mapstructure:"hotkey" toml:"hotkey"`
	Notifications NotificationsConfig `mapstructure:"notifications" toml:"notifications"`
	Logging       LoggingConfig       `mapstructure:"logging" toml:"logging"`
	Database      DatabaseConfig      `mapstructure:"database" toml:"database"`
}

// DockConfig controls where the panel sits and when it hides.
type DockConfig struct {
	// Edge is one of top, bottom, left, right.
	Edge string `mapstructure:"edge" toml:"edge" jsonschema:"enum=top,enum=bottom,enum=left,enum=right,default=right"`
	// EdgeOffset is the gap between panel and screen edge, 0 to 50 points.
	EdgeOffset float64 `mapstructure:"edge_offset" toml:"edge_offset" jsonschema:"minimum=0,maximum=50"`
	// TriggerDistance is the depth of the strip that shows the panel.
	TriggerDistance float64 `mapstructure:"trigger_distance" toml:"trigger_distance" jsonschema:"exclusiveMinimum=0,default=5"`
	// HideDelayMs is the grace period before hiding, in milliseconds.
	HideDelayMs int          `mapstructure:"hide_delay_ms" toml:"hide_delay_ms" jsonschema:"minimum=0,default=500"`
	Layout      LayoutConfig `mapstructure:"layout" toml:"layout"`
}

// LayoutConfig holds the panel metrics, in points.
type LayoutConfig struct {
	ItemSize    float64 `mapstructure:"item_size" toml:"item_size" jsonschema:"exclusiveMinimum=0"`
	ItemSpacing float64 `mapstructure:"item_spacing" toml:"item_spacing" jsonschema:"minimum=0"`
	Padding     float64 `mapstructure:"padding" toml:"padding" jsonschema:"minimum=0"`
	Thickness   float64 `mapstructure:"thickness" toml:"thickness" jsonschema:"exclusiveMinimum=0"`
}

// ItemConfig is one launchable entry.
type ItemConfig struct {
	ID     string `mapstructure:"id" toml:"id"`
	Name   string `mapstructure:"name" toml:"name"`
	Icon   string `mapstructure:"icon" toml:"icon,omitempty"`
	Target string `mapstructure:"target" toml:"target" jsonschema:"description=Application name or command line"`
}

// ScreenConfig describes the display used when the system cannot report one.
type ScreenConfig struct {
	Width  float64 `mapstructure:"width" toml:"width" jsonschema:"minimum=0"`
	Height float64 `mapstructure:"height" toml:"height" jsonschema:"minimum=0"`
	// InsetTop and InsetBottom carve the usable area out of the frame
	// (menu bar, system dock).
	InsetTop    float64 `mapstructure:"inset_top" toml:"inset_top" jsonschema:"minimum=0"`
	InsetBottom float64 `mapstructure:"inset_bottom" toml:"inset_bottom" jsonschema:"minimum=0"`
}

// InputConfig tunes pointer sampling.
type InputConfig struct {
	PollIntervalMs           int  `mapstructure:"poll_interval_ms" toml:"poll_interval_ms" jsonschema:"exclusiveMinimum=0,default=16"`
	PermissionPollIntervalMs int  `mapstructure:"permission_poll_interval_ms" toml:"permission_poll_interval_ms" jsonschema:"exclusiveMinimum=0,default=2000"`
	RequireAccessibility     bool `mapstructure:"require_accessibility" toml:"require_accessibility"`
}

// HotkeyConfig binds a global shortcut that toggles the panel.
type HotkeyConfig struct {
	Enabled   bool     `mapstructure:"enabled" toml:"enabled"`
	Modifiers []string `mapstructure:"modifiers" toml:"modifiers" jsonschema:"description=ctrl shift alt cmd"`
	Key       string   `mapstructure:"key" toml:"key"`
}

// NotificationsConfig controls desktop notifications.
type NotificationsConfig struct {
	// Enabled posts a notification when pointer access is lost or regained.
	Enabled bool `mapstructure:"enabled" toml:"enabled"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level         string `mapstructure:"level" toml:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format        string `mapstructure:"format" toml:"format" jsonschema:"enum=console,enum=json,enum=text"`
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log"`
	LogDir        string `mapstructure:"log_dir" toml:"log_dir"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" toml:"max_size_mb" jsonschema:"exclusiveMinimum=0"`
	MaxBackups    int    `mapstructure:"max_backups" toml:"max_backups" jsonschema:"minimum=0"`
	MaxAge        int    `mapstructure:"max_age" toml:"max_age" jsonschema:"minimum=0,description=Days to keep rotated logs"`
	Compress      bool   `mapstructure:"compress" toml:"compress"`
}

// DatabaseConfig holds the launch history store settings.
type DatabaseConfig struct {
	Path string `mapstructure:"path" toml:"path"`
	// RetentionDays prunes launch history older than this. 0 keeps everything.
	RetentionDays int `mapstructure:"retention_days" toml:"retention_days" jsonschema:"minimum=0"`
}

// DockSettings converts the dock section to domain settings.
func (c *Config) DockSettings() (entity.DockSettings, error) {
	edge, err := entity.ParseEdge(c.Dock.Edge)
	if err != nil {
		return entity.DockSettings{}, fmt.Errorf("dock.edge: %w", err)
	}
	return entity.DockSettings{
		Edge:            edge,
		EdgeOffset:      c.Dock.EdgeOffset,
		TriggerDistance: c.Dock.TriggerDistance,
		HideDelay:       time.Duration(c.Dock.HideDelayMs) * time.Millisecond,
		Layout: entity.PanelLayout{
			ItemSize:    c.Dock.Layout.ItemSize,
			ItemSpacing: c.Dock.Layout.ItemSpacing,
			Padding:     c.Dock.Layout.Padding,
			Thickness:   c.Dock.Layout.Thickness,
		},
	}, nil
}

// DockItems converts the items section to domain items.
func (c *Config) DockItems() []entity.DockItem {
	items := make([]entity.DockItem, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, entity.DockItem{
			ID:     entity.DockItemID(it.ID),
			Name:   it.Name,
			Icon:   it.Icon,
			Target: it.Target,
		})
	}
	return items
}

// FallbackScreen returns the configured screen. The frame is empty when no
// size is configured.
func (c *Config) FallbackScreen() entity.Screen {
	s := entity.NewScreen(c.Screen.Width, c.Screen.Height)
	if c.Screen.InsetTop > 0 || c.Screen.InsetBottom > 0 {
		usable := entity.Rect{
			Min: entity.Point{X: 0, Y: c.Screen.InsetTop},
			Max: entity.Point{X: c.Screen.Width, Y: c.Screen.Height - c.Screen.InsetBottom},
		}
		s.Usable = &usable
	}
	return s
}

// PollInterval returns the pointer sampling interval.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.Input.PollIntervalMs) * time.Millisecond
}

// PermissionPollInterval returns the retry interval while sampling is denied.
func (c *Config) PermissionPollInterval() time.Duration {
	return time.Duration(c.Input.PermissionPollIntervalMs) * time.Millisecond
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	out := *c
	out.Items = append([]ItemConfig(nil), c.Items...)
	out.Hotkey.Modifiers = append([]string(nil), c.Hotkey.Modifiers...)
	return &out
}

func itemIDFromName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}
