package config

import "github.com/bnema/edgedock/internal/domain/entity"

// Default configuration constants
const (
	// Input defaults
	defaultPollIntervalMs           = 16   // ~60Hz
	defaultPermissionPollIntervalMs = 2000 // retry cadence while access is denied

	// Logging defaults
	defaultMaxLogAgeDays  = 7 // days
	defaultMaxLogSizeMB   = 10
	defaultMaxLogBackups  = 5
	defaultRetentionDays  = 90 // launch history
	defaultFallbackWidth  = 1440
	defaultFallbackHeight = 900
	defaultHotkeyKey      = "d"
)

// getDefaultLogDir returns the default log directory, falls back to empty string on error
func getDefaultLogDir() string {
	logDir, err := GetLogDir()
	if err != nil {
		return ""
	}
	return logDir
}

// DefaultConfig returns the default configuration values for edgedock.
func DefaultConfig() *Config {
	settings := entity.DefaultDockSettings()

	items := make([]ItemConfig, 0, 6)
	for _, it := range entity.SampleDockItems() {
		items = append(items, ItemConfig{
			ID:     string(it.ID),
			Name:   it.Name,
			Icon:   it.Icon,
			Target: it.Target,
		})
	}

	return &Config{
		Dock: DockConfig{
			Edge:            settings.Edge.String(),
			EdgeOffset:      settings.EdgeOffset,
			TriggerDistance: settings.TriggerDistance,
			HideDelayMs:     int(settings.HideDelay.Milliseconds()),
			Layout: LayoutConfig{
				ItemSize:    settings.Layout.ItemSize,
				ItemSpacing: settings.Layout.ItemSpacing,
				Padding:     settings.Layout.Padding,
				Thickness:   settings.Layout.Thickness,
			},
		},
		Items: items,
		Screen: ScreenConfig{
			Width:  defaultFallbackWidth,
			Height: defaultFallbackHeight,
		},
		Input: InputConfig{
			PollIntervalMs:           defaultPollIntervalMs,
			PermissionPollIntervalMs: defaultPermissionPollIntervalMs,
			RequireAccessibility:     true,
		},
		Hotkey: HotkeyConfig{
			Enabled:   false,
			Modifiers: []string{"ctrl", "alt"},
			Key:       defaultHotkeyKey,
		},
		Notifications: NotificationsConfig{
			Enabled: true,
		},
		Logging: LoggingConfig{
			Level:         "info",
			Format:        "console",
			EnableFileLog: true,
			LogDir:        getDefaultLogDir(),
			MaxSizeMB:     defaultMaxLogSizeMB,
			MaxBackups:    defaultMaxLogBackups,
			MaxAge:        defaultMaxLogAgeDays,
			Compress:      true,
		},
		Database: DatabaseConfig{
			RetentionDays: defaultRetentionDays,
		},
	}
}
