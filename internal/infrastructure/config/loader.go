package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
	// explicitFile is set by SetConfigFile; an explicit file is never
	// created on demand.
	explicitFile string
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)
	v.AddConfigPath(".") // Current directory for development

	// EDGEDOCK_DOCK_EDGE, EDGEDOCK_INPUT_POLL_INTERVAL_MS, ...
	v.SetEnvPrefix("EDGEDOCK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Short names for the variables people actually type.
	if err := v.BindEnv("logging.level", "EDGEDOCK_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind EDGEDOCK_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "EDGEDOCK_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind EDGEDOCK_LOG_FORMAT: %w", err)
	}
	if err := v.BindEnv("dock.edge", "EDGEDOCK_EDGE"); err != nil {
		return nil, fmt.Errorf("failed to bind EDGEDOCK_EDGE: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// SetConfigFile makes the manager read path instead of searching the config
// directories. It must be called before Load.
func (m *Manager) SetConfigFile(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.explicitFile = path
	m.viper.SetConfigFile(path)
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.decode()
	if err != nil {
		return err
	}
	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var configFileNotFoundError viper.ConfigFileNotFoundError
	if !errors.As(err, &configFileNotFoundError) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile, _ = GetConfigFile()
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		configDir, _ := GetConfigDir()
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			configDir,
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf(
			"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
			rereadErr,
		)
	}
	return nil
}

// decode unmarshals, completes, normalizes and validates the viper state.
func (m *Manager) decode() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	if err := ensureDatabasePath(config); err != nil {
		return nil, err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

func ensureDatabasePath(config *Config) error {
	if config.Database.Path != "" {
		return nil
	}
	dbPath, err := GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	config.Database.Path = dbPath
	return nil
}

func normalizeConfig(config *Config) {
	config.Dock.Edge = strings.ToLower(strings.TrimSpace(config.Dock.Edge))
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	config.Hotkey.Key = strings.ToLower(strings.TrimSpace(config.Hotkey.Key))

	for i, m := range config.Hotkey.Modifiers {
		config.Hotkey.Modifiers[i] = strings.ToLower(strings.TrimSpace(m))
	}

	for i := range config.Items {
		item := &config.Items[i]
		item.ID = strings.TrimSpace(item.ID)
		item.Name = strings.TrimSpace(item.Name)
		if item.ID == "" {
			item.ID = itemIDFromName(item.Name)
		}
		if item.Name == "" {
			item.Name = item.ID
		}
	}
}

// Get returns a copy of the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	return m.config.Clone()
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.viper.ConfigFileUsed()
}

// createDefaultConfig writes the defaults and their schema next to each other.
func (m *Manager) createDefaultConfig() error {
	if m.explicitFile != "" {
		return fmt.Errorf("config file %s does not exist", m.explicitFile)
	}

	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	if err := WriteConfigOrdered(DefaultConfig(), configFile); err != nil {
		return err
	}
	if _, err := WriteSchemaFile(filepath.Dir(configFile)); err != nil {
		return err
	}

	m.viper.SetConfigFile(configFile)
	fmt.Fprintf(os.Stderr, "Created default configuration file: %s (TOML format)\n", configFile)
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	// Note: Database.Path is set dynamically in Load(), no defaults needed

	m.setDockDefaults(defaults)
	m.setItemDefaults(defaults)
	m.setScreenDefaults(defaults)
	m.setInputDefaults(defaults)
	m.setHotkeyDefaults(defaults)
	m.setLoggingDefaults(defaults)
	m.viper.SetDefault("notifications.enabled", defaults.Notifications.Enabled)
	m.viper.SetDefault("database.retention_days", defaults.Database.RetentionDays)
}

func (m *Manager) setDockDefaults(defaults *Config) {
	m.viper.SetDefault("dock.edge", defaults.Dock.Edge)
	m.viper.SetDefault("dock.edge_offset", defaults.Dock.EdgeOffset)
	m.viper.SetDefault("dock.trigger_distance", defaults.Dock.TriggerDistance)
	m.viper.SetDefault("dock.hide_delay_ms", defaults.Dock.HideDelayMs)
	m.viper.SetDefault("dock.layout.item_size", defaults.Dock.Layout.ItemSize)
	m.viper.SetDefault("dock.layout.item_spacing", defaults.Dock.Layout.ItemSpacing)
	m.viper.SetDefault("dock.layout.padding", defaults.Dock.Layout.Padding)
	m.viper.SetDefault("dock.layout.thickness", defaults.Dock.Layout.Thickness)
}

// setItemDefaults registers the sample items as plain maps so they decode
// the same way as items read from a file.
func (m *Manager) setItemDefaults(defaults *Config) {
	items := make([]map[string]any, 0, len(defaults.Items))
	for _, it := range defaults.Items {
		items = append(items, map[string]any{
			"id":     it.ID,
			"name":   it.Name,
			"icon":   it.Icon,
			"target": it.Target,
		})
	}
	m.viper.SetDefault("items", items)
}

func (m *Manager) setScreenDefaults(defaults *Config) {
	m.viper.SetDefault("screen.width", defaults.Screen.Width)
	m.viper.SetDefault("screen.height", defaults.Screen.Height)
	m.viper.SetDefault("screen.inset_top", defaults.Screen.InsetTop)
	m.viper.SetDefault("screen.inset_bottom", defaults.Screen.InsetBottom)
}

func (m *Manager) setInputDefaults(defaults *Config) {
	m.viper.SetDefault("input.poll_interval_ms", defaults.Input.PollIntervalMs)
	m.viper.SetDefault("input.permission_poll_interval_ms", defaults.Input.PermissionPollIntervalMs)
	m.viper.SetDefault("input.require_accessibility", defaults.Input.RequireAccessibility)
}

func (m *Manager) setHotkeyDefaults(defaults *Config) {
	m.viper.SetDefault("hotkey.enabled", defaults.Hotkey.Enabled)
	m.viper.SetDefault("hotkey.modifiers", defaults.Hotkey.Modifiers)
	m.viper.SetDefault("hotkey.key", defaults.Hotkey.Key)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age", defaults.Logging.MaxAge)
	m.viper.SetDefault("logging.compress", defaults.Logging.Compress)
}
