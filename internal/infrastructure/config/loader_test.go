package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/edgedock/internal/domain/entity"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	return root
}

func TestSetDockDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "right", mgr.viper.GetString("dock.edge"))
	assert.Equal(t, 500, mgr.viper.GetInt("dock.hide_delay_ms"))
	assert.Equal(t, 5.0, mgr.viper.GetFloat64("dock.trigger_distance"))
	assert.Equal(t, 16, mgr.viper.GetInt("input.poll_interval_ms"))
}

func TestNormalizeConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Dock.Edge = " Bottom "
	cfg.Logging.Level = "DEBUG"
	cfg.Items = []ItemConfig{
		{Name: "Visual Studio Code", Target: "code"},
		{ID: "term", Target: "kitty"},
	}

	normalizeConfig(cfg)

	assert.Equal(t, "bottom", cfg.Dock.Edge)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "visual-studio-code", cfg.Items[0].ID)
	assert.Equal(t, "term", cfg.Items[1].Name)
}

func TestManager_LoadCreatesDefaultConfig(t *testing.T) {
	root := isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	configFile := filepath.Join(root, "config", appName, "config.toml")
	assert.FileExists(t, configFile)
	assert.FileExists(t, filepath.Join(root, "config", appName, schemaFileName))

	cfg := mgr.Get()
	assert.Equal(t, "right", cfg.Dock.Edge)
	assert.Len(t, cfg.Items, len(entity.SampleDockItems()))
	assert.Equal(t, "finder", cfg.Items[0].ID)
	assert.Equal(t, filepath.Join(root, "data", appName, databaseName), cfg.Database.Path)

	settings, err := cfg.DockSettings()
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultDockSettings(), settings)
}

func TestManager_LoadReadsFileAndEnv(t *testing.T) {
	root := isolateXDG(t)
	t.Setenv("EDGEDOCK_LOG_LEVEL", "warn")

	dir := filepath.Join(root, "config", appName)
	require.NoError(t, os.MkdirAll(dir, dirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[dock]
edge = "left"
edge_offset = 20
hide_delay_ms = 250

[[items]]
name = "Editor"
target = "code"

[[items]]
id = "shell"
target = "kitty"
`), filePerm))

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "left", cfg.Dock.Edge)
	assert.Equal(t, 20.0, cfg.Dock.EdgeOffset)
	assert.Equal(t, 5.0, cfg.Dock.TriggerDistance, "unset keys fall back to defaults")
	assert.Equal(t, "warn", cfg.Logging.Level)
	require.Len(t, cfg.Items, 2)
	assert.Equal(t, "editor", cfg.Items[0].ID)
	assert.Equal(t, "shell", cfg.Items[1].Name)

	settings, err := cfg.DockSettings()
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, settings.HideDelay)
}

func TestManager_LoadRejectsInvalidFile(t *testing.T) {
	root := isolateXDG(t)
	path := filepath.Join(root, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("[dock]\nedge = \"diagonal\"\n"), filePerm))

	mgr, err := NewManager()
	require.NoError(t, err)
	mgr.SetConfigFile(path)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dock.edge")
}

func TestManager_ExplicitMissingFileIsNotCreated(t *testing.T) {
	root := isolateXDG(t)
	path := filepath.Join(root, "missing.toml")

	mgr, err := NewManager()
	require.NoError(t, err)
	mgr.SetConfigFile(path)

	require.Error(t, mgr.Load())
	assert.NoFileExists(t, path)
}

func TestManager_ReloadNotifiesCallbacks(t *testing.T) {
	root := isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	var got []*Config
	mgr.OnConfigChange(func(c *Config) { got = append(got, c) })

	cfg := mgr.Get()
	cfg.Dock.Edge = "top"
	cfg.Dock.TriggerDistance = 8
	require.NoError(t, WriteConfigOrdered(cfg, filepath.Join(root, "config", appName, "config.toml")))

	require.NoError(t, mgr.Reload())
	require.Len(t, got, 1)
	assert.Equal(t, "top", got[0].Dock.Edge)
	assert.Equal(t, 8.0, mgr.Get().Dock.TriggerDistance)
}

func TestManager_ReloadKeepsPreviousOnInvalidFile(t *testing.T) {
	root := isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	path := filepath.Join(root, "config", appName, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[dock]\ntrigger_distance = -1\n"), filePerm))

	require.Error(t, mgr.Reload())
	assert.Equal(t, 5.0, mgr.Get().Dock.TriggerDistance)
}

func TestManager_GetReturnsCopy(t *testing.T) {
	isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Items[0].Name = "mutated"
	cfg.Hotkey.Modifiers[0] = "mutated"

	fresh := mgr.Get()
	assert.Equal(t, "Finder", fresh.Items[0].Name)
	assert.Equal(t, "ctrl", fresh.Hotkey.Modifiers[0])
}

func TestConfig_FallbackScreen(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Screen = ScreenConfig{Width: 1440, Height: 900, InsetTop: 25, InsetBottom: 70}

	screen := cfg.FallbackScreen()
	require.NotNil(t, screen.Usable)
	assert.Equal(t, 1440.0, screen.Frame.Width())
	assert.Equal(t, 25.0, screen.Usable.Min.Y)
	assert.Equal(t, 830.0, screen.Usable.Max.Y)

	cfg.Screen.InsetTop, cfg.Screen.InsetBottom = 0, 0
	assert.Nil(t, cfg.FallbackScreen().Usable)
}
