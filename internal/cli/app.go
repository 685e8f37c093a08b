// Package cli wires configuration, persistence and use cases for the
// edgedock commands.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/bnema/edgedock/internal/application/port"
	"github.com/bnema/edgedock/internal/application/usecase"
	"github.com/bnema/edgedock/internal/cli/styles"
	"github.com/bnema/edgedock/internal/domain/build"
	"github.com/bnema/edgedock/internal/domain/entity"
	"github.com/bnema/edgedock/internal/domain/repository"
	"github.com/bnema/edgedock/internal/infrastructure/config"
	"github.com/bnema/edgedock/internal/infrastructure/launcher"
	"github.com/bnema/edgedock/internal/infrastructure/notify"
	"github.com/bnema/edgedock/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/edgedock/internal/infrastructure/pointer"
	"github.com/bnema/edgedock/internal/infrastructure/screen"
	"github.com/bnema/edgedock/internal/logging"
	"github.com/rs/zerolog"
)

// Options are the global flags shared by every command.
type Options struct {
	// ConfigFile overrides the XDG config location.
	ConfigFile string
	// LogLevel overrides logging.level and EDGEDOCK_LOG_LEVEL.
	LogLevel string
	// FileLog enables the rotating log file. Only long-running commands
	// turn it on.
	FileLog bool
}

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	Renderer  *styles.CLIRenderer
	BuildInfo build.Info

	DB       *sqlite.LazyDB
	Launches repository.LaunchRepository
	Notifier port.Notifier
	Screens  port.ScreenProvider

	// Use cases
	LaunchUC     *usecase.LaunchItemUseCase
	HistoryUC    *usecase.LaunchHistoryUseCase
	GeometryUC   *usecase.DescribeGeometryUseCase
	PermissionUC *usecase.CheckPermissionUseCase

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp loads configuration and creates all dependencies. The database is
// opened lazily on first use.
func NewApp(opts Options) (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if opts.ConfigFile != "" {
		mgr.SetConfigFile(opts.ConfigFile)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logger, logCleanup := newLogger(cfg, opts)
	ctx := logging.WithContext(context.Background(), logger)
	logger.Debug().Str("config", mgr.GetConfigFile()).Msg("config loaded")

	theme := styles.NewTheme()
	db := sqlite.NewLazyDB(cfg.Database.Path)
	launches := sqlite.NewLazyLaunchRepository(db)
	catalog := &configCatalog{mgr: mgr}

	return &App{
		Config:   cfg,
		Manager:  mgr,
		Theme:    theme,
		Renderer: styles.NewCLIRenderer(theme),

		DB:       db,
		Launches: launches,
		Notifier: notify.New(cfg.Notifications.Enabled),
		Screens: screen.NewFallbackProvider(
			screen.NewSystemProvider(),
			staticScreen(cfg),
		),

		LaunchUC:     usecase.NewLaunchItemUseCase(catalog, launcher.New(), launches),
		HistoryUC:    usecase.NewLaunchHistoryUseCase(launches),
		GeometryUC:   usecase.NewDescribeGeometryUseCase(),
		PermissionUC: usecase.NewCheckPermissionUseCase(pointer.NewPermissionChecker()),

		ctx:        ctx,
		logCleanup: logCleanup,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	var err error
	if a.DB != nil {
		err = a.DB.Close()
	}
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return err
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// DockSettings returns the validated dock settings from the current config.
func (a *App) DockSettings() (entity.DockSettings, error) {
	return a.Manager.Get().DockSettings()
}

// Screen asks the platform for the display geometry, falling back to the
// configured size.
func (a *App) Screen(ctx context.Context) (entity.Screen, error) {
	return a.Screens.Screen(ctx)
}

func newLogger(cfg *config.Config, opts Options) (zerolog.Logger, func()) {
	level := cfg.Logging.Level
	if envLevel := os.Getenv("EDGEDOCK_LOG_LEVEL"); envLevel != "" {
		level = envLevel
	}
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}

	logCfg := logging.Config{
		Level:      logging.ParseLevel(level),
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
	}
	if !opts.FileLog || !cfg.Logging.EnableFileLog {
		return logging.New(logCfg), func() {}
	}

	logDir := cfg.Logging.LogDir
	if logDir == "" {
		if dir, err := config.GetLogDir(); err == nil {
			logDir = dir
		}
	}

	rotator := logging.DefaultRotatorOptions()
	rotator.MaxSizeMB = cfg.Logging.MaxSizeMB
	rotator.MaxBackups = cfg.Logging.MaxBackups
	rotator.MaxAgeDays = cfg.Logging.MaxAge
	rotator.Compress = cfg.Logging.Compress

	logger, cleanup, err := logging.NewWithFile(logCfg, logDir, rotator)
	if err != nil {
		logger.Warn().Err(err).Str("dir", logDir).Msg("file logging disabled")
	}
	return logger, cleanup
}

func staticScreen(cfg *config.Config) screen.StaticProvider {
	s := cfg.FallbackScreen()
	return screen.NewStaticProvider(s.Frame.Width(), s.Frame.Height(), s.Usable)
}

// configCatalog serves dock items from the live config so a launch after a
// reload sees the new list.
type configCatalog struct {
	mgr *config.Manager
}

func (c *configCatalog) Items() []entity.DockItem {
	return c.mgr.Get().DockItems()
}
