package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/edgedock/internal/application/port"
	"github.com/bnema/edgedock/internal/cli"
	"github.com/bnema/edgedock/internal/domain/entity"
	"github.com/bnema/edgedock/internal/infrastructure/config"
	"github.com/bnema/edgedock/internal/infrastructure/hotkey"
	"github.com/bnema/edgedock/internal/infrastructure/pointer"
	"github.com/bnema/edgedock/internal/infrastructure/scheduler"
	"github.com/bnema/edgedock/internal/logging"
	"github.com/bnema/edgedock/internal/ui/controller"
	"github.com/bnema/edgedock/internal/ui/mainloop"
	"github.com/bnema/edgedock/internal/ui/presenter"
)

// screenRefreshInterval is how often the display geometry is re-read so
// resolution and menu bar changes move the panel.
const screenRefreshInterval = 2 * time.Second

var (
	runReplay  string
	runOrigin  string
	runNoWatch bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the dock",
	Long: `Start the dock: sample the global pointer, show the panel when it enters
the trigger strip and hide it again once it leaves.

Control a running dock with signals:
  SIGUSR1  show the panel
  SIGUSR2  hide the panel
  SIGHUP   reload the config file

Examples:
  edgedock run                          # Poll the system pointer
  edgedock run --replay moves.jsonl     # Feed a recording in real time`,
	RunE: runDock,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVar(&runReplay, "replay", "", "replay a JSON-lines pointer recording instead of polling")
	runCmd.Flags().StringVar(&runOrigin, "origin", string(pointer.OriginTopLeft), "coordinate origin of the recording: top-left, bottom-left")
	runCmd.Flags().BoolVar(&runNoWatch, "no-watch", false, "do not reload when the config file changes")
}

// shortcut is the part of hotkey.Handler the dock drives.
type shortcut interface {
	Register(ctx context.Context, b hotkey.Binding) error
	Run(ctx context.Context, b hotkey.Binding) error
	Unregister() error
	Current() hotkey.Binding
}

// dock bundles the running pieces so helpers can share them.
type dock struct {
	app   *cli.App
	store *controller.SettingsStore
	loop  *mainloop.Loop
	ctrl  *controller.VisibilityController
	keys  shortcut
}

func runDock(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logging.WithComponent(ctx, "run")
	log := logging.FromContext(ctx)

	settings, err := app.DockSettings()
	if err != nil {
		return err
	}
	screen, err := app.Screen(ctx)
	if err != nil {
		return fmt.Errorf("read screen geometry: %w", err)
	}

	cfg := app.Manager.Get()
	d := &dock{app: app, loop: mainloop.NewLoop()}
	d.store = controller.NewSettingsStore(settings, cfg.DockItems(), screen)
	d.ctrl = controller.NewVisibilityController(ctx, d.store, scheduler.NewClock(), d.loop)
	defer d.ctrl.Close()

	d.ctrl.Subscribe(presenter.NewLogPresenter(ctx))
	d.ctrl.Subscribe(presenter.NewAvailabilityNotifier(ctx, app.Notifier))

	source, err := d.pointerSource()
	if err != nil {
		return err
	}

	if !runNoWatch {
		app.Manager.OnConfigChange(func(c *config.Config) { d.applyConfig(ctx, c) })
		if err := app.Manager.Watch(); err != nil {
			log.Warn().Err(err).Msg("config watch disabled")
		}
	}

	log.Info().
		Str("edge", string(settings.Edge)).
		Int("items", len(cfg.DockItems())).
		Float64("screen_w", screen.Frame.Width()).
		Float64("screen_h", screen.Frame.Height()).
		Msg("dock started")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return ignoreCanceled(d.ctrl.Run(gctx))
	})
	g.Go(func() error {
		return d.runSource(gctx, source, settings.HideDelay)
	})
	g.Go(func() error {
		return d.refreshScreen(gctx)
	})
	g.Go(func() error {
		return handleControlSignals(gctx, d)
	})
	if cfg.Hotkey.Enabled {
		d.keys = hotkey.New(d.toggle)
		g.Go(func() error {
			return d.runHotkey(gctx, cfg.Hotkey)
		})
	}

	err = ignoreCanceled(g.Wait())
	d.loop.Close()
	d.pruneHistory(ctx)

	log.Info().Msg("dock stopped")
	return err
}

func (d *dock) pointerSource() (port.PointerSource, error) {
	if runReplay != "" {
		origin, err := pointer.ParseOrigin(runOrigin)
		if err != nil {
			return nil, err
		}
		f, err := os.Open(runReplay)
		if err != nil {
			return nil, fmt.Errorf("open recording: %w", err)
		}
		defer f.Close()

		events, err := pointer.ParseRecording(f, origin, d.store.Screen().Frame)
		if err != nil {
			return nil, fmt.Errorf("parse recording %s: %w", runReplay, err)
		}
		return pointer.NewReplaySource(events, time.Now(), nil), nil
	}

	cfg := d.app.Manager.Get()
	sampler, err := pointer.NewSystemSampler(cfg.Input.RequireAccessibility)
	if err != nil {
		return nil, fmt.Errorf("pointer sampler: %w (use --replay on this platform)", err)
	}
	return pointer.NewPollingSource(sampler, pointer.PollingConfig{
		Interval:           cfg.PollInterval(),
		PermissionInterval: cfg.PermissionPollInterval(),
		Frame:              func() entity.Rect { return d.store.Screen().Frame },
	}), nil
}

// runSource feeds samples until ctx is done. A finished replay keeps the
// dock alive for one hide delay so the last transition can fire, then stops.
func (d *dock) runSource(ctx context.Context, source port.PointerSource, hideDelay time.Duration) error {
	if err := source.Start(ctx, d.ctrl); err != nil {
		return ignoreCanceled(err)
	}
	if runReplay == "" {
		return nil
	}

	logging.FromContext(ctx).Info().Msg("replay finished")
	t := time.NewTimer(hideDelay + 100*time.Millisecond)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return nil
	case <-t.C:
		return errReplayDone
	}
}

func (d *dock) refreshScreen(ctx context.Context) error {
	log := logging.FromContext(ctx)
	ticker := time.NewTicker(screenRefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s, err := d.app.Screen(ctx)
			if err != nil {
				log.Debug().Err(err).Msg("screen refresh failed, keeping previous geometry")
				continue
			}
			d.store.SetScreen(s)
		}
	}
}

func (d *dock) applyConfig(ctx context.Context, c *config.Config) {
	log := logging.FromContext(ctx)

	settings, err := c.DockSettings()
	if err != nil {
		log.Warn().Err(err).Msg("ignoring reloaded config")
		return
	}
	if err := d.store.Apply(settings, c.DockItems()); err != nil {
		log.Warn().Err(err).Msg("ignoring reloaded config")
		return
	}
	log.Info().Str("edge", string(settings.Edge)).Int("items", len(c.Items)).Msg("config applied")

	if d.keys == nil {
		return
	}
	if !c.Hotkey.Enabled {
		if err := d.keys.Unregister(); err != nil {
			log.Warn().Err(err).Msg("failed to release hotkey")
		}
		return
	}
	b := bindingFromConfig(c.Hotkey)
	if cur := d.keys.Current(); cur.Key != b.Key || !slices.Equal(cur.Modifiers, b.Modifiers) {
		if err := d.keys.Register(ctx, b); err != nil {
			log.Warn().Err(err).Msg("failed to rebind hotkey")
		}
	}
}

// runHotkey never fails the dock: a shortcut that cannot be grabbed is
// logged and the dock keeps running without it.
func (d *dock) runHotkey(ctx context.Context, cfg config.HotkeyConfig) error {
	err := d.keys.Run(ctx, bindingFromConfig(cfg))
	switch {
	case err == nil:
	case errors.Is(err, hotkey.ErrUnavailable):
		logging.FromContext(ctx).Info().Err(err).Msg("hotkey unavailable in this build")
	default:
		logging.FromContext(ctx).Warn().Err(err).Msg("hotkey unavailable")
	}
	return nil
}

func (d *dock) toggle() {
	if d.ctrl.Status().State.IsVisible() {
		d.ctrl.Hide()
		return
	}
	d.ctrl.Show()
}

func (d *dock) pruneHistory(ctx context.Context) {
	if !d.app.DB.IsInitialized() {
		return
	}
	retention := d.app.Manager.Get().Database.RetentionDays
	if _, err := d.app.HistoryUC.Prune(context.WithoutCancel(ctx), retention); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to prune launch history")
	}
}

func bindingFromConfig(cfg config.HotkeyConfig) hotkey.Binding {
	return hotkey.Binding{Modifiers: cfg.Modifiers, Key: cfg.Key}
}

var errReplayDone = errors.New("replay done")

func ignoreCanceled(err error) error {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, errReplayDone) {
		return nil
	}
	return err
}
