package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/bnema/edgedock/internal/cli/model"
	"github.com/bnema/edgedock/internal/infrastructure/scheduler"
	"github.com/bnema/edgedock/internal/logging"
	"github.com/bnema/edgedock/internal/ui/controller"
	"github.com/bnema/edgedock/internal/ui/mainloop"
)

var previewScreen string

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Try the dock in the terminal",
	Long: `Draw the screen in the terminal and drive the dock with the mouse. The
terminal stands in for the display: moving the mouse to the matching side
of the window enters the trigger strip and shows the panel.

Keys:
  e      next edge
  + / -  move the panel away from / towards its edge
  s / h  show / hide
  p      toggle pointer access
  q      quit`,
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().StringVar(&previewScreen, "screen", "", "screen size WIDTHxHEIGHT (default: current display)")
}

func runPreview(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("preview needs an interactive terminal")
	}

	ctx, cancel := context.WithCancel(logging.WithComponent(app.Ctx(), "preview"))
	defer cancel()

	settings, err := app.DockSettings()
	if err != nil {
		return err
	}
	screen, err := app.Screen(ctx)
	if previewScreen != "" {
		screen, err = parseScreenSize(previewScreen)
	}
	if err != nil {
		return fmt.Errorf("read screen geometry: %w", err)
	}

	loop := mainloop.NewLoop()
	store := controller.NewSettingsStore(settings, app.Manager.Get().DockItems(), screen)
	ctrl := controller.NewVisibilityController(ctx, store, scheduler.NewClock(), loop)
	defer ctrl.Close()

	observer := model.NewObserver(ctx)
	ctrl.Subscribe(observer)

	m := model.NewPreviewModel(ctx, app.Theme, model.PreviewConfig{
		Store:      store,
		Controller: ctrl,
		Observer:   observer,
	})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithContext(ctx))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return ignoreCanceled(ctrl.Run(gctx))
	})
	g.Go(func() error {
		defer cancel()
		_, err := p.Run()
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return err
	})

	err = g.Wait()
	loop.Close()
	return err
}
