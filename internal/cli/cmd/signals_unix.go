//go:build unix

package cmd

import (
	"context"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"

	"github.com/bnema/edgedock/internal/logging"
)

// handleControlSignals maps SIGUSR1/SIGUSR2 to show/hide and SIGHUP to a
// config reload until ctx is done.
func handleControlSignals(ctx context.Context, d *dock) error {
	log := logging.FromContext(ctx)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, unix.SIGUSR1, unix.SIGUSR2, unix.SIGHUP)
	defer signal.Stop(ch)

	for {
		select {
		case <-ctx.Done():
			return nil
		case sig := <-ch:
			log.Debug().Str("signal", sig.String()).Msg("control signal")
			switch sig {
			case unix.SIGUSR1:
				d.ctrl.Show()
			case unix.SIGUSR2:
				d.ctrl.Hide()
			case unix.SIGHUP:
				if err := d.app.Manager.Reload(); err != nil {
					log.Warn().Err(err).Msg("reload failed, keeping previous config")
				}
			}
		}
	}
}
