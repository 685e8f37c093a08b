//go:build !unix

package cmd

import "context"

// handleControlSignals is a no-op where SIGUSR1/SIGUSR2 do not exist.
func handleControlSignals(ctx context.Context, _ *dock) error {
	<-ctx.Done()
	return nil
}
