package main

import (
	"runtime"

	"github.com/bnema/edgedock/internal/cli/cmd"
	"github.com/bnema/edgedock/internal/domain/build"
	"github.com/bnema/edgedock/internal/infrastructure/hotkey"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	enableCrashForensics()

	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})

	// macOS delivers global hotkeys on the main thread only, so native builds
	// run the CLI on a worker goroutine. Builds without a hotkey backend call
	// Execute directly.
	hotkey.RunOnMainThread(cmd.Execute)
}
