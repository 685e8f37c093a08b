// Package launcher activates dock items through the platform's application
// opener.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/bnema/edgedock/internal/application/port"
	"github.com/bnema/edgedock/internal/domain/entity"
	"github.com/bnema/edgedock/internal/logging"
)

// ErrEmptyTarget is returned for items without a target.
var ErrEmptyTarget = errors.New("item has no launch target")

// command is one process invocation. Detached commands are started and not
// waited for.
type command struct {
	name     string
	args     []string
	detached bool
}

type runner func(ctx context.Context, cmd command) error

// Launcher implements port.AppLauncher with `open` on macOS and xdg-open or
// direct execution elsewhere.
type Launcher struct {
	goos     string
	lookPath func(string) (string, error)
	run      runner
}

var _ port.AppLauncher = (*Launcher)(nil)

// New returns a launcher for the running OS.
func New() *Launcher {
	return &Launcher{
		goos:     runtime.GOOS,
		lookPath: exec.LookPath,
		run:      execRunner,
	}
}

// Launch starts item.Target.
func (l *Launcher) Launch(ctx context.Context, item entity.DockItem) error {
	cmd, err := l.resolve(item.Target)
	if err != nil {
		return fmt.Errorf("launch %s: %w", item.ID, err)
	}

	logging.FromContext(ctx).Debug().
		Str("item_id", string(item.ID)).
		Str("command", cmd.name).
		Strs("args", cmd.args).
		Msg("launching item")

	if err := l.run(ctx, cmd); err != nil {
		return fmt.Errorf("launch %s: %w", item.ID, err)
	}
	return nil
}

func (l *Launcher) resolve(target string) (command, error) {
	target = strings.TrimSpace(target)
	if target == "" {
		return command{}, ErrEmptyTarget
	}

	if l.goos == "darwin" {
		if strings.Contains(target, "://") || strings.HasPrefix(target, "/") {
			return command{name: "open", args: []string{target}}, nil
		}
		return command{name: "open", args: []string{"-a", target}}, nil
	}

	if strings.Contains(target, "://") || strings.HasSuffix(target, ".desktop") {
		return command{name: "xdg-open", args: []string{target}}, nil
	}

	fields := strings.Fields(target)
	path, err := l.lookPath(fields[0])
	if err != nil {
		return command{}, fmt.Errorf("resolve %q: %w", fields[0], err)
	}
	return command{name: path, args: fields[1:], detached: true}, nil
}

func execRunner(ctx context.Context, c command) error {
	if c.detached {
		// Launched apps outlive the request context.
		cmd := exec.Command(c.name, c.args...)
		if err := cmd.Start(); err != nil {
			return err
		}
		go func() { _ = cmd.Wait() }()
		return nil
	}

	out, err := exec.CommandContext(ctx, c.name, c.args...).CombinedOutput()
	if err != nil {
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return fmt.Errorf("%w: %s", err, msg)
		}
		return err
	}
	return nil
}
