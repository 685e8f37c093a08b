package launcher

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/edgedock/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLauncher(goos string, ran *[]command) *Launcher {
	return &Launcher{
		goos: goos,
		lookPath: func(name string) (string, error) {
			if name == "missing" {
				return "", errors.New("not found")
			}
			return "/usr/bin/" + name, nil
		},
		run: func(_ context.Context, c command) error {
			*ran = append(*ran, c)
			return nil
		},
	}
}

func TestLaunch_Darwin(t *testing.T) {
	tests := []struct {
		target   string
		expected command
	}{
		{"Safari", command{name: "open", args: []string{"-a", "Safari"}}},
		{"System Settings", command{name: "open", args: []string{"-a", "System Settings"}}},
		{"/Applications/Notes.app", command{name: "open", args: []string{"/Applications/Notes.app"}}},
		{"https://example.com", command{name: "open", args: []string{"https://example.com"}}},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			var ran []command
			l := newTestLauncher("darwin", &ran)

			require.NoError(t, l.Launch(context.Background(), entity.DockItem{ID: "x", Target: tt.target}))
			require.Len(t, ran, 1)
			assert.Equal(t, tt.expected, ran[0])
		})
	}
}

func TestLaunch_Linux(t *testing.T) {
	var ran []command
	l := newTestLauncher("linux", &ran)
	ctx := context.Background()

	require.NoError(t, l.Launch(ctx, entity.DockItem{ID: "term", Target: "foot --app-id dock"}))
	require.NoError(t, l.Launch(ctx, entity.DockItem{ID: "web", Target: "https://example.com"}))

	assert.Equal(t, []command{
		{name: "/usr/bin/foot", args: []string{"--app-id", "dock"}, detached: true},
		{name: "xdg-open", args: []string{"https://example.com"}},
	}, ran)
}

func TestLaunch_Errors(t *testing.T) {
	var ran []command
	l := newTestLauncher("linux", &ran)

	err := l.Launch(context.Background(), entity.DockItem{ID: "empty", Target: "  "})
	assert.ErrorIs(t, err, ErrEmptyTarget)

	err = l.Launch(context.Background(), entity.DockItem{ID: "gone", Target: "missing --flag"})
	assert.ErrorContains(t, err, "missing")
	assert.Empty(t, ran)
}
