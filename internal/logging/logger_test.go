package logging

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		"info":    zerolog.InfoLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"":        zerolog.InfoLevel,
		"bogus":   zerolog.InfoLevel,
	}

	for input, expected := range tests {
		t.Run(input, func(t *testing.T) {
			assert.Equal(t, expected, ParseLevel(input))
		})
	}
}

func TestWithComponentAddsField(t *testing.T) {
	var buf strings.Builder
	logger := zerolog.New(&buf)
	ctx := WithContext(context.Background(), logger)

	ctx = WithComponent(ctx, "visibility")
	ctx = WithEdge(ctx, "right")
	FromContext(ctx).Info().Msg("hello")

	out := buf.String()
	assert.Contains(t, out, `"component":"visibility"`)
	assert.Contains(t, out, `"edge":"right"`)
}

func TestFromContextWithoutLoggerIsNoop(t *testing.T) {
	logger := FromContext(context.Background())
	require.NotNil(t, logger)
	logger.Info().Msg("dropped")
}

func TestNewWithFileWritesJSONToFile(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.Format = "json"

	logger, cleanup, err := NewWithFile(cfg, dir, DefaultRotatorOptions())
	require.NoError(t, err)
	logger.Info().Str("edge", "left").Msg("started")
	cleanup()

	data, err := os.ReadFile(filepath.Join(dir, "edgedock.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"edge":"left"`)
}

func TestRotatorRollsOverPastMaxSize(t *testing.T) {
	dir := t.TempDir()
	r, err := NewRotator(dir, RotatorOptions{BaseName: "test.log", MaxSizeMB: 1, MaxBackups: 1})
	require.NoError(t, err)
	defer r.Close()

	chunk := make([]byte, 700*1024)
	for i := range chunk {
		chunk[i] = 'x'
	}
	_, err = r.Write(chunk)
	require.NoError(t, err)
	_, err = r.Write(chunk)
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var backups int
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "test.log.") {
			backups++
		}
	}
	assert.Equal(t, 1, backups)

	info, err := os.Stat(r.Path())
	require.NoError(t, err)
	assert.Equal(t, int64(len(chunk)), info.Size())
}
