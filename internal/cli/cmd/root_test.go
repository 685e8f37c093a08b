package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionRunsWithoutAppOrDisplay(t *testing.T) {
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	rootCmd.SetArgs([]string{"version"})

	require.NoError(t, rootCmd.Execute())
	assert.Nil(t, GetApp())
}

func TestCommandTree(t *testing.T) {
	want := []string{
		"about", "config", "gen-docs", "geometry", "history", "items",
		"launch", "permission", "preview", "run", "simulate", "version",
	}
	for _, name := range want {
		cmd, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
}
