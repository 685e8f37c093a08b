package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteConfigOrdered(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "config.toml")

	require.NoError(t, WriteConfigOrdered(DefaultConfig(), configPath))

	content, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "#:schema ./config.schema.json"))

	var tables []string
	for _, line := range strings.Split(string(content), "\n") {
		if match := sectionRegex.FindStringSubmatch(line); match != nil && match[2] == "" {
			tables = append(tables, match[3])
		}
	}
	for i := 1; i < len(tables); i++ {
		assert.LessOrEqual(t, tables[i-1], tables[i], "sections should be sorted")
	}

	var decoded Config
	require.NoError(t, toml.Unmarshal(content, &decoded))
	assert.Equal(t, DefaultConfig().Items, decoded.Items)
	assert.Equal(t, "right", decoded.Dock.Edge)
}

func TestSortTOMLSections_KeepsArrayTableOrder(t *testing.T) {
	input := `[logging]
level = 'info'

[[items]]
id = 'b'

[[items]]
id = 'a'

[dock]
edge = 'right'
  [dock.layout]
  item_size = 60.0
`
	out := sortTOMLSections(input)

	dock := strings.Index(out, "[dock]")
	layout := strings.Index(out, "[dock.layout]")
	itemB := strings.Index(out, "id = 'b'")
	itemA := strings.Index(out, "id = 'a'")
	logging := strings.Index(out, "[logging]")

	assert.Less(t, dock, layout)
	assert.Less(t, layout, itemB)
	assert.Less(t, itemB, itemA)
	assert.Less(t, itemA, logging)
}

func TestWriteConfigOrdered_NilConfig(t *testing.T) {
	assert.Error(t, WriteConfigOrdered(nil, filepath.Join(t.TempDir(), "config.toml")))
}

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	schema := string(data)
	assert.Contains(t, schema, `"trigger_distance"`)
	assert.Contains(t, schema, `"hide_delay_ms"`)
	assert.Contains(t, schema, `"items"`)

	path, err := WriteSchemaFile(t.TempDir())
	require.NoError(t, err)
	assert.FileExists(t, path)
}
