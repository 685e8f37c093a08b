package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
)

const schemaFileName = "config.schema.json"

// GenerateSchema reflects the configuration struct into a JSON schema.
// Property names follow the TOML keys.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		FieldNameTag:              "toml",
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	schema := r.Reflect(&Config{})

	schema.ID = "https://github.com/bnema/edgedock/config.schema.json"
	schema.Title = "edgedock configuration"
	schema.Description = "Configuration schema for edgedock, an auto-hiding screen-edge launcher panel"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// WriteSchemaFile writes config.schema.json next to the config file and
// returns its path.
func WriteSchemaFile(dir string) (string, error) {
	if dir == "" {
		configDir, err := GetConfigDir()
		if err != nil {
			return "", fmt.Errorf("failed to get config directory: %w", err)
		}
		dir = configDir
	}

	data, err := GenerateSchema()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return "", err
	}
	path := filepath.Join(dir, schemaFileName)
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return "", fmt.Errorf("failed to write schema file: %w", err)
	}
	return path, nil
}
