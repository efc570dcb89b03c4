package appconfig

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of an app configuration document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks a Format from a file extension. Anything that is not
// .yaml or .yml is treated as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Parse decodes an app configuration document.
func Parse(data []byte, format Format) (AppConfig, error) {
	var cfg AppConfig
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, fmt.Errorf("app config is empty")
	}

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing YAML app config: %w", err)
		}
	case FormatJSON, "":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing JSON app config: %w", err)
		}
	default:
		return cfg, fmt.Errorf("unsupported app config format: %s", format)
	}
	return cfg, nil
}

// LoadFile reads and decodes the app configuration at path.
func LoadFile(path string) (AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return AppConfig{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(data, FormatFromPath(path))
}
