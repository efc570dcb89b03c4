// Package appconfig models the declarative configuration of a low-code
// application: its name, description, UI block tree, dependency map and
// free-form metadata.
//
// The model is loosely typed on purpose. Any optional field that is absent or
// carries an unexpected type decodes to its empty value instead of failing,
// so every heuristic downstream can run against any input.
package appconfig

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// AppConfig is a low-code application configuration document.
type AppConfig struct {
	Name         string            `json:"name" yaml:"name"`
	Description  string            `json:"description" yaml:"description"`
	Blocks       map[string]any    `json:"blocks" yaml:"blocks"`
	Dependencies map[string]string `json:"dependencies" yaml:"dependencies"`
	Metadata     map[string]any    `json:"metadata" yaml:"metadata"`
}

// FromMap builds an AppConfig from an untyped document, coercing every field.
func FromMap(raw map[string]any) AppConfig {
	cfg := AppConfig{
		Blocks:   asMap(raw["blocks"]),
		Metadata: asMap(raw["metadata"]),
	}
	if v, ok := raw["name"]; ok && v != nil {
		cfg.Name = Text(v)
	}
	if v, ok := raw["description"]; ok && v != nil {
		cfg.Description = Text(v)
	}
	if deps := asMap(raw["dependencies"]); deps != nil {
		cfg.Dependencies = make(map[string]string, len(deps))
		for name, version := range deps {
			if version == nil {
				cfg.Dependencies[name] = ""
				continue
			}
			cfg.Dependencies[name] = Text(version)
		}
	}
	return cfg
}

// UnmarshalJSON decodes any JSON object into an AppConfig. Only a document
// that is not an object at all is rejected.
func (c *AppConfig) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("app config must be a JSON object: %w", err)
	}
	*c = FromMap(raw)
	return nil
}

// UnmarshalYAML decodes any YAML mapping into an AppConfig.
func (c *AppConfig) UnmarshalYAML(value *yaml.Node) error {
	var raw map[string]any
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("app config must be a YAML mapping: %w", err)
	}
	*c = FromMap(raw)
	return nil
}

// Components returns the number of entries under blocks.components.
func (c AppConfig) Components() int {
	switch v := c.Blocks["components"].(type) {
	case []any:
		return len(v)
	case map[string]any:
		return len(v)
	default:
		return 0
	}
}

// EstimatedUsers returns metadata.estimatedUsers when it is numeric.
func (c AppConfig) EstimatedUsers() (float64, bool) {
	return asNumber(c.Metadata["estimatedUsers"])
}

// Complexity returns metadata.complexity, or "" when it is not a string.
func (c AppConfig) Complexity() string {
	s, _ := c.Metadata["complexity"].(string)
	return s
}

// DescriptionLength counts the characters (not bytes) of the description.
func (c AppConfig) DescriptionLength() int {
	return utf8.RuneCountInString(c.Description)
}

// ProductionDependencies counts dependency names that do not contain "dev".
func (c AppConfig) ProductionDependencies() int {
	n := 0
	for name := range c.Dependencies {
		if !strings.Contains(name, "dev") {
			n++
		}
	}
	return n
}

// Text renders the whole configuration as text, in the fixed field order
// name, description, blocks, dependencies, metadata. Absent fields render as
// None, so keyword searches see every key and value of the document.
func (c AppConfig) Text() string {
	var b strings.Builder
	b.WriteString("{'name': ")
	writeLiteral(&b, c.Name)
	b.WriteString(", 'description': ")
	if c.Description == "" {
		b.WriteString("None")
	} else {
		writeLiteral(&b, c.Description)
	}
	b.WriteString(", 'blocks': ")
	writeLiteral(&b, nilIfEmpty(c.Blocks))
	b.WriteString(", 'dependencies': ")
	if c.Dependencies == nil {
		b.WriteString("None")
	} else {
		writeLiteral(&b, c.Dependencies)
	}
	b.WriteString(", 'metadata': ")
	writeLiteral(&b, nilIfEmpty(c.Metadata))
	b.WriteString("}")
	return b.String()
}

// PrettyJSON returns the configuration as 2-space indented JSON.
func (c AppConfig) PrettyJSON() (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c); err != nil {
		return "", fmt.Errorf("encoding app config: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func nilIfEmpty(m map[string]any) any {
	if m == nil {
		return nil
	}
	return m
}

func asMap(v any) map[string]any {
	switch m := normalize(v).(type) {
	case map[string]any:
		return m
	default:
		return nil
	}
}

// normalize converts map[any]any nodes (as produced by some YAML documents)
// into map[string]any, recursively.
func normalize(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, child := range x {
			x[k] = normalize(child)
		}
		return x
	case map[any]any:
		out := make(map[string]any, len(x))
		for k, child := range x {
			out[Text(k)] = normalize(child)
		}
		return out
	case []any:
		for i, child := range x {
			x[i] = normalize(child)
		}
		return x
	default:
		return v
	}
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case uint32:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
