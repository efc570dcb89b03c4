package appconfig

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestUnmarshalJSONTolerantOfWrongTypes(t *testing.T) {
	data := []byte(`{
		"name": "Shop",
		"description": 42,
		"blocks": ["not", "a", "map"],
		"dependencies": {"react": "^18", "count": 3, "nothing": null},
		"metadata": "oops"
	}`)

	var cfg AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Name != "Shop" {
		t.Errorf("Name = %q, want Shop", cfg.Name)
	}
	if cfg.Description != "42" {
		t.Errorf("Description = %q, want 42", cfg.Description)
	}
	if cfg.Blocks != nil {
		t.Errorf("Blocks = %v, want nil", cfg.Blocks)
	}
	if cfg.Metadata != nil {
		t.Errorf("Metadata = %v, want nil", cfg.Metadata)
	}
	if got := cfg.Dependencies["count"]; got != "3" {
		t.Errorf("Dependencies[count] = %q, want 3", got)
	}
	if got, ok := cfg.Dependencies["nothing"]; !ok || got != "" {
		t.Errorf("Dependencies[nothing] = %q (present=%v), want empty", got, ok)
	}
}

func TestUnmarshalJSONRejectsNonObject(t *testing.T) {
	var cfg AppConfig
	if err := json.Unmarshal([]byte(`"just a string"`), &cfg); err == nil {
		t.Fatal("expected error for non-object config")
	}
}

func TestUnmarshalJSONNull(t *testing.T) {
	var cfg AppConfig
	if err := json.Unmarshal([]byte(`null`), &cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Name != "" || cfg.Components() != 0 {
		t.Errorf("expected empty config, got %+v", cfg)
	}
}

func TestAccessors(t *testing.T) {
	cfg := Sample(time.Unix(0, 0).UTC())

	if got := cfg.Components(); got != 5 {
		t.Errorf("Components() = %d, want 5", got)
	}
	users, ok := cfg.EstimatedUsers()
	if !ok || users != 5000 {
		t.Errorf("EstimatedUsers() = %v, %v; want 5000, true", users, ok)
	}
	if got := cfg.Complexity(); got != "medium" {
		t.Errorf("Complexity() = %q, want medium", got)
	}
	if got := cfg.ProductionDependencies(); got != 6 {
		t.Errorf("ProductionDependencies() = %d, want 6", got)
	}
}

func TestEstimatedUsersNonNumeric(t *testing.T) {
	cfg := AppConfig{Metadata: map[string]any{"estimatedUsers": "lots"}}
	if _, ok := cfg.EstimatedUsers(); ok {
		t.Error("expected non-numeric estimatedUsers to be rejected")
	}
}

func TestProductionDependenciesIsCaseSensitive(t *testing.T) {
	cfg := AppConfig{Dependencies: map[string]string{
		"react":        "1",
		"devtools":     "1",
		"webpack-dev":  "1",
		"DevExtreme":   "1",
		"eslint-dev-x": "1",
	}}
	if got := cfg.ProductionDependencies(); got != 2 {
		t.Errorf("ProductionDependencies() = %d, want 2", got)
	}
}

func TestDescriptionLengthCountsRunes(t *testing.T) {
	cfg := AppConfig{Description: "héllo wörld"}
	if got := cfg.DescriptionLength(); got != 11 {
		t.Errorf("DescriptionLength() = %d, want 11", got)
	}
}

func TestText(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, "None"},
		{"bare string", "Redis", "Redis"},
		{"bool", true, "True"},
		{"integral float", float64(5000), "5000"},
		{"fraction", 0.5, "0.5"},
		{"int", 12, "12"},
		{"empty map", map[string]any{}, "{}"},
		{
			"nested map sorted",
			map[string]any{"b": []any{"x", 1.0}, "a": nil},
			"{'a': None, 'b': ['x', 1]}",
		},
		{
			"string map",
			map[string]string{"redis": "^4", "jest": "^29"},
			"{'jest': '^29', 'redis': '^4'}",
		},
		{"quote switching", []any{"it's"}, `["it's"]`},
		{"escaping", []any{"a\nb"}, `['a\nb']`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Text(tt.in); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConfigTextIncludesAbsentFieldsAsNone(t *testing.T) {
	got := AppConfig{Name: "X"}.Text()
	want := "{'name': 'X', 'description': None, 'blocks': None, 'dependencies': None, 'metadata': None}"
	if got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}

func TestConfigTextSeesMetadataKeys(t *testing.T) {
	cfg := AppConfig{Name: "X", Metadata: map[string]any{"author": "AI"}}
	if !strings.Contains(strings.ToLower(cfg.Text()), "auth") {
		t.Error("expected metadata key 'author' to appear in config text")
	}
}

func TestPrettyJSON(t *testing.T) {
	out, err := AppConfig{Name: "X"}.PrettyJSON()
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"name\": \"X\",\n  \"description\": \"\",\n  \"blocks\": null,\n  \"dependencies\": null,\n  \"metadata\": null\n}"
	if out != want {
		t.Errorf("PrettyJSON() =\n%s\nwant\n%s", out, want)
	}
}

func TestParseYAML(t *testing.T) {
	data := []byte(`
name: Inventory
description: Warehouse inventory tracker for three sites
blocks:
  components:
    - id: table
    - id: form
    - id: chart
dependencies:
  redis: "^4.6.0"
  jest: 29
metadata:
  estimatedUsers: 20000
  complexity: high
`)
	cfg, err := Parse(data, FormatYAML)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Name != "Inventory" {
		t.Errorf("Name = %q", cfg.Name)
	}
	if cfg.Components() != 3 {
		t.Errorf("Components() = %d, want 3", cfg.Components())
	}
	if cfg.Dependencies["jest"] != "29" {
		t.Errorf("Dependencies[jest] = %q, want 29", cfg.Dependencies["jest"])
	}
	if users, _ := cfg.EstimatedUsers(); users != 20000 {
		t.Errorf("EstimatedUsers() = %v, want 20000", users)
	}
	if cfg.Complexity() != "high" {
		t.Errorf("Complexity() = %q, want high", cfg.Complexity())
	}
}

func TestParseEmpty(t *testing.T) {
	if _, err := Parse([]byte("   "), FormatJSON); err == nil {
		t.Error("expected error for empty document")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.yml")
	if err := os.WriteFile(path, []byte("name: FromFile\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Name != "FromFile" {
		t.Errorf("Name = %q, want FromFile", cfg.Name)
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]Format{
		"app.json": FormatJSON,
		"app.YAML": FormatYAML,
		"app.yml":  FormatYAML,
		"app":      FormatJSON,
	}
	for path, want := range tests {
		if got := FormatFromPath(path); got != want {
			t.Errorf("FormatFromPath(%q) = %q, want %q", path, got, want)
		}
	}
}
