package appconfig

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// ErrUnknownManifest is returned for files that are not a supported
// dependency manifest.
var ErrUnknownManifest = errors.New("unsupported dependency manifest")

type packageJSON struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// requirementLine matches "name[extras] <op> version".
var requirementLine = regexp.MustCompile(`^([A-Za-z0-9_.-]+)(?:\[[^\]]+\])?\s*([=<>!~]=?.*)?$`)

// ManifestDependencies reads the dependency map out of a package manifest.
// package.json contributes dependencies and devDependencies; requirements
// files contribute one entry per requirement with its version specifier.
// Version strings are kept as written.
func ManifestDependencies(filename string, data []byte) (map[string]string, error) {
	base := filepath.Base(filename)
	switch {
	case base == "package.json":
		var pkg packageJSON
		if err := json.Unmarshal(data, &pkg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", base, err)
		}
		deps := make(map[string]string, len(pkg.Dependencies)+len(pkg.DevDependencies))
		for name, v := range pkg.DevDependencies {
			deps[name] = v
		}
		for name, v := range pkg.Dependencies {
			deps[name] = v
		}
		return deps, nil

	case strings.HasPrefix(base, "requirements") && strings.HasSuffix(base, ".txt"):
		return parseRequirements(data)

	default:
		return nil, fmt.Errorf("%s: %w", base, ErrUnknownManifest)
	}
}

func parseRequirements(data []byte) (map[string]string, error) {
	deps := map[string]string{}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if i := strings.Index(line, "#"); i >= 0 {
			line = strings.TrimSpace(line[:i])
		}
		// Options such as -r and --index-url carry no dependency.
		if line == "" || strings.HasPrefix(line, "-") {
			continue
		}
		if i := strings.Index(line, ";"); i >= 0 {
			line = strings.TrimSpace(line[:i])
		}
		m := requirementLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		deps[m[1]] = strings.ReplaceAll(m[2], " ", "")
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading requirements: %w", err)
	}
	return deps, nil
}

// MergeDependencies adds deps to the configuration. Entries already present
// in the configuration keep their version.
func (c *AppConfig) MergeDependencies(deps map[string]string) {
	if len(deps) == 0 {
		return
	}
	if c.Dependencies == nil {
		c.Dependencies = make(map[string]string, len(deps))
	}
	for name, v := range deps {
		if _, ok := c.Dependencies[name]; !ok {
			c.Dependencies[name] = v
		}
	}
}
