package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPattern matches the conventional manifest file name anywhere under
// the search root.
const DefaultPattern = "**/*.extensions.yaml"

// Find locates manifest files under root using doublestar glob patterns.
// With no patterns it searches for DefaultPattern. Results are joined onto
// root, deduplicated, and sorted.
func Find(root string, patterns ...string) ([]string, error) {
	if len(patterns) == 0 {
		patterns = []string{DefaultPattern}
	}

	fsys := os.DirFS(root)
	seen := make(map[string]struct{})
	var out []string

	for _, pattern := range patterns {
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid manifest pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			path := filepath.Join(root, filepath.FromSlash(m))
			if _, ok := seen[path]; ok {
				continue
			}
			seen[path] = struct{}{}
			out = append(out, path)
		}
	}

	sort.Strings(out)
	return out, nil
}

// Load reads and parses a single manifest file, choosing the parser from the
// file extension (.json for JSON, anything else is treated as YAML).
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %q: %w", path, err)
	}

	var parser Parser
	if filepath.Ext(path) == ".json" {
		parser = NewJSONParser()
	} else {
		parser = NewYAMLParser()
	}

	m, err := parser.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("manifest %q: %w", path, err)
	}
	return m, nil
}
