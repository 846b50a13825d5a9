package manifest

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/reglet-dev/extkit/extension"
)

// Export snapshots a registry's current wiring into a Manifest: every
// category's capability descriptors and its currently selected default. The
// result is a diagnostic view for inspection tooling, not a persistence
// format.
func Export(reg *extension.Registry) *Manifest {
	m := &Manifest{
		Capabilities: make(map[string]Capability),
		Defaults:     make(map[string]string),
	}

	for _, c := range reg.Categories() {
		for _, d := range c.Capabilities() {
			m.Capabilities[d.Name()] = Capability{Methods: d.Methods()}
		}
		m.Defaults[c.Name()] = c.DefaultID().String()
	}

	return m
}

// EncodeYAML writes a manifest as YAML.
func EncodeYAML(w io.Writer, m *Manifest) error {
	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()

	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("encoding manifest YAML: %w", err)
	}
	return nil
}
