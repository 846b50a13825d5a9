// Package manifest is the declarative counterpart to the in-code extension
// API: capability descriptors and default selections expressed as YAML or
// JSON documents, validated against a generated JSON schema, and applied to a
// live registry.
package manifest

import (
	"fmt"
	"sort"

	"github.com/reglet-dev/extkit/extension"
)

// Manifest declares capability descriptors and per-category default
// selections. It never carries implementations; categories are always created
// in code, because only code can supply a system default.
type Manifest struct {
	// Capabilities maps descriptor names to their required method sets.
	Capabilities map[string]Capability `yaml:"capabilities,omitempty" json:"capabilities,omitempty"`

	// Defaults maps category names to the extension ID to select. Entries
	// referencing categories or IDs absent from a given build are tolerated
	// at apply time; the system default stays in effect.
	Defaults map[string]string `yaml:"defaults,omitempty" json:"defaults,omitempty"`
}

// Capability is the declarative form of a capability descriptor.
type Capability struct {
	Methods []string `yaml:"methods" json:"methods"`
}

// Validate checks structural well-formedness. It does not consult a registry;
// use Lint for cross-checks against live state.
func (m *Manifest) Validate() error {
	for name, capability := range m.Capabilities {
		if name == "" {
			return fmt.Errorf("capability with empty name")
		}
		for _, method := range capability.Methods {
			if method == "" {
				return fmt.Errorf("capability %q: empty method name", name)
			}
		}
	}
	for category, id := range m.Defaults {
		if category == "" {
			return fmt.Errorf("default with empty category name")
		}
		if id == "" {
			return fmt.Errorf("default for category %q: empty extension id", category)
		}
	}
	return nil
}

// Descriptors converts the declared capabilities into descriptors, sorted by
// name, ready to pass to RegisterCategory via WithCapabilities.
func (m *Manifest) Descriptors() ([]extension.Descriptor, error) {
	names := make([]string, 0, len(m.Capabilities))
	for name := range m.Capabilities {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]extension.Descriptor, 0, len(names))
	for _, name := range names {
		d, err := extension.NewDescriptor(name, m.Capabilities[name].Methods...)
		if err != nil {
			return nil, fmt.Errorf("capability %q: %w", name, err)
		}
		out = append(out, d)
	}
	return out, nil
}

// Descriptor returns the named declared capability as a descriptor.
func (m *Manifest) Descriptor(name string) (extension.Descriptor, error) {
	capability, ok := m.Capabilities[name]
	if !ok {
		return extension.Descriptor{}, fmt.Errorf("capability %q not declared", name)
	}
	return extension.NewDescriptor(name, capability.Methods...)
}
