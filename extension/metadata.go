package extension

import "reflect"

// Versioned lets an implementation declare its version. Categories created
// with WithVersionConstraint only accept Versioned implementations whose
// version satisfies the constraint.
type Versioned interface {
	// ExtensionVersion returns the implementation version as a semver string.
	ExtensionVersion() string
}

// Describable lets an implementation supply human-readable metadata, shown by
// selection UIs and inspection tooling.
type Describable interface {
	// ExtensionInfo returns the implementation's metadata. Zero fields are
	// filled with derived values where possible.
	ExtensionInfo() Info
}

// Info is the human-readable metadata of a registered extension.
type Info struct {
	ID          ID
	Label       string
	Description string
	Version     string
}

// Info assembles metadata for a registered extension. The label falls back to
// the implementation's type name when the extension declares none.
func (c *Category) Info(id ID) (Info, error) {
	c.mu.RLock()
	impl, ok := c.registered[id]
	c.mu.RUnlock()
	if !ok {
		return Info{}, &UnknownExtensionIDError{Category: c.name, ID: id}
	}

	var info Info
	if d, ok := impl.(Describable); ok {
		info = d.ExtensionInfo()
	}
	info.ID = id
	if info.Label == "" {
		info.Label = typeLabel(impl)
	}
	if info.Version == "" {
		if v, ok := impl.(Versioned); ok {
			info.Version = v.ExtensionVersion()
		}
	}
	return info, nil
}

func typeLabel(impl any) string {
	t := reflect.TypeOf(impl)
	if t == nil {
		return ""
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}
