package extension

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/Masterminds/semver/v3"
)

// Category owns one named extension slot: the set of registered
// implementations, the currently selected default, and the capability
// descriptors it enforces on registration.
//
// All mutable state is guarded by a mutex; a Category is safe for concurrent
// use. Conformance is checked once, at registration time, and never
// re-validated afterwards.
type Category struct {
	name          string
	capabilities  []Descriptor
	constraint    *semver.Constraints
	constraintRaw string
	systemDefault ID
	logger        *slog.Logger

	mu         sync.RWMutex
	registered map[ID]any
	defaultID  ID
}

// CategoryOption configures a Category at registration time.
type CategoryOption func(*categoryConfig)

type categoryConfig struct {
	capabilities []Descriptor
	constraint   string
}

// WithCapabilities sets the capability descriptors every implementation must
// satisfy to be accepted into the category.
func WithCapabilities(descriptors ...Descriptor) CategoryOption {
	return func(c *categoryConfig) {
		c.capabilities = append(c.capabilities, descriptors...)
	}
}

// WithVersionConstraint requires implementations to declare a version (via
// Versioned) satisfying the given semver constraint, e.g. ">= 1.2".
func WithVersionConstraint(constraint string) CategoryOption {
	return func(c *categoryConfig) {
		c.constraint = constraint
	}
}

// newCategory builds a category and registers its system default. The system
// default must itself pass conformance; a category is never created without a
// valid fallback.
func newCategory(name string, systemDefault any, logger *slog.Logger, opts ...CategoryOption) (*Category, error) {
	var cfg categoryConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	c := &Category{
		name:         name,
		capabilities: append([]Descriptor(nil), cfg.capabilities...),
		logger:       logger,
		registered:   make(map[ID]any),
	}

	if cfg.constraint != "" {
		constraint, err := semver.NewConstraint(cfg.constraint)
		if err != nil {
			return nil, fmt.Errorf("category %q: invalid version constraint %q: %w", name, cfg.constraint, err)
		}
		c.constraint = constraint
		c.constraintRaw = cfg.constraint
	}

	id, err := c.Register(systemDefault)
	if err != nil {
		return nil, fmt.Errorf("category %q: system default rejected: %w", name, err)
	}
	c.systemDefault = id
	c.defaultID = id

	return c, nil
}

// Name returns the category name.
func (c *Category) Name() string { return c.name }

// Capabilities returns the descriptors enforced on registration.
func (c *Category) Capabilities() []Descriptor {
	return append([]Descriptor(nil), c.capabilities...)
}

// Register validates impl against every capability descriptor and, on
// success, stores it under its identity. Registering the same implementation
// type twice is a harmless overwrite, never an error, and never moves the
// current default.
func (c *Category) Register(impl any) (ID, error) {
	for _, d := range c.capabilities {
		if missing := d.Missing(impl); len(missing) > 0 {
			return "", &InterfaceMismatchError{
				Category:   c.name,
				Descriptor: d.Name(),
				Missing:    missing,
			}
		}
	}

	if err := c.checkVersion(impl); err != nil {
		return "", err
	}

	id, err := IdentityOf(impl)
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	c.registered[id] = impl
	c.mu.Unlock()

	c.logger.Debug("extension registered", "category", c.name, "id", id)
	return id, nil
}

func (c *Category) checkVersion(impl any) error {
	if c.constraint == nil {
		return nil
	}
	versioned, ok := impl.(Versioned)
	if !ok {
		return &VersionError{Category: c.name, Constraint: c.constraintRaw}
	}
	raw := versioned.ExtensionVersion()
	v, err := semver.NewVersion(raw)
	if err != nil || !c.constraint.Check(v) {
		return &VersionError{Category: c.name, Version: raw, Constraint: c.constraintRaw}
	}
	return nil
}

// Extensions returns a copy of the registered mapping (identity to
// implementation).
func (c *Category) Extensions() map[ID]any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[ID]any, len(c.registered))
	for id, impl := range c.registered {
		out[id] = impl
	}
	return out
}

// IDs returns the registered identities in sorted order.
func (c *Category) IDs() []ID {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ids := make([]ID, 0, len(c.registered))
	for id := range c.registered {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Default returns the implementation currently selected for this category.
func (c *Category) Default() any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.registered[c.defaultID]
}

// DefaultID returns the identity of the current default.
func (c *Category) DefaultID() ID {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.defaultID
}

// SetDefault makes impl the category default, registering it first if it is
// not already registered (running the same conformance checks).
func (c *Category) SetDefault(impl any) error {
	id, err := c.Register(impl)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.defaultID = id
	c.mu.Unlock()
	return nil
}

// SetDefaultByID selects the default by identity. The identity must already
// be registered; on UnknownExtensionIDError the current default is unchanged.
func (c *Category) SetDefaultByID(id ID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.registered[id]; !ok {
		return &UnknownExtensionIDError{Category: c.name, ID: id}
	}
	c.defaultID = id
	return nil
}

// SystemDefault returns the guaranteed-registered, guaranteed-conformant
// fallback implementation. Callers use it for recovery when the selected
// default fails during use.
func (c *Category) SystemDefault() any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.registered[c.systemDefault]
}

// SystemDefaultID returns the identity of the system default.
func (c *Category) SystemDefaultID() ID { return c.systemDefault }
