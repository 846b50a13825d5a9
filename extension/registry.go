// Package extension implements an in-process extension registry.
//
// Independently-built implementations register themselves under named slots
// ("categories"), are validated against the category's required capability
// descriptors, and are retrieved by callers either as a full listing or as a
// single resolved default. Each category carries a system default: a
// guaranteed-registered, guaranteed-conformant fallback callers can recover
// with when the selected default misbehaves.
//
// The registry is populated by providers during application start-up and read
// by consumers afterwards; both sides are safe to call concurrently.
package extension

import (
	"log/slog"
	"sort"
	"sync"
)

// Registry is the process-wide table of categories and the public entry point
// of the extension system. Applications construct one Registry at start-up and
// pass it to collaborators; there is no hidden global.
type Registry struct {
	logger *slog.Logger

	mu         sync.RWMutex
	categories map[string]*Category
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) { r.logger = l }
}

// New creates an empty Registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		logger:     slog.Default(),
		categories: make(map[string]*Category),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RegisterCategory creates a category under name with the given system
// default and options, and implicitly registers the system default as the
// initial default selection.
//
// The call is idempotent: if the category already exists it is returned
// untouched, so a second provider racing on the same name can never discard
// extensions registered by the first. Use ResetCategory for a deliberate
// destructive replacement.
func (r *Registry) RegisterCategory(name string, systemDefault any, opts ...CategoryOption) (*Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.categories[name]; ok {
		r.logger.Debug("category already registered, keeping existing", "category", name)
		return existing, nil
	}

	c, err := newCategory(name, systemDefault, r.logger, opts...)
	if err != nil {
		return nil, err
	}
	r.categories[name] = c
	r.logger.Debug("category registered", "category", name, "system_default", c.SystemDefaultID())
	return c, nil
}

// ResetCategory replaces any existing category under name with a fresh one,
// discarding all prior registrations. This is the explicit destructive
// counterpart of RegisterCategory.
func (r *Registry) ResetCategory(name string, systemDefault any, opts ...CategoryOption) (*Category, error) {
	c, err := newCategory(name, systemDefault, r.logger, opts...)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.categories[name] = c
	r.mu.Unlock()

	r.logger.Debug("category reset", "category", name)
	return c, nil
}

// Register registers impl into the named category.
func (r *Registry) Register(name string, impl any) (ID, error) {
	c, err := r.Category(name)
	if err != nil {
		return "", err
	}
	return c.Register(impl)
}

// Category returns the named category.
func (r *Registry) Category(name string) (*Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.categories[name]
	if !ok {
		return nil, &UnknownCategoryError{Name: name}
	}
	return c, nil
}

// Categories returns all registered categories, sorted by name.
func (r *Registry) Categories() []*Category {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

// Extensions returns the registered mapping (identity to implementation) of
// the named category.
func (r *Registry) Extensions(name string) (map[ID]any, error) {
	c, err := r.Category(name)
	if err != nil {
		return nil, err
	}
	return c.Extensions(), nil
}

// Default returns the implementation currently selected for the named
// category.
func (r *Registry) Default(name string) (any, error) {
	c, err := r.Category(name)
	if err != nil {
		return nil, err
	}
	return c.Default(), nil
}

// SetDefault makes impl the default of the named category, registering it
// first if needed.
func (r *Registry) SetDefault(name string, impl any) error {
	c, err := r.Category(name)
	if err != nil {
		return err
	}
	return c.SetDefault(impl)
}

// SetDefaultByID selects the named category's default by identity, e.g. from
// a previously persisted user preference.
func (r *Registry) SetDefaultByID(name string, id ID) error {
	c, err := r.Category(name)
	if err != nil {
		return err
	}
	return c.SetDefaultByID(id)
}

// SystemDefault returns the named category's guaranteed-safe fallback
// implementation.
func (r *Registry) SystemDefault(name string) (any, error) {
	c, err := r.Category(name)
	if err != nil {
		return nil, err
	}
	return c.SystemDefault(), nil
}
