package manifest

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/reglet-dev/extkit/extension"
)

// Applier restores manifest-declared default selections into a live registry.
type Applier struct {
	logger *slog.Logger
}

// ApplierOption configures an Applier.
type ApplierOption func(*Applier)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) ApplierOption {
	return func(a *Applier) { a.logger = l }
}

// NewApplier creates an Applier with the given options.
func NewApplier(opts ...ApplierOption) *Applier {
	a := &Applier{logger: slog.Default()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// ApplyDefaults selects each manifest-declared default via SetDefaultByID.
// Entries referencing categories or extension IDs not present in this build
// are logged and skipped, leaving the system default in effect; a manifest
// written by a different build must never break start-up. The number of
// defaults actually applied is returned.
func (a *Applier) ApplyDefaults(reg *extension.Registry, m *Manifest) (int, error) {
	if err := m.Validate(); err != nil {
		return 0, fmt.Errorf("invalid manifest: %w", err)
	}

	categories := make([]string, 0, len(m.Defaults))
	for name := range m.Defaults {
		categories = append(categories, name)
	}
	sort.Strings(categories)

	applied := 0
	for _, category := range categories {
		id := extension.ID(m.Defaults[category])
		err := reg.SetDefaultByID(category, id)
		switch {
		case err == nil:
			a.logger.Debug("default applied", "category", category, "id", id)
			applied++
		case errors.Is(err, extension.ErrUnknownCategory),
			errors.Is(err, extension.ErrUnknownExtensionID):
			a.logger.Warn("skipping manifest default", "category", category, "id", id, "reason", err)
		default:
			return applied, err
		}
	}
	return applied, nil
}

// Problem is one finding from Lint.
type Problem struct {
	Category string
	Detail   string
}

func (p Problem) String() string {
	if p.Category == "" {
		return p.Detail
	}
	return fmt.Sprintf("%s: %s", p.Category, p.Detail)
}

// Lint cross-checks a manifest against a live registry without mutating
// anything: declared capabilities with no methods, defaults referencing
// unknown categories, and defaults referencing unregistered extension IDs are
// all reported.
func Lint(reg *extension.Registry, m *Manifest) []Problem {
	var problems []Problem

	capNames := make([]string, 0, len(m.Capabilities))
	for name := range m.Capabilities {
		capNames = append(capNames, name)
	}
	sort.Strings(capNames)
	for _, name := range capNames {
		if len(m.Capabilities[name].Methods) == 0 {
			problems = append(problems, Problem{
				Detail: fmt.Sprintf("capability %q requires no methods and accepts everything", name),
			})
		}
	}

	categories := make([]string, 0, len(m.Defaults))
	for name := range m.Defaults {
		categories = append(categories, name)
	}
	sort.Strings(categories)
	for _, category := range categories {
		id := extension.ID(m.Defaults[category])
		c, err := reg.Category(category)
		if err != nil {
			problems = append(problems, Problem{Category: category, Detail: "category not registered"})
			continue
		}
		if _, ok := c.Extensions()[id]; !ok {
			problems = append(problems, Problem{
				Category: category,
				Detail:   fmt.Sprintf("default %q is not a registered extension", id),
			})
		}
	}

	return problems
}
