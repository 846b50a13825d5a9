package extension

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common error patterns.
// These allow both errors.Is() checks and errors.As() for detailed information.
var (
	// ErrUnknownCategory is returned when an operation references a category
	// name that was never registered.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrInterfaceMismatch is returned when a candidate implementation lacks
	// one or more operations required by a category's capability descriptors.
	ErrInterfaceMismatch = errors.New("interface mismatch")

	// ErrUnknownExtensionID is returned when a default selection references an
	// identity that is not registered in the category.
	ErrUnknownExtensionID = errors.New("unknown extension id")

	// ErrAnonymousType is returned when an identity is requested for an
	// anonymous or unnamed type, which has no stable name to derive it from.
	ErrAnonymousType = errors.New("anonymous type has no stable identity")

	// ErrInvalidID is returned when an author-assigned extension ID violates
	// the identifier rules.
	ErrInvalidID = errors.New("invalid extension id")

	// ErrVersionRejected is returned when an implementation's version does not
	// satisfy the category's version constraint.
	ErrVersionRejected = errors.New("version rejected by category constraint")
)

// UnknownCategoryError indicates a lookup for a category that does not exist.
type UnknownCategoryError struct {
	Name string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown category %q", e.Name)
}

// Is implements error matching for errors.Is() checks.
// This allows: errors.Is(err, extension.ErrUnknownCategory)
func (e *UnknownCategoryError) Is(target error) bool {
	return target == ErrUnknownCategory
}

// InterfaceMismatchError indicates a failed conformance check.
// Carries the offending descriptor and the missing operation names for diagnostics.
type InterfaceMismatchError struct {
	Category   string
	Descriptor string
	Missing    []string
}

func (e *InterfaceMismatchError) Error() string {
	return fmt.Sprintf(
		"category %q: implementation does not satisfy capability %q (missing: %s)",
		e.Category, e.Descriptor, strings.Join(e.Missing, ", "),
	)
}

// Is implements error matching for errors.Is() checks.
func (e *InterfaceMismatchError) Is(target error) bool {
	return target == ErrInterfaceMismatch
}

// UnknownExtensionIDError indicates a default selection by an unregistered identity.
type UnknownExtensionIDError struct {
	Category string
	ID       ID
}

func (e *UnknownExtensionIDError) Error() string {
	return fmt.Sprintf("extension id %q not registered on category %q", e.ID, e.Category)
}

// Is implements error matching for errors.Is() checks.
func (e *UnknownExtensionIDError) Is(target error) bool {
	return target == ErrUnknownExtensionID
}

// VersionError indicates an implementation whose version does not satisfy the
// category's semver constraint, or that declares no version at all.
type VersionError struct {
	Category   string
	Version    string
	Constraint string
}

func (e *VersionError) Error() string {
	if e.Version == "" {
		return fmt.Sprintf("category %q requires version %q but implementation declares no version", e.Category, e.Constraint)
	}
	return fmt.Sprintf("category %q requires version %q but implementation declares %q", e.Category, e.Constraint, e.Version)
}

// Is implements error matching for errors.Is() checks.
func (e *VersionError) Is(target error) bool {
	return target == ErrVersionRejected
}
