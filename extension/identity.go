package extension

import (
	"fmt"
	"reflect"
)

// ID is the stable, comparable identity of one implementation type.
// It is safe to persist (e.g. in user preferences) and feed back into
// SetDefaultByID on a later run.
type ID string

// String returns the string representation.
func (id ID) String() string { return string(id) }

// IsEmpty returns true if this is the zero value.
func (id ID) IsEmpty() bool { return id == "" }

// Identifiable lets an implementation assign its own stable identity instead
// of relying on the derived Go type name. Author-assigned keys survive package
// moves and renames, so prefer this for anything whose identity is persisted.
type Identifiable interface {
	// ExtensionID returns the unique identifier for the extension.
	//
	// The identifier must:
	//   - Be no more than 128 characters long.
	//   - Start with an alphanumeric character [a-zA-Z0-9].
	//   - Contain only alphanumeric characters, hyphens (-), underscores (_),
	//     or dots (.) thereafter.
	ExtensionID() string
}

// IdentityOf computes the identity of an implementation.
//
// If impl implements Identifiable, its author-assigned key is validated and
// used. Otherwise the identity is derived from the fully-qualified Go type
// name (pointers dereferenced), which is unique within a build and stable
// across runs. Identity never depends on instance state: two values of the
// same type share one ID.
//
// Anonymous and unnamed types are rejected with ErrAnonymousType.
func IdentityOf(impl any) (ID, error) {
	if ident, ok := impl.(Identifiable); ok {
		key := ident.ExtensionID()
		if err := validateKey(key); err != nil {
			return "", err
		}
		return ID(key), nil
	}

	t := reflect.TypeOf(impl)
	if t == nil {
		return "", fmt.Errorf("cannot compute identity: %w", ErrAnonymousType)
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" || t.PkgPath() == "" {
		return "", fmt.Errorf("cannot compute identity for type %s: %w", t.String(), ErrAnonymousType)
	}

	return ID(t.PkgPath() + "." + t.Name()), nil
}

// MustIdentityOf computes the identity of an implementation or panics.
func MustIdentityOf(impl any) ID {
	id, err := IdentityOf(impl)
	if err != nil {
		panic(err)
	}
	return id
}

func validateKey(key string) error {
	if key == "" {
		return fmt.Errorf("%w: empty", ErrInvalidID)
	}
	if len(key) > 128 {
		return fmt.Errorf("%w: %q is too long (max 128 chars)", ErrInvalidID, key)
	}
	for i, ch := range key {
		if isAlphanumeric(ch) {
			continue
		}
		if i > 0 && (ch == '-' || ch == '_' || ch == '.') {
			continue
		}
		return fmt.Errorf("%w: %q contains invalid character %q", ErrInvalidID, key, ch)
	}
	return nil
}

func isAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}
