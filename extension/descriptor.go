package extension

import (
	"fmt"
	"reflect"
	"sort"
)

// Descriptor is a capability descriptor: a named set of operation names an
// implementation must expose to be accepted into a category.
//
// A descriptor built with NewDescriptor performs a purely structural check:
// conformance holds iff every required method name is present on the
// implementation, with no signature checking. A same-named method with an
// incompatible signature therefore passes registration and fails at call
// time; build the descriptor from a Go interface with DescriptorOf to close
// that gap.
type Descriptor struct {
	name    string
	methods []string
	iface   reflect.Type // optional; when set, conformance uses Implements
}

// NewDescriptor creates a name-set descriptor requiring the given methods.
// A descriptor with no methods trivially conforms to everything.
func NewDescriptor(name string, methods ...string) (Descriptor, error) {
	if name == "" {
		return Descriptor{}, fmt.Errorf("descriptor name cannot be empty")
	}
	for _, m := range methods {
		if m == "" {
			return Descriptor{}, fmt.Errorf("descriptor %q: method name cannot be empty", name)
		}
	}
	ms := append([]string(nil), methods...)
	sort.Strings(ms)
	return Descriptor{name: name, methods: ms}, nil
}

// MustNewDescriptor creates a descriptor or panics.
func MustNewDescriptor(name string, methods ...string) Descriptor {
	d, err := NewDescriptor(name, methods...)
	if err != nil {
		panic(err)
	}
	return d
}

// DescriptorOf derives a descriptor from a Go interface type. Conformance for
// such a descriptor is a real interface assertion (signatures included), not a
// name probe.
func DescriptorOf[T any](name string) (Descriptor, error) {
	if name == "" {
		return Descriptor{}, fmt.Errorf("descriptor name cannot be empty")
	}
	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.Kind() != reflect.Interface {
		return Descriptor{}, fmt.Errorf("descriptor %q: type %s is not an interface", name, t.String())
	}
	methods := make([]string, 0, t.NumMethod())
	for i := 0; i < t.NumMethod(); i++ {
		methods = append(methods, t.Method(i).Name)
	}
	sort.Strings(methods)
	return Descriptor{name: name, methods: methods, iface: t}, nil
}

// MustDescriptorOf derives a descriptor from a Go interface type or panics.
func MustDescriptorOf[T any](name string) Descriptor {
	d, err := DescriptorOf[T](name)
	if err != nil {
		panic(err)
	}
	return d
}

// Name returns the descriptor's name.
func (d Descriptor) Name() string { return d.name }

// Methods returns the required method names.
func (d Descriptor) Methods() []string {
	return append([]string(nil), d.methods...)
}

// IsZero returns true if this is the zero value, which conforms to everything.
func (d Descriptor) IsZero() bool {
	return d.name == "" && len(d.methods) == 0 && d.iface == nil
}

// Conforms reports whether impl satisfies this descriptor.
func (d Descriptor) Conforms(impl any) bool {
	return len(d.Missing(impl)) == 0
}

// Missing returns the required method names impl does not satisfy. For an
// interface-derived descriptor a present-but-incompatible method counts as
// missing; for a name-set descriptor only absence does.
func (d Descriptor) Missing(impl any) []string {
	if len(d.methods) == 0 {
		return nil
	}
	t := reflect.TypeOf(impl)
	if t == nil {
		return d.Methods()
	}

	if d.iface != nil {
		if t.Implements(d.iface) {
			return nil
		}
		var missing []string
		for i := 0; i < d.iface.NumMethod(); i++ {
			im := d.iface.Method(i)
			m, ok := t.MethodByName(im.Name)
			if !ok || !signatureMatches(m, im) {
				missing = append(missing, im.Name)
			}
		}
		return missing
	}

	var missing []string
	for _, name := range d.methods {
		if _, ok := t.MethodByName(name); !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// signatureMatches compares a concrete method against an interface method.
// Concrete method types carry the receiver as the first input, so inputs are
// compared with an offset of one.
func signatureMatches(m reflect.Method, im reflect.Method) bool {
	mt, it := m.Type, im.Type
	if mt.NumIn()-1 != it.NumIn() || mt.NumOut() != it.NumOut() {
		return false
	}
	for i := 0; i < it.NumIn(); i++ {
		if mt.In(i+1) != it.In(i) {
			return false
		}
	}
	for i := 0; i < it.NumOut(); i++ {
		if mt.Out(i) != it.Out(i) {
			return false
		}
	}
	return true
}
