package introspectable

import (
	"reflect"
	"sync"

	"github.com/Peperworx/introspectable/info"
)

// Introspectable is implemented by types that describe their own shape.
//
// Introspect is called on the zero value and must not read instance data.
// Types it describes through Field, Of or the other helpers of this package
// join the running resolution, so a reference back to the type being
// described comes out as info.Recursive. A descriptor built by hand uses Self
// for that.
type Introspectable interface {
	Introspect() info.Descriptor
}

// Composite is implemented by generic wrappers whose descriptor is assembled
// from the descriptors of their type arguments. The resolver describes each
// argument within the same resolution, so cycles through a Composite are
// detected and reported as info.Recursive.
//
// Both methods are called on the zero value.
type Composite interface {
	TypeArgs() []reflect.Type
	Compose(args []info.Descriptor) info.Descriptor
}

// Of returns the descriptor of T. T must implement Introspectable, so a type
// without the capability does not compile. Called from an Introspect method,
// Of joins the resolution that is running it; otherwise it uses the default
// resolver. A pointer or interface T is asked for its descriptor directly.
func Of[T Introspectable]() info.Descriptor {
	t := reflect.TypeFor[T]()
	if t.Kind() == reflect.Pointer || t.Kind() == reflect.Interface {
		var zero T
		return zero.Introspect()
	}
	return describeNested(t)
}

// Describe returns the descriptor of T using the default resolver.
func Describe[T any]() (info.Descriptor, error) {
	return Default().Describe(reflect.TypeFor[T]())
}

// MustDescribe is like Describe but panics on error.
func MustDescribe[T any]() info.Descriptor {
	return Default().MustDescribe(reflect.TypeFor[T]())
}

// DescribeType returns the descriptor of t using the default resolver.
func DescribeType(t reflect.Type) (info.Descriptor, error) {
	return Default().Describe(t)
}

var (
	defaultOnce     sync.Once
	defaultResolver *Resolver
)

// Default returns the process-wide resolver used by Describe, MustDescribe,
// and by Of, Assemble and Field when no resolution is running.
func Default() *Resolver {
	defaultOnce.Do(func() {
		defaultResolver = NewResolver(DefaultOptions())
	})
	return defaultResolver
}

// Assemble describes the type arguments of c and composes them. It lets a
// Composite implement Introspect, so the type also works with Of. Inside a
// running resolution the arguments are described by that resolution and its
// resolver; otherwise the default resolver is used. It panics if a type
// argument cannot be described.
func Assemble(c Composite) info.Descriptor {
	args := c.TypeArgs()
	descs := make([]info.Descriptor, len(args))
	for i, t := range args {
		descs[i] = describeNested(t)
	}
	return c.Compose(descs)
}

var (
	introspectableType = reflect.TypeFor[Introspectable]()
	compositeType      = reflect.TypeFor[Composite]()
)

// implementsOwn reports whether t has iface in its own method set. Pointer
// types are never self-describing: *T is described as a pointer to T, even
// when the method is declared on *T.
func implementsOwn(t, iface reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Pointer:
		return false
	}
	return t.Implements(iface)
}

// zeroAs returns the zero value of t as an iface implementation, falling
// back to a pointer to a fresh zero value when only *t implements iface.
func zeroAs[I any](t, iface reflect.Type) (I, bool) {
	var none I
	if implementsOwn(t, iface) {
		v, ok := reflect.Zero(t).Interface().(I)
		return v, ok
	}
	if t.Kind() != reflect.Pointer && t.Kind() != reflect.Interface && reflect.PointerTo(t).Implements(iface) {
		v, ok := reflect.New(t).Interface().(I)
		return v, ok
	}
	return none, false
}
