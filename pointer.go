package introspectable

import (
	"reflect"

	"github.com/Peperworx/introspectable/info"
)

// Native Go pointers describe as info.MutPointer. The wrappers below carry
// the other indirection forms: shared and exclusive references, optionally
// bound to a named lifetime, and read-only raw pointers.

// Ref is a shared reference to a T that must not be modified through it.
type Ref[T any] struct {
	p *T
}

// NewRef returns a shared reference to *p.
func NewRef[T any](p *T) Ref[T] { return Ref[T]{p: p} }

// Get returns a copy of the referenced value.
func (r Ref[T]) Get() T { return *r.p }

func (Ref[T]) TypeArgs() []reflect.Type { return typeArgs[T]() }
func (Ref[T]) Compose(args []info.Descriptor) info.Descriptor {
	return info.Reference{Target: args[0]}
}
func (r Ref[T]) Introspect() info.Descriptor { return Assemble(r) }

// MutRef is an exclusive reference to a T.
type MutRef[T any] struct {
	p *T
}

// NewMutRef returns an exclusive reference to *p.
func NewMutRef[T any](p *T) MutRef[T] { return MutRef[T]{p: p} }

// Get returns a copy of the referenced value.
func (r MutRef[T]) Get() T { return *r.p }

// Set replaces the referenced value.
func (r MutRef[T]) Set(v T) { *r.p = v }

func (MutRef[T]) TypeArgs() []reflect.Type { return typeArgs[T]() }
func (MutRef[T]) Compose(args []info.Descriptor) info.Descriptor {
	return info.Reference{Target: args[0], Mutable: true}
}
func (r MutRef[T]) Introspect() info.Descriptor { return Assemble(r) }

// RefIn is a shared reference valid for the lifetime L.
type RefIn[L Lifetime, T any] struct {
	Ref[T]
}

// NewRefIn returns a shared reference to *p valid for L.
func NewRefIn[L Lifetime, T any](p *T) RefIn[L, T] {
	return RefIn[L, T]{Ref: NewRef(p)}
}

func (RefIn[L, T]) Compose(args []info.Descriptor) info.Descriptor {
	return info.Reference{Lifetime: lifetimeOf[L](), Target: args[0]}
}
func (r RefIn[L, T]) Introspect() info.Descriptor { return Assemble(r) }

// MutRefIn is an exclusive reference valid for the lifetime L.
type MutRefIn[L Lifetime, T any] struct {
	MutRef[T]
}

// NewMutRefIn returns an exclusive reference to *p valid for L.
func NewMutRefIn[L Lifetime, T any](p *T) MutRefIn[L, T] {
	return MutRefIn[L, T]{MutRef: NewMutRef(p)}
}

func (MutRefIn[L, T]) Compose(args []info.Descriptor) info.Descriptor {
	return info.Reference{Lifetime: lifetimeOf[L](), Target: args[0], Mutable: true}
}
func (r MutRefIn[L, T]) Introspect() info.Descriptor { return Assemble(r) }

// ConstPtr is a raw pointer to a T that is only read through it. It may be
// nil.
type ConstPtr[T any] struct {
	p *T
}

// NewConstPtr wraps p.
func NewConstPtr[T any](p *T) ConstPtr[T] { return ConstPtr[T]{p: p} }

// IsNil reports whether the pointer is nil.
func (p ConstPtr[T]) IsNil() bool { return p.p == nil }

// Load returns a copy of the pointed-to value. It panics on a nil pointer.
func (p ConstPtr[T]) Load() T { return *p.p }

func (ConstPtr[T]) TypeArgs() []reflect.Type { return typeArgs[T]() }
func (ConstPtr[T]) Compose(args []info.Descriptor) info.Descriptor {
	return info.ConstPointer{Target: args[0]}
}
func (p ConstPtr[T]) Introspect() info.Descriptor { return Assemble(p) }

// MutPtr is a raw pointer to a T. It describes exactly like *T and exists so
// generic code can name the form explicitly.
type MutPtr[T any] struct {
	p *T
}

// NewMutPtr wraps p.
func NewMutPtr[T any](p *T) MutPtr[T] { return MutPtr[T]{p: p} }

// Ptr returns the underlying pointer.
func (p MutPtr[T]) Ptr() *T { return p.p }

func (MutPtr[T]) TypeArgs() []reflect.Type { return typeArgs[T]() }
func (MutPtr[T]) Compose(args []info.Descriptor) info.Descriptor {
	return info.MutPointer{Target: args[0]}
}
func (p MutPtr[T]) Introspect() info.Descriptor { return Assemble(p) }

func typeArgs[T any]() []reflect.Type {
	return []reflect.Type{reflect.TypeFor[T]()}
}
