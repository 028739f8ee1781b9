// Package info defines the Descriptor model: a closed, recursive value that
// describes the shape of a type.
//
// A Descriptor is one of the variant types declared in this package. The set
// is closed by an unexported marker method, so a type switch over the
// variants is exhaustive:
//
//	switch d := d.(type) {
//	case info.Never, info.Unit:
//	case info.Scalar:
//	case info.Struct, info.Tuple, info.Enum, info.Array, info.Slice:
//	case info.Reference, info.ConstPointer, info.MutPointer:
//	case info.ErasedImpl, info.ErasedDyn:
//	case info.Recursive:
//	case info.Specialized: // absent when built with the nospecialized tag
//	}
//
// Descriptors are immutable once built. Constructors copy the maps and slices
// they are given; callers must not mutate the Fields or Variants of a
// descriptor they did not build themselves.
package info

import (
	"fmt"
	"strings"
)

// Kind is the variant tag of a Descriptor.
type Kind uint8

const (
	KindNever Kind = iota
	KindUnit
	KindScalar
	KindStruct
	KindTuple
	KindEnum
	KindArray
	KindSlice
	KindReference
	KindConstPointer
	KindMutPointer
	KindErasedImpl
	KindErasedDyn
	KindRecursive
)

var kindNames = [...]string{
	KindNever:        "never",
	KindUnit:         "unit",
	KindScalar:       "scalar",
	KindStruct:       "struct",
	KindTuple:        "tuple",
	KindEnum:         "enum",
	KindArray:        "array",
	KindSlice:        "slice",
	KindReference:    "reference",
	KindConstPointer: "const_pointer",
	KindMutPointer:   "mut_pointer",
	KindErasedImpl:   "erased_impl",
	KindErasedDyn:    "erased_dyn",
	KindRecursive:    "recursive",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	if name, ok := extensionKindName(k); ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseKind parses a variant tag as produced by Kind.String.
func ParseKind(s string) (Kind, bool) {
	for k, n := range kindNames {
		if n == s {
			return Kind(k), true
		}
	}
	return parseExtensionKind(s)
}

// Descriptor is the recursive description of a type's shape.
type Descriptor interface {
	// Kind returns the variant tag.
	Kind() Kind
	// String returns a compact one-line summary for debugging.
	String() string

	descriptor()
}

// Compound groups the structural aggregate variants: Struct, Tuple, Enum,
// Array and Slice.
type Compound interface {
	Descriptor
	compound()
}

// Pointer groups the indirection variants: Reference, ConstPointer and
// MutPointer.
type Pointer interface {
	Descriptor
	// Pointee returns the descriptor of the target type.
	Pointee() Descriptor
	pointer()
}

// Never describes the uninhabited type.
type Never struct{}

func (Never) Kind() Kind     { return KindNever }
func (Never) String() string { return "!" }
func (Never) descriptor()    {}

// Unit describes the zero-information type with exactly one value.
type Unit struct{}

func (Unit) Kind() Kind     { return KindUnit }
func (Unit) String() string { return "()" }
func (Unit) descriptor()    {}

// Scalar describes a primitive value kind.
type Scalar struct {
	Type ScalarKind
}

// ScalarOf returns the Scalar descriptor for k.
func ScalarOf(k ScalarKind) Scalar {
	return Scalar{Type: k}
}

func (Scalar) Kind() Kind       { return KindScalar }
func (s Scalar) String() string { return s.Type.String() }
func (Scalar) descriptor()      {}

// ErasedImpl describes an opaque type statically known only to satisfy an
// ordered set of named capabilities.
type ErasedImpl struct {
	Capabilities []string
}

// NewErasedImpl returns an ErasedImpl over a copy of caps.
func NewErasedImpl(caps ...string) (ErasedImpl, error) {
	c, err := capabilitySet(caps)
	if err != nil {
		return ErasedImpl{}, err
	}
	return ErasedImpl{Capabilities: c}, nil
}

func (ErasedImpl) Kind() Kind { return KindErasedImpl }
func (e ErasedImpl) String() string {
	return "impl " + joinCapabilities(e.Capabilities)
}
func (ErasedImpl) descriptor() {}

// ErasedDyn describes a type known only through dynamic dispatch against an
// ordered set of named capabilities.
type ErasedDyn struct {
	Capabilities []string
}

// NewErasedDyn returns an ErasedDyn over a copy of caps.
func NewErasedDyn(caps ...string) (ErasedDyn, error) {
	c, err := capabilitySet(caps)
	if err != nil {
		return ErasedDyn{}, err
	}
	return ErasedDyn{Capabilities: c}, nil
}

func (ErasedDyn) Kind() Kind { return KindErasedDyn }
func (e ErasedDyn) String() string {
	return "dyn " + joinCapabilities(e.Capabilities)
}
func (ErasedDyn) descriptor() {}

// Recursive is a back-reference to an enclosing named aggregate. It stands in
// for a type that is already being described further up the tree, which keeps
// descriptors of self-referential types finite.
type Recursive struct {
	Name string
}

func (Recursive) Kind() Kind       { return KindRecursive }
func (r Recursive) String() string { return "rec " + r.Name }
func (Recursive) descriptor()      {}

// capabilitySet copies caps, rejecting empty and repeated names.
func capabilitySet(caps []string) ([]string, error) {
	if len(caps) == 0 {
		return nil, nil
	}
	out := make([]string, 0, len(caps))
	seen := make(map[string]struct{}, len(caps))
	for _, c := range caps {
		if c == "" {
			return nil, fmt.Errorf("capability: %w", ErrEmptyName)
		}
		if _, dup := seen[c]; dup {
			return nil, fmt.Errorf("capability %q: %w", c, ErrDuplicateName)
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out, nil
}

func joinCapabilities(caps []string) string {
	if len(caps) == 0 {
		return "any"
	}
	return strings.Join(caps, " + ")
}
