package introspectable

import (
	"fmt"
	"reflect"

	"github.com/Peperworx/introspectable/info"
)

// The helpers below are meant for Introspect methods emitted by code
// generators, where a malformed declaration is a bug and panics at first
// use. Field, TupleCase and FieldsCase describe their type argument within
// the resolution running the Introspect method, using its resolver, or with
// the default resolver outside of one.

// StructOf builds a Struct descriptor, panicking on duplicate field names.
func StructOf(name string, fields ...info.Field) info.Struct {
	return info.MustStruct(name, fields...)
}

// EnumOf builds an Enum descriptor, panicking on duplicate variant names.
func EnumOf(name string, cases ...info.Variant) info.Enum {
	return info.MustEnum(name, cases...)
}

// Field returns a struct or variant field named name holding a T.
func Field[T any](name string) info.Field {
	return info.Field{Name: name, Type: describeNested(reflect.TypeFor[T]())}
}

// Self is the back-reference a self-referential type uses in place of its
// own descriptor.
func Self(name string) info.Recursive {
	return info.Recursive{Name: name}
}

// UnitCase returns a variant carrying no data.
func UnitCase(name string) info.Variant {
	return info.Variant{Name: name, Shape: info.UnitVariant{}}
}

// TupleCase returns a variant with positional fields taken from T. T is
// normally a TupleN; Unit gives a variant with no fields and any other type
// a variant with a single field.
func TupleCase[T any](name string) info.Variant {
	var fields []info.Descriptor
	switch d := describeNested(reflect.TypeFor[T]()).(type) {
	case info.Tuple:
		fields = d.Fields
	case info.Unit:
	default:
		fields = []info.Descriptor{d}
	}
	return info.Variant{Name: name, Shape: info.UnnamedVariant{Fields: fields}}
}

// TupleCaseOf is like TupleCase for descriptors built by hand.
func TupleCaseOf(name string, fields ...info.Descriptor) info.Variant {
	v, err := info.NewUnnamedVariant(fields...)
	if err != nil {
		panic(fmt.Errorf("variant %q: %w", name, err))
	}
	return info.Variant{Name: name, Shape: v}
}

// FieldsCase returns a variant with named fields taken from the struct T.
func FieldsCase[T any](name string) info.Variant {
	d := describeNested(reflect.TypeFor[T]())
	st, ok := d.(info.Struct)
	if !ok {
		panic(fmt.Errorf("variant %q: %s is not a struct: %w", name, d, info.ErrUnexpectedDescriptor))
	}
	return info.Variant{Name: name, Shape: info.NamedVariant{Fields: st.Fields}}
}

// FieldsCaseOf is like FieldsCase for fields built by hand.
func FieldsCaseOf(name string, fields ...info.Field) info.Variant {
	v, err := info.NewNamedVariant(fields...)
	if err != nil {
		panic(fmt.Errorf("variant %q: %w", name, err))
	}
	return info.Variant{Name: name, Shape: v}
}
