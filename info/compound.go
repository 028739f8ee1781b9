package info

import (
	"fmt"
	"sort"
	"strings"
)

// Field is a named slot used to build Struct and NamedVariant descriptors.
type Field struct {
	Name string
	Type Descriptor
}

// Struct describes a named aggregate. Field order is not significant.
type Struct struct {
	Name   string
	Fields map[string]Descriptor
}

// NewStruct builds a Struct, rejecting duplicate or empty field names and nil
// field descriptors.
func NewStruct(name string, fields ...Field) (Struct, error) {
	m, err := fieldMap(fields)
	if err != nil {
		return Struct{}, fmt.Errorf("struct %s: %w", name, err)
	}
	return Struct{Name: name, Fields: m}, nil
}

// MustStruct is like NewStruct but panics on error. It is meant for
// generated Introspect methods, where a failure is a declaration bug.
func MustStruct(name string, fields ...Field) Struct {
	s, err := NewStruct(name, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

func (Struct) Kind() Kind { return KindStruct }
func (s Struct) String() string {
	var b strings.Builder
	b.WriteString(s.Name)
	b.WriteByte('{')
	writeFieldMap(&b, s.Fields)
	b.WriteByte('}')
	return b.String()
}
func (Struct) descriptor() {}
func (Struct) compound()   {}

// FieldNames returns the field names in sorted order.
func (s Struct) FieldNames() []string {
	return sortedKeys(s.Fields)
}

// Tuple describes an ordered, fixed-length sequence of descriptors.
type Tuple struct {
	Fields []Descriptor
}

// NewTuple builds a Tuple over a copy of fields.
func NewTuple(fields ...Descriptor) (Tuple, error) {
	out := make([]Descriptor, len(fields))
	for i, f := range fields {
		if f == nil {
			return Tuple{}, fmt.Errorf("tuple slot %d: %w", i, ErrNilDescriptor)
		}
		out[i] = f
	}
	return Tuple{Fields: out}, nil
}

// MustTuple is like NewTuple but panics on error.
func MustTuple(fields ...Descriptor) Tuple {
	t, err := NewTuple(fields...)
	if err != nil {
		panic(err)
	}
	return t
}

func (Tuple) Kind() Kind { return KindTuple }
func (t Tuple) String() string {
	parts := make([]string, len(t.Fields))
	for i, f := range t.Fields {
		parts[i] = describeString(f)
	}
	if len(parts) == 1 {
		return "(" + parts[0] + ",)"
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
func (Tuple) descriptor() {}
func (Tuple) compound()   {}

// Variant is a named enum variant used to build Enum descriptors.
type Variant struct {
	Name  string
	Shape EnumVariant
}

// Enum describes a named tagged union. Variant order is not significant.
type Enum struct {
	Name     string
	Variants map[string]EnumVariant
}

// NewEnum builds an Enum, rejecting duplicate or empty variant names.
func NewEnum(name string, variants ...Variant) (Enum, error) {
	m := make(map[string]EnumVariant, len(variants))
	for _, v := range variants {
		if v.Name == "" {
			return Enum{}, fmt.Errorf("enum %s: variant: %w", name, ErrEmptyName)
		}
		if v.Shape == nil {
			return Enum{}, fmt.Errorf("enum %s: variant %q: %w", name, v.Name, ErrNilVariant)
		}
		if _, dup := m[v.Name]; dup {
			return Enum{}, fmt.Errorf("enum %s: variant %q: %w", name, v.Name, ErrDuplicateName)
		}
		m[v.Name] = v.Shape
	}
	return Enum{Name: name, Variants: m}, nil
}

// MustEnum is like NewEnum but panics on error.
func MustEnum(name string, variants ...Variant) Enum {
	e, err := NewEnum(name, variants...)
	if err != nil {
		panic(err)
	}
	return e
}

func (Enum) Kind() Kind { return KindEnum }
func (e Enum) String() string {
	var b strings.Builder
	b.WriteString("enum ")
	b.WriteString(e.Name)
	b.WriteByte('{')
	for i, name := range e.VariantNames() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(name)
		switch v := e.Variants[name].(type) {
		case UnnamedVariant:
			b.WriteString(Tuple{Fields: v.Fields}.String())
		case NamedVariant:
			b.WriteByte('{')
			writeFieldMap(&b, v.Fields)
			b.WriteByte('}')
		}
	}
	b.WriteByte('}')
	return b.String()
}
func (Enum) descriptor() {}
func (Enum) compound()   {}

// VariantNames returns the variant names in sorted order.
func (e Enum) VariantNames() []string {
	return sortedKeys(e.Variants)
}

// Array describes a fixed-length homogeneous sequence.
type Array struct {
	Elem Descriptor
	Len  int
}

// NewArray builds an Array, rejecting a negative length.
func NewArray(elem Descriptor, length int) (Array, error) {
	if elem == nil {
		return Array{}, fmt.Errorf("array element: %w", ErrNilDescriptor)
	}
	if length < 0 {
		return Array{}, fmt.Errorf("array of %s: %w: %d", elem, ErrNegativeLength, length)
	}
	return Array{Elem: elem, Len: length}, nil
}

func (Array) Kind() Kind { return KindArray }
func (a Array) String() string {
	return fmt.Sprintf("[%s; %d]", describeString(a.Elem), a.Len)
}
func (Array) descriptor() {}
func (Array) compound()   {}

// Slice describes a variable-length homogeneous sequence view.
type Slice struct {
	Elem Descriptor
}

func (Slice) Kind() Kind       { return KindSlice }
func (s Slice) String() string { return "[" + describeString(s.Elem) + "]" }
func (Slice) descriptor()      {}
func (Slice) compound()        {}

// VariantKind tags the shape of an EnumVariant.
type VariantKind uint8

const (
	VariantUnit VariantKind = iota
	VariantUnnamed
	VariantNamed
)

func (k VariantKind) String() string {
	switch k {
	case VariantUnit:
		return "unit"
	case VariantUnnamed:
		return "unnamed"
	case VariantNamed:
		return "named"
	default:
		return fmt.Sprintf("variant(%d)", uint8(k))
	}
}

// EnumVariant is the payload shape of one enum variant: UnitVariant,
// UnnamedVariant or NamedVariant.
type EnumVariant interface {
	VariantKind() VariantKind
	enumVariant()
}

// UnitVariant carries no payload.
type UnitVariant struct{}

func (UnitVariant) VariantKind() VariantKind { return VariantUnit }
func (UnitVariant) enumVariant()             {}

// UnnamedVariant carries a positional payload.
type UnnamedVariant struct {
	Fields []Descriptor
}

// NewUnnamedVariant builds an UnnamedVariant over a copy of fields.
func NewUnnamedVariant(fields ...Descriptor) (UnnamedVariant, error) {
	t, err := NewTuple(fields...)
	if err != nil {
		return UnnamedVariant{}, err
	}
	return UnnamedVariant{Fields: t.Fields}, nil
}

func (UnnamedVariant) VariantKind() VariantKind { return VariantUnnamed }
func (UnnamedVariant) enumVariant()             {}

// NamedVariant carries a payload of named fields. Field order is not
// significant.
type NamedVariant struct {
	Fields map[string]Descriptor
}

// NewNamedVariant builds a NamedVariant, rejecting duplicate field names.
func NewNamedVariant(fields ...Field) (NamedVariant, error) {
	m, err := fieldMap(fields)
	if err != nil {
		return NamedVariant{}, err
	}
	return NamedVariant{Fields: m}, nil
}

func (NamedVariant) VariantKind() VariantKind { return VariantNamed }
func (NamedVariant) enumVariant()             {}

func fieldMap(fields []Field) (map[string]Descriptor, error) {
	m := make(map[string]Descriptor, len(fields))
	for _, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("field: %w", ErrEmptyName)
		}
		if f.Type == nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, ErrNilDescriptor)
		}
		if _, dup := m[f.Name]; dup {
			return nil, fmt.Errorf("field %q: %w", f.Name, ErrDuplicateName)
		}
		m[f.Name] = f.Type
	}
	return m, nil
}

func writeFieldMap(b *strings.Builder, fields map[string]Descriptor) {
	for i, name := range sortedKeys(fields) {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(describeString(fields[name]))
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func describeString(d Descriptor) string {
	if d == nil {
		return "<nil>"
	}
	return d.String()
}
