package infoyaml

import (
	"fmt"
	"sort"

	"github.com/Peperworx/introspectable/info"
)

// wire is the serialized form of one descriptor node. Only the keys relevant
// to Kind are set.
type wire struct {
	Kind         string        `yaml:"kind"`
	Name         string        `yaml:"name,omitempty"`
	Scalar       string        `yaml:"scalar,omitempty"`
	Form         string        `yaml:"form,omitempty"`
	Lifetime     string        `yaml:"lifetime,omitempty"`
	Mutable      bool          `yaml:"mutable,omitempty"`
	Len          *int          `yaml:"len,omitempty"`
	Fields       []wireField   `yaml:"fields,omitempty"`
	Items        []*wire       `yaml:"items,omitempty"`
	Variants     []wireVariant `yaml:"variants,omitempty"`
	Key          *wire         `yaml:"key,omitempty"`
	Elem         *wire         `yaml:"elem,omitempty"`
	Target       *wire         `yaml:"target,omitempty"`
	Capabilities []string      `yaml:"capabilities,omitempty"`
}

type wireField struct {
	Name string `yaml:"name"`
	Type *wire  `yaml:"type"`
}

type wireVariant struct {
	Name   string      `yaml:"name"`
	Shape  string      `yaml:"shape"`
	Fields []wireField `yaml:"fields,omitempty"`
	Items  []*wire     `yaml:"items,omitempty"`
}

func toWire(d info.Descriptor) (*wire, error) {
	if d == nil {
		return nil, info.ErrNilDescriptor
	}
	w := &wire{Kind: d.Kind().String()}
	var err error
	switch x := d.(type) {
	case info.Never, info.Unit:
	case info.Scalar:
		if !x.Type.Valid() {
			return nil, fmt.Errorf("%w: %d", info.ErrUnknownScalar, uint8(x.Type))
		}
		w.Scalar = x.Type.String()
	case info.Struct:
		w.Name = x.Name
		w.Fields, err = toWireFields(x.Fields)
	case info.Tuple:
		w.Items, err = toWireSeq(x.Fields)
	case info.Enum:
		w.Name = x.Name
		for _, name := range x.VariantNames() {
			v, verr := toWireVariant(name, x.Variants[name])
			if verr != nil {
				return nil, fmt.Errorf("variant %s: %w", name, verr)
			}
			w.Variants = append(w.Variants, v)
		}
	case info.Array:
		n := x.Len
		w.Len = &n
		w.Elem, err = toWire(x.Elem)
	case info.Slice:
		w.Elem, err = toWire(x.Elem)
	case info.Reference:
		w.Lifetime = x.Lifetime
		w.Mutable = x.Mutable
		w.Target, err = toWire(x.Target)
	case info.ConstPointer:
		w.Target, err = toWire(x.Target)
	case info.MutPointer:
		w.Target, err = toWire(x.Target)
	case info.ErasedImpl:
		w.Capabilities = x.Capabilities
	case info.ErasedDyn:
		w.Capabilities = x.Capabilities
	case info.Recursive:
		w.Name = x.Name
	default:
		ok, xerr := extensionToWire(d, w)
		if xerr != nil {
			return nil, xerr
		}
		if !ok {
			return nil, fmt.Errorf("%w: kind %s", ErrMalformed, d.Kind())
		}
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", w.Kind, err)
	}
	return w, nil
}

func toWireFields(fields map[string]info.Descriptor) ([]wireField, error) {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]wireField, 0, len(names))
	for _, name := range names {
		t, err := toWire(fields[name])
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", name, err)
		}
		out = append(out, wireField{Name: name, Type: t})
	}
	return out, nil
}

func toWireSeq(seq []info.Descriptor) ([]*wire, error) {
	out := make([]*wire, 0, len(seq))
	for i, d := range seq {
		w, err := toWire(d)
		if err != nil {
			return nil, fmt.Errorf("slot %d: %w", i, err)
		}
		out = append(out, w)
	}
	return out, nil
}

func toWireVariant(name string, v info.EnumVariant) (wireVariant, error) {
	if v == nil {
		return wireVariant{}, info.ErrNilVariant
	}
	out := wireVariant{Name: name, Shape: v.VariantKind().String()}
	var err error
	switch x := v.(type) {
	case info.UnnamedVariant:
		out.Items, err = toWireSeq(x.Fields)
	case info.NamedVariant:
		out.Fields, err = toWireFields(x.Fields)
	}
	return out, err
}

func (w *wire) build() (info.Descriptor, error) {
	if w == nil {
		return nil, fmt.Errorf("%w: missing node", ErrMalformed)
	}
	kind, ok := info.ParseKind(w.Kind)
	if !ok {
		return nil, fmt.Errorf("%w: unknown kind %q", ErrMalformed, w.Kind)
	}
	d, err := w.buildKind(kind)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", w.Kind, err)
	}
	return d, nil
}

func (w *wire) buildKind(kind info.Kind) (info.Descriptor, error) {
	switch kind {
	case info.KindNever:
		return info.Never{}, nil
	case info.KindUnit:
		return info.Unit{}, nil
	case info.KindScalar:
		k, err := info.ParseScalarKind(w.Scalar)
		if err != nil {
			return nil, err
		}
		return info.ScalarOf(k), nil
	case info.KindStruct:
		fields, err := buildFields(w.Fields)
		if err != nil {
			return nil, err
		}
		return info.NewStruct(w.Name, fields...)
	case info.KindTuple:
		seq, err := buildSeq(w.Items)
		if err != nil {
			return nil, err
		}
		return info.NewTuple(seq...)
	case info.KindEnum:
		variants := make([]info.Variant, 0, len(w.Variants))
		for _, wv := range w.Variants {
			shape, err := wv.build()
			if err != nil {
				return nil, fmt.Errorf("variant %s: %w", wv.Name, err)
			}
			variants = append(variants, info.Variant{Name: wv.Name, Shape: shape})
		}
		return info.NewEnum(w.Name, variants...)
	case info.KindArray:
		if w.Len == nil {
			return nil, fmt.Errorf("%w: missing len", ErrMalformed)
		}
		elem, err := w.Elem.build()
		if err != nil {
			return nil, err
		}
		return info.NewArray(elem, *w.Len)
	case info.KindSlice:
		elem, err := w.Elem.build()
		if err != nil {
			return nil, err
		}
		return info.Slice{Elem: elem}, nil
	case info.KindReference:
		target, err := w.Target.build()
		if err != nil {
			return nil, err
		}
		return info.Reference{Lifetime: w.Lifetime, Target: target, Mutable: w.Mutable}, nil
	case info.KindConstPointer:
		target, err := w.Target.build()
		if err != nil {
			return nil, err
		}
		return info.ConstPointer{Target: target}, nil
	case info.KindMutPointer:
		target, err := w.Target.build()
		if err != nil {
			return nil, err
		}
		return info.MutPointer{Target: target}, nil
	case info.KindErasedImpl:
		return info.NewErasedImpl(w.Capabilities...)
	case info.KindErasedDyn:
		return info.NewErasedDyn(w.Capabilities...)
	case info.KindRecursive:
		if w.Name == "" {
			return nil, info.ErrEmptyName
		}
		return info.Recursive{Name: w.Name}, nil
	}
	return w.buildExtension(kind)
}

func buildFields(in []wireField) ([]info.Field, error) {
	out := make([]info.Field, 0, len(in))
	for _, f := range in {
		t, err := f.Type.build()
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}
		out = append(out, info.Field{Name: f.Name, Type: t})
	}
	return out, nil
}

func buildSeq(in []*wire) ([]info.Descriptor, error) {
	out := make([]info.Descriptor, 0, len(in))
	for i, w := range in {
		d, err := w.build()
		if err != nil {
			return nil, fmt.Errorf("slot %d: %w", i, err)
		}
		out = append(out, d)
	}
	return out, nil
}

func (wv wireVariant) build() (info.EnumVariant, error) {
	switch wv.Shape {
	case info.VariantUnit.String():
		return info.UnitVariant{}, nil
	case info.VariantUnnamed.String():
		seq, err := buildSeq(wv.Items)
		if err != nil {
			return nil, err
		}
		return info.NewUnnamedVariant(seq...)
	case info.VariantNamed.String():
		fields, err := buildFields(wv.Fields)
		if err != nil {
			return nil, err
		}
		return info.NewNamedVariant(fields...)
	}
	return nil, fmt.Errorf("%w: unknown variant shape %q", ErrMalformed, wv.Shape)
}
