// Package jsonschema converts descriptors into JSON Schema documents.
//
// Structs become closed objects with every field required, tuples become
// positional arrays, and enums become a oneOf over externally tagged
// variants: a unit variant is the bare variant name, any other variant is a
// single-key object mapping the name to its payload. Pointers describe their
// target. Erased and recursive descriptors carry no structure and map to the
// unconstrained schema.
package jsonschema

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/speakeasy-api/openapi/jsonschema/oas3"

	"github.com/Peperworx/introspectable/info"
)

// ErrUnsupported is returned for descriptors with no schema mapping.
var ErrUnsupported = errors.New("jsonschema: unsupported descriptor")

// Options configures Generate.
type Options struct {
	// Formats adds a format annotation naming the scalar kind ("int32",
	// "uint8", "float", "double", "char").
	Formats bool

	// IntegerBounds adds minimum and maximum for integer kinds narrower than
	// 64 bits, and minimum 0 for every unsigned kind.
	IntegerBounds bool
}

// DefaultOptions returns the options used when Generate is called without any.
func DefaultOptions() Options {
	return Options{Formats: true, IntegerBounds: true}
}

// Generate converts d into a JSON Schema.
func Generate(d info.Descriptor, opts ...Options) (*oas3.Schema, error) {
	o := DefaultOptions()
	if len(opts) > 0 {
		o = opts[0]
	}
	g := &generator{opts: o}
	return g.generate(d)
}

type generator struct {
	opts Options
	path []string
}

func (g *generator) generate(d info.Descriptor) (*oas3.Schema, error) {
	switch x := d.(type) {
	case nil:
		return nil, g.fail(info.ErrNilDescriptor)
	case info.Never:
		return Bottom(), nil
	case info.Unit:
		return typed(oas3.SchemaTypeNull), nil
	case info.Scalar:
		return g.scalar(x.Type)
	case info.Struct:
		return g.object(x.Fields)
	case info.Tuple:
		return g.tuple(x.Fields)
	case info.Array:
		items, err := g.nested("[]", x.Elem)
		if err != nil {
			return nil, err
		}
		schema := ArrayType(items)
		n := int64(x.Len)
		schema.MinItems = &n
		schema.MaxItems = &n
		return schema, nil
	case info.Slice:
		items, err := g.nested("[]", x.Elem)
		if err != nil {
			return nil, err
		}
		return ArrayType(items), nil
	case info.Enum:
		return g.enum(x)
	case info.Pointer:
		return g.nested("*", x.Pointee())
	case info.ErasedImpl, info.ErasedDyn, info.Recursive:
		return Top(), nil
	}
	schema, ok, err := g.extension(d)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, g.fail(fmt.Errorf("%w: %s", ErrUnsupported, d.Kind()))
	}
	return schema, nil
}

func (g *generator) nested(segment string, d info.Descriptor) (*oas3.Schema, error) {
	g.path = append(g.path, segment)
	defer func() { g.path = g.path[:len(g.path)-1] }()
	return g.generate(d)
}

func (g *generator) fail(err error) error {
	if len(g.path) == 0 {
		return err
	}
	return fmt.Errorf("at %s: %w", strings.Join(g.path, "."), err)
}

func (g *generator) object(fields map[string]info.Descriptor) (*oas3.Schema, error) {
	props := make(map[string]*oas3.Schema, len(fields))
	required := make([]string, 0, len(fields))
	for name, fd := range fields {
		s, err := g.nested(name, fd)
		if err != nil {
			return nil, err
		}
		props[name] = s
		required = append(required, name)
	}
	return BuildObject(props, required), nil
}

func (g *generator) tuple(fields []info.Descriptor) (*oas3.Schema, error) {
	items := make([]*oas3.Schema, 0, len(fields))
	for i, fd := range fields {
		s, err := g.nested(fmt.Sprint(i), fd)
		if err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return TupleType(items), nil
}

func (g *generator) enum(e info.Enum) (*oas3.Schema, error) {
	names := e.VariantNames()
	branches := make([]*oas3.Schema, 0, len(names))
	for _, name := range names {
		var payload *oas3.Schema
		var err error
		g.path = append(g.path, name)
		switch v := e.Variants[name].(type) {
		case info.UnitVariant:
			branches = append(branches, ConstString(name))
		case info.UnnamedVariant:
			if len(v.Fields) == 1 {
				payload, err = g.generate(v.Fields[0])
			} else {
				payload, err = g.tuple(v.Fields)
			}
		case info.NamedVariant:
			payload, err = g.object(v.Fields)
		default:
			err = g.fail(fmt.Errorf("%w: variant %T", ErrUnsupported, v))
		}
		g.path = g.path[:len(g.path)-1]
		if err != nil {
			return nil, err
		}
		if payload != nil {
			branches = append(branches, BuildObject(map[string]*oas3.Schema{name: payload}, []string{name}))
		}
	}
	if len(branches) == 0 {
		return Bottom(), nil
	}
	return OneOf(branches), nil
}

func (g *generator) scalar(k info.ScalarKind) (*oas3.Schema, error) {
	var schema *oas3.Schema
	var format string
	switch {
	case k == info.Bool:
		return typed(oas3.SchemaTypeBoolean), nil
	case k == info.Char:
		schema, format = typed(oas3.SchemaTypeString), "char"
	case k == info.F32:
		schema, format = typed(oas3.SchemaTypeNumber), "float"
	case k == info.F64:
		schema, format = typed(oas3.SchemaTypeNumber), "double"
	case k.IsInteger():
		schema = typed(oas3.SchemaTypeInteger)
		format = fmt.Sprintf("int%d", k.Width())
		if !k.IsSigned() {
			format = "u" + format
		}
		if g.opts.IntegerBounds {
			setIntegerBounds(schema, k)
		}
	default:
		return nil, g.fail(fmt.Errorf("%w: %w", ErrUnsupported, info.ErrUnknownScalar))
	}
	if g.opts.Formats {
		schema.Format = &format
	}
	return schema, nil
}

func setIntegerBounds(schema *oas3.Schema, k info.ScalarKind) {
	w := k.Width()
	var lo, hi float64
	switch {
	case !k.IsSigned():
		lo = 0
		if w < 64 {
			hi = math.Exp2(float64(w)) - 1
		}
	case w < 64:
		lo = -math.Exp2(float64(w - 1))
		hi = math.Exp2(float64(w-1)) - 1
	default:
		return
	}
	schema.Minimum = &lo
	if w < 64 {
		schema.Maximum = &hi
	}
}
