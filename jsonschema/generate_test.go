package jsonschema

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/speakeasy-api/openapi/jsonschema/oas3"

	"github.com/Peperworx/introspectable/info"
)

func getType(s *oas3.Schema) string {
	if s == nil {
		return ""
	}
	types := s.GetType()
	if len(types) != 1 {
		return ""
	}
	return string(types[0])
}

func mustGenerate(t *testing.T, d info.Descriptor, opts ...Options) *oas3.Schema {
	t.Helper()
	s, err := Generate(d, opts...)
	if err != nil {
		t.Fatalf("Generate(%s): %v", d, err)
	}
	return s
}

func TestGenerateScalars(t *testing.T) {
	tests := []struct {
		kind   info.ScalarKind
		typ    string
		format string
	}{
		{info.Bool, "boolean", ""},
		{info.I8, "integer", "int8"},
		{info.I64, "integer", "int64"},
		{info.U16, "integer", "uint16"},
		{info.U128, "integer", "uint128"},
		{info.F32, "number", "float"},
		{info.F64, "number", "double"},
		{info.Char, "string", "char"},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			s := mustGenerate(t, info.ScalarOf(tt.kind))
			if got := getType(s); got != tt.typ {
				t.Errorf("type = %q, want %q", got, tt.typ)
			}
			var format string
			if s.Format != nil {
				format = *s.Format
			}
			if format != tt.format {
				t.Errorf("format = %q, want %q", format, tt.format)
			}
		})
	}
}

func TestGenerateIntegerBounds(t *testing.T) {
	s := mustGenerate(t, info.ScalarOf(info.I8))
	if s.Minimum == nil || *s.Minimum != -128 || s.Maximum == nil || *s.Maximum != 127 {
		t.Errorf("i8 bounds = %v..%v", s.Minimum, s.Maximum)
	}

	s = mustGenerate(t, info.ScalarOf(info.U32))
	if s.Minimum == nil || *s.Minimum != 0 || s.Maximum == nil || *s.Maximum != 4294967295 {
		t.Errorf("u32 bounds = %v..%v", s.Minimum, s.Maximum)
	}

	s = mustGenerate(t, info.ScalarOf(info.U64))
	if s.Minimum == nil || *s.Minimum != 0 || s.Maximum != nil {
		t.Errorf("u64 should only have a lower bound")
	}

	s = mustGenerate(t, info.ScalarOf(info.I64))
	if s.Minimum != nil || s.Maximum != nil {
		t.Errorf("i64 should be unbounded")
	}

	s = mustGenerate(t, info.ScalarOf(info.I8), Options{})
	if s.Minimum != nil || s.Format != nil {
		t.Errorf("zero options should omit bounds and formats")
	}
}

func TestGenerateStruct(t *testing.T) {
	d := info.MustStruct("point",
		info.Field{Name: "y", Type: info.ScalarOf(info.F64)},
		info.Field{Name: "x", Type: info.ScalarOf(info.F64)},
		info.Field{Name: "tag", Type: info.Unit{}},
	)
	s := mustGenerate(t, d)
	if getType(s) != "object" {
		t.Fatalf("type = %q", getType(s))
	}

	var keys []string
	for k := range s.Properties.All() {
		keys = append(keys, k)
	}
	if diff := cmp.Diff([]string{"tag", "x", "y"}, keys); diff != "" {
		t.Errorf("property order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"tag", "x", "y"}, s.Required); diff != "" {
		t.Errorf("required mismatch (-want +got):\n%s", diff)
	}

	tag, ok := s.Properties.Get("tag")
	if !ok || getType(tag.Left) != "null" {
		t.Error("unit field should be null")
	}

	// Objects are closed.
	if s.AdditionalProperties == nil || s.AdditionalProperties.Left == nil || s.AdditionalProperties.Left.Not == nil {
		t.Error("struct objects should reject additional properties")
	}
}

func TestGenerateSequences(t *testing.T) {
	u8 := info.ScalarOf(info.U8)

	t.Run("tuple", func(t *testing.T) {
		s := mustGenerate(t, info.MustTuple(u8, info.ScalarOf(info.Bool)))
		if len(s.PrefixItems) != 2 {
			t.Fatalf("prefixItems = %d", len(s.PrefixItems))
		}
		if getType(s.PrefixItems[1].Left) != "boolean" {
			t.Error("second slot should be boolean")
		}
		if *s.MinItems != 2 || *s.MaxItems != 2 {
			t.Errorf("items bounds = %d..%d", *s.MinItems, *s.MaxItems)
		}
	})

	t.Run("array", func(t *testing.T) {
		s := mustGenerate(t, info.Array{Elem: u8, Len: 4})
		if getType(s) != "array" || getType(s.Items.Left) != "integer" {
			t.Fatal("array of integers expected")
		}
		if *s.MinItems != 4 || *s.MaxItems != 4 {
			t.Errorf("items bounds = %d..%d", *s.MinItems, *s.MaxItems)
		}
	})

	t.Run("slice", func(t *testing.T) {
		s := mustGenerate(t, info.Slice{Elem: u8})
		if getType(s) != "array" || s.MinItems != nil || s.MaxItems != nil {
			t.Error("slice should be an unbounded array")
		}
	})
}

func TestGenerateEnum(t *testing.T) {
	d := info.MustEnum("shape",
		info.Variant{Name: "Empty", Shape: info.UnitVariant{}},
		info.Variant{Name: "Circle", Shape: info.UnnamedVariant{Fields: []info.Descriptor{info.ScalarOf(info.F32)}}},
		info.Variant{Name: "Rect", Shape: info.NamedVariant{Fields: map[string]info.Descriptor{
			"w": info.ScalarOf(info.F32),
			"h": info.ScalarOf(info.F32),
		}}},
		info.Variant{Name: "Line", Shape: info.UnnamedVariant{Fields: []info.Descriptor{
			info.ScalarOf(info.F32), info.ScalarOf(info.F32),
		}}},
	)
	s := mustGenerate(t, d)
	if len(s.OneOf) != 4 {
		t.Fatalf("oneOf = %d branches", len(s.OneOf))
	}

	// Branches follow sorted variant names: Circle, Empty, Line, Rect.
	circle := s.OneOf[0].Left
	payload, ok := circle.Properties.Get("Circle")
	if !ok || getType(payload.Left) != "number" {
		t.Error("single-field variant should wrap its field directly")
	}

	empty := s.OneOf[1].Left
	if len(empty.Enum) != 1 || empty.Enum[0].Value != "Empty" {
		t.Error("unit variant should be its bare name")
	}

	line, _ := s.OneOf[2].Left.Properties.Get("Line")
	if len(line.Left.PrefixItems) != 2 {
		t.Error("multi-field variant should be a tuple")
	}

	rect, _ := s.OneOf[3].Left.Properties.Get("Rect")
	if diff := cmp.Diff([]string{"h", "w"}, rect.Left.Required); diff != "" {
		t.Errorf("named variant required mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateOpaque(t *testing.T) {
	tests := []struct {
		name string
		d    info.Descriptor
	}{
		{"impl", info.ErasedImpl{Capabilities: []string{"Display"}}},
		{"dyn", info.ErasedDyn{}},
		{"recursive", info.Recursive{Name: "node"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustGenerate(t, tt.d)
			if len(s.GetType()) != 0 || s.Not != nil {
				t.Error("expected the unconstrained schema")
			}
		})
	}

	s := mustGenerate(t, info.Never{})
	if s.Not == nil {
		t.Error("never should negate the unconstrained schema")
	}
	s = mustGenerate(t, info.MustEnum("void"))
	if s.Not == nil {
		t.Error("empty enum should match nothing")
	}
}

func TestGeneratePointers(t *testing.T) {
	target := info.ScalarOf(info.U64)
	for _, d := range []info.Descriptor{
		info.Reference{Lifetime: "static", Target: target},
		info.ConstPointer{Target: target},
		info.MutPointer{Target: target},
	} {
		s := mustGenerate(t, d)
		if getType(s) != "integer" {
			t.Errorf("%s: type = %q", d, getType(s))
		}
	}
}

func TestGenerateErrors(t *testing.T) {
	_, err := Generate(nil)
	if !errors.Is(err, info.ErrNilDescriptor) {
		t.Errorf("nil descriptor: got %v", err)
	}

	d := info.Struct{Name: "broken", Fields: map[string]info.Descriptor{
		"items": info.Slice{Elem: info.ScalarOf(info.ScalarKind(200))},
	}}
	_, err = Generate(d)
	if !errors.Is(err, ErrUnsupported) || !errors.Is(err, info.ErrUnknownScalar) {
		t.Fatalf("unknown scalar: got %v", err)
	}
	if !strings.Contains(err.Error(), "at items.[]") {
		t.Errorf("error should carry the path: %v", err)
	}
}
