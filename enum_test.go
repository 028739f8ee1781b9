package introspectable

import (
	"errors"
	"testing"

	"github.com/Peperworx/introspectable/info"
)

type rect struct {
	W, H float64
}

type figure struct{}

func (figure) Introspect() info.Descriptor {
	return EnumOf("Shape",
		UnitCase("Empty"),
		TupleCase[float64]("Circle"),
		TupleCase[Tuple2[float64, float64]]("Segment"),
		TupleCase[Unit]("Nothing"),
		FieldsCase[rect]("Rect"),
	)
}

// expr refers to itself, so the recursive slot uses Self.
type expr struct{}

func (expr) Introspect() info.Descriptor {
	return EnumOf("Expr",
		TupleCase[int64]("Lit"),
		TupleCaseOf("Neg", info.MutPointer{Target: Self("Expr")}),
		FieldsCaseOf("Add",
			info.Field{Name: "lhs", Type: info.MutPointer{Target: Self("Expr")}},
			info.Field{Name: "rhs", Type: info.MutPointer{Target: Self("Expr")}},
		),
	)
}

type account struct{}

func (account) Introspect() info.Descriptor {
	return StructOf("Account",
		Field[uint64]("id"),
		Field[[]Char]("handle"),
		Field[Ref[figure]]("shape"),
	)
}

func TestEnumHelpers(t *testing.T) {
	f64 := scalar(info.F64)
	want := info.MustEnum("Shape",
		info.Variant{Name: "Empty", Shape: info.UnitVariant{}},
		info.Variant{Name: "Circle", Shape: info.UnnamedVariant{Fields: []info.Descriptor{f64}}},
		info.Variant{Name: "Segment", Shape: info.UnnamedVariant{Fields: []info.Descriptor{f64, f64}}},
		info.Variant{Name: "Nothing", Shape: info.UnnamedVariant{}},
		info.Variant{Name: "Rect", Shape: info.NamedVariant{Fields: map[string]info.Descriptor{"W": f64, "H": f64}}},
	)
	assertDescriptor(t, want, Of[figure]())
	assertDescriptor(t, want, MustDescribe[figure]())

	if info.EqualVariant(want.Variants["Nothing"], info.UnitVariant{}) {
		t.Error("an empty tuple variant is not a unit variant")
	}
}

func TestSelfReference(t *testing.T) {
	got := Of[expr]()
	e, ok := got.(info.Enum)
	if !ok {
		t.Fatalf("expected an enum, got %s", got)
	}
	neg := e.Variants["Neg"].(info.UnnamedVariant)
	assertDescriptor(t, info.MutPointer{Target: info.Recursive{Name: "Expr"}}, neg.Fields[0])

	// Describing a struct that embeds the enum still terminates.
	type program struct {
		Body []expr
	}
	assertDescriptor(t,
		info.MustStruct("program", info.Field{Name: "Body", Type: info.Slice{Elem: got}}),
		MustDescribe[program](),
	)
}

func TestStructHelpers(t *testing.T) {
	want := info.MustStruct("Account",
		info.Field{Name: "id", Type: scalar(info.U64)},
		info.Field{Name: "handle", Type: info.Slice{Elem: scalar(info.Char)}},
		info.Field{Name: "shape", Type: info.Reference{Target: Of[figure]()}},
	)
	assertDescriptor(t, want, Of[account]())
}

func TestHelperPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
		want error
	}{
		{"duplicate field", func() { StructOf("S", Field[int8]("a"), Field[int16]("a")) }, info.ErrDuplicateName},
		{"duplicate case", func() { EnumOf("E", UnitCase("A"), UnitCase("A")) }, info.ErrDuplicateName},
		{"fields from non-struct", func() { FieldsCase[int8]("A") }, info.ErrUnexpectedDescriptor},
		{"nil tuple slot", func() { TupleCaseOf("A", nil) }, info.ErrNilDescriptor},
		{"duplicate variant field", func() { FieldsCaseOf("A", Field[int8]("x"), Field[int8]("x")) }, info.ErrDuplicateName},
		{"undescribable field", func() { Field[chan int]("c") }, ErrNotDescribable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				err, ok := r.(error)
				if !ok || !errors.Is(err, tt.want) {
					t.Errorf("expected panic with %v, got %v", tt.want, r)
				}
			}()
			tt.fn()
		})
	}
}
