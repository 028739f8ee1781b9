package info

import (
	"errors"
	"testing"
)

func point() Struct {
	return MustStruct("Point",
		Field{Name: "x", Type: ScalarOf(I32)},
		Field{Name: "y", Type: ScalarOf(Bool)},
	)
}

// TestStructEqualityIgnoresDeclarationOrder tests unordered-key equality
func TestStructEqualityIgnoresDeclarationOrder(t *testing.T) {
	a := point()
	b := MustStruct("Point",
		Field{Name: "y", Type: ScalarOf(Bool)},
		Field{Name: "x", Type: ScalarOf(I32)},
	)
	if !Equal(a, b) {
		t.Errorf("expected %s == %s", a, b)
	}
	if Key(a) != Key(b) {
		t.Errorf("canonical keys differ:\n  a=%s\n  b=%s", Key(a), Key(b))
	}

	renamed := MustStruct("Pt", Field{Name: "x", Type: ScalarOf(I32)}, Field{Name: "y", Type: ScalarOf(Bool)})
	if Equal(a, renamed) {
		t.Error("structs with different names should differ")
	}

	retyped := MustStruct("Point", Field{Name: "x", Type: ScalarOf(I64)}, Field{Name: "y", Type: ScalarOf(Bool)})
	if Equal(a, retyped) {
		t.Error("structs with different field types should differ")
	}
}

func TestTupleOrderIsSignificant(t *testing.T) {
	ab := MustTuple(ScalarOf(I32), ScalarOf(Bool))
	ba := MustTuple(ScalarOf(Bool), ScalarOf(I32))
	if Equal(ab, ba) {
		t.Error("tuples with swapped slots should differ")
	}
	if !Equal(ab, MustTuple(ScalarOf(I32), ScalarOf(Bool))) {
		t.Error("identical tuples should be equal")
	}
	if Equal(MustTuple(ScalarOf(I32)), MustTuple(ScalarOf(I32), ScalarOf(I32))) {
		t.Error("tuples of different arity should differ")
	}
}

// TestDuplicateNamesRejected covers every constructor that takes names
func TestDuplicateNamesRejected(t *testing.T) {
	_, err := NewStruct("S", Field{Name: "a", Type: Unit{}}, Field{Name: "a", Type: Never{}})
	if !errors.Is(err, ErrDuplicateName) {
		t.Errorf("NewStruct: expected ErrDuplicateName, got %v", err)
	}

	_, err = NewEnum("E", Variant{Name: "A", Shape: UnitVariant{}}, Variant{Name: "A", Shape: UnitVariant{}})
	if !errors.Is(err, ErrDuplicateName) {
		t.Errorf("NewEnum: expected ErrDuplicateName, got %v", err)
	}

	_, err = NewNamedVariant(Field{Name: "f", Type: Unit{}}, Field{Name: "f", Type: Unit{}})
	if !errors.Is(err, ErrDuplicateName) {
		t.Errorf("NewNamedVariant: expected ErrDuplicateName, got %v", err)
	}

	_, err = NewErasedDyn("io.Reader", "io.Reader")
	if !errors.Is(err, ErrDuplicateName) {
		t.Errorf("NewErasedDyn: expected ErrDuplicateName, got %v", err)
	}

	defer func() {
		r := recover()
		if err, ok := r.(error); !ok || !errors.Is(err, ErrDuplicateName) {
			t.Errorf("MustStruct: expected panic with ErrDuplicateName, got %v", r)
		}
	}()
	MustStruct("S", Field{Name: "a", Type: Unit{}}, Field{Name: "a", Type: Unit{}})
}

func TestConstructionErrors(t *testing.T) {
	if _, err := NewArray(ScalarOf(U8), -1); !errors.Is(err, ErrNegativeLength) {
		t.Errorf("expected ErrNegativeLength, got %v", err)
	}
	if _, err := NewArray(nil, 1); !errors.Is(err, ErrNilDescriptor) {
		t.Errorf("expected ErrNilDescriptor, got %v", err)
	}
	if _, err := NewTuple(Unit{}, nil); !errors.Is(err, ErrNilDescriptor) {
		t.Errorf("expected ErrNilDescriptor, got %v", err)
	}
	if _, err := NewStruct("S", Field{Name: "", Type: Unit{}}); !errors.Is(err, ErrEmptyName) {
		t.Errorf("expected ErrEmptyName, got %v", err)
	}
	if _, err := NewEnum("E", Variant{Name: "A"}); !errors.Is(err, ErrNilVariant) {
		t.Errorf("expected ErrNilVariant, got %v", err)
	}

	arr, err := NewArray(ScalarOf(U8), 0)
	if err != nil {
		t.Fatalf("zero-length array: %v", err)
	}
	if arr.Len != 0 {
		t.Errorf("Len = %d, want 0", arr.Len)
	}
}

func TestConstructorsCopyInputs(t *testing.T) {
	fields := []Descriptor{ScalarOf(I8), ScalarOf(I16)}
	tup := MustTuple(fields...)
	fields[0] = Never{}
	if !Equal(tup.Fields[0], ScalarOf(I8)) {
		t.Error("NewTuple must copy its input slice")
	}

	caps := []string{"fmt.Stringer"}
	dyn, err := NewErasedDyn(caps...)
	if err != nil {
		t.Fatal(err)
	}
	caps[0] = "error"
	if dyn.Capabilities[0] != "fmt.Stringer" {
		t.Error("NewErasedDyn must copy its capabilities")
	}
}

func shape() Enum {
	return MustEnum("Shape",
		Variant{Name: "Empty", Shape: UnitVariant{}},
		Variant{Name: "Circle", Shape: UnnamedVariant{Fields: []Descriptor{ScalarOf(F64)}}},
		Variant{Name: "Rect", Shape: NamedVariant{Fields: map[string]Descriptor{
			"w": ScalarOf(F64),
			"h": ScalarOf(F64),
		}}},
	)
}

func TestEnumEquality(t *testing.T) {
	if !Equal(shape(), shape()) {
		t.Error("identical enums should be equal")
	}

	other := MustEnum("Shape",
		Variant{Name: "Empty", Shape: UnitVariant{}},
		Variant{Name: "Circle", Shape: UnnamedVariant{Fields: []Descriptor{ScalarOf(F32)}}},
		Variant{Name: "Rect", Shape: NamedVariant{Fields: map[string]Descriptor{
			"w": ScalarOf(F64),
			"h": ScalarOf(F64),
		}}},
	)
	if Equal(shape(), other) {
		t.Error("enums with different variant payloads should differ")
	}

	if EqualVariant(UnitVariant{}, UnnamedVariant{}) {
		t.Error("unit and empty unnamed variants should differ")
	}
}

func TestPointerEquality(t *testing.T) {
	target := point()
	tests := []struct {
		name string
		a, b Descriptor
		want bool
	}{
		{"same reference", Reference{Target: target}, Reference{Target: target}, true},
		{"mutability differs", Reference{Target: target}, Reference{Target: target, Mutable: true}, false},
		{"lifetime differs", Reference{Lifetime: "a", Target: target}, Reference{Target: target}, false},
		{"const vs mut", ConstPointer{Target: target}, MutPointer{Target: target}, false},
		{"mut pointer", MutPointer{Target: target}, MutPointer{Target: point()}, true},
		{"pointer is not collapsed", MutPointer{Target: target}, target, false},
		{"nested pointer", MutPointer{Target: MutPointer{Target: Unit{}}}, MutPointer{Target: Unit{}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestErasedEquality(t *testing.T) {
	a := ErasedDyn{Capabilities: []string{"io.Reader", "io.Writer"}}
	b := ErasedDyn{Capabilities: []string{"io.Writer", "io.Reader"}}
	if Equal(a, b) {
		t.Error("capability order is significant")
	}
	if Equal(a, ErasedImpl{Capabilities: a.Capabilities}) {
		t.Error("impl and dyn should differ")
	}
	if !Equal(ErasedDyn{}, ErasedDyn{Capabilities: []string{}}) {
		t.Error("nil and empty capability sets should be equal")
	}
}

// TestFingerprintConsistentWithEqual tests that equal descriptors hash alike
func TestFingerprintConsistentWithEqual(t *testing.T) {
	descs := []Descriptor{
		Never{},
		Unit{},
		ScalarOf(I32),
		ScalarOf(U32),
		point(),
		shape(),
		MustTuple(ScalarOf(I32), ScalarOf(Bool)),
		MustTuple(ScalarOf(Bool), ScalarOf(I32)),
		Array{Elem: ScalarOf(U8), Len: 4},
		Array{Elem: ScalarOf(U8), Len: 5},
		Slice{Elem: ScalarOf(U8)},
		Reference{Target: point()},
		Reference{Target: point(), Mutable: true},
		ConstPointer{Target: Unit{}},
		MutPointer{Target: Unit{}},
		ErasedImpl{Capabilities: []string{"fmt.Stringer"}},
		ErasedDyn{Capabilities: []string{"fmt.Stringer"}},
		Recursive{Name: "Node"},
	}

	seen := make(map[string]int)
	for i, d := range descs {
		fp := Fingerprint(d)
		if prev, ok := seen[fp]; ok {
			t.Errorf("fingerprint collision between %s and %s", descs[prev], d)
		}
		seen[fp] = i

		for j, e := range descs {
			if Equal(d, e) != (i == j) {
				t.Errorf("Equal(%s, %s) = %v", d, e, Equal(d, e))
			}
		}

		if Hash(d) != Hash(d) {
			t.Errorf("Hash(%s) is not deterministic", d)
		}
	}

	if Fingerprint(point()) != Fingerprint(point()) {
		t.Error("fingerprint should be deterministic")
	}
}

func TestChildrenAndWalk(t *testing.T) {
	nested := MustStruct("Outer",
		Field{Name: "b", Type: Slice{Elem: point()}},
		Field{Name: "a", Type: MutPointer{Target: ScalarOf(U8)}},
	)

	children := Children(nested)
	if len(children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(children))
	}
	if _, ok := children[0].(MutPointer); !ok {
		t.Errorf("children should be ordered by field name, got %s first", children[0])
	}

	var kinds []Kind
	Walk(nested, func(d Descriptor, depth int) bool {
		kinds = append(kinds, d.Kind())
		return true
	})
	// Outer, a: *mut u8, u8, b: [Point], Point, x, y
	if len(kinds) != 7 {
		t.Errorf("walk visited %d descriptors: %v", len(kinds), kinds)
	}

	if got := Depth(nested); got != 4 {
		t.Errorf("Depth = %d, want 4", got)
	}

	skipped := 0
	Walk(nested, func(d Descriptor, depth int) bool {
		skipped++
		return d.Kind() != KindSlice
	})
	if skipped != 4 {
		t.Errorf("walk with pruning visited %d descriptors, want 4", skipped)
	}
}

func TestKindNames(t *testing.T) {
	for k := KindNever; k <= KindRecursive; k++ {
		got, ok := ParseKind(k.String())
		if !ok || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, ok)
		}
	}
	if _, ok := ParseKind("nope"); ok {
		t.Error("ParseKind should reject unknown names")
	}
}

func TestStringSummaries(t *testing.T) {
	tests := []struct {
		d    Descriptor
		want string
	}{
		{point(), "Point{x: i32, y: bool}"},
		{MustTuple(ScalarOf(I32)), "(i32,)"},
		{Array{Elem: ScalarOf(U8), Len: 3}, "[u8; 3]"},
		{Reference{Lifetime: "a", Target: ScalarOf(Char), Mutable: true}, "&'a mut char"},
		{ErasedDyn{}, "dyn any"},
	}
	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
