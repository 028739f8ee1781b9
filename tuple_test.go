package introspectable

import (
	"reflect"
	"testing"

	"github.com/Peperworx/introspectable/info"
)

func TestTuples(t *testing.T) {
	pair := info.MustTuple(scalar(info.I32), scalar(info.Bool))

	assertDescriptor(t, pair, Of[Tuple2[int32, bool]]())
	assertDescriptor(t, pair, MustDescribe[Tuple2[int32, bool]]())
	assertDescriptor(t, info.MustTuple(scalar(info.Bool), scalar(info.I32)), MustDescribe[Tuple2[bool, int32]]())
	assertDescriptor(t, info.MustTuple(scalar(info.I32)), MustDescribe[Tuple1[int32]]())
	assertDescriptor(t, info.Unit{}, MustDescribe[Unit]())

	if got := MustDescribe[Tuple1[int32]]().String(); got != "(i32,)" {
		t.Errorf("String() = %q", got)
	}

	nested := MustDescribe[Tuple2[Tuple1[uint8], []Tuple2[int8, int8]]]()
	want := info.MustTuple(
		info.MustTuple(scalar(info.U8)),
		info.Slice{Elem: info.MustTuple(scalar(info.I8), scalar(info.I8))},
	)
	assertDescriptor(t, want, nested)

	if info.Equal(MustDescribe[Tuple2[int32, bool]](), MustDescribe[struct {
		V0 int32
		V1 bool
	}]()) {
		t.Error("a tuple is not a struct with positional names")
	}
}

func TestMaxArityTuple(t *testing.T) {
	type wide = Tuple16[int8, int16, int32, int64, uint8, uint16, uint32, uint64,
		float32, float64, bool, Char, Int128, Uint128, Unit, NeverType]

	got, ok := MustDescribe[wide]().(info.Tuple)
	if !ok {
		t.Fatalf("expected a tuple, got %T", got)
	}
	if len(got.Fields) != MaxTupleArity {
		t.Fatalf("arity = %d, want %d", len(got.Fields), MaxTupleArity)
	}
	want := []info.Descriptor{
		scalar(info.I8), scalar(info.I16), scalar(info.I32), scalar(info.I64),
		scalar(info.U8), scalar(info.U16), scalar(info.U32), scalar(info.U64),
		scalar(info.F32), scalar(info.F64), scalar(info.Bool), scalar(info.Char),
		scalar(info.I128), scalar(info.U128), info.Unit{}, info.Never{},
	}
	for i := range want {
		if !info.Equal(want[i], got.Fields[i]) {
			t.Errorf("slot %d = %s, want %s", i, got.Fields[i], want[i])
		}
	}

	if n := reflect.TypeFor[wide]().NumField(); n != MaxTupleArity {
		t.Errorf("Tuple16 has %d fields", n)
	}
}

func TestTupleConstructors(t *testing.T) {
	p := NewTuple3(int8(1), "two", 3.0)
	if p.V0 != 1 || p.V1 != "two" || p.V2 != 3.0 {
		t.Errorf("NewTuple3 = %+v", p)
	}
	args := p.TypeArgs()
	if len(args) != 3 || args[1] != reflect.TypeFor[string]() {
		t.Errorf("TypeArgs = %v", args)
	}
}
