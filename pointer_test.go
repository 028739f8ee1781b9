package introspectable

import (
	"testing"

	"github.com/Peperworx/introspectable/info"
)

type frame struct{}

func (frame) LifetimeName() string { return "frame" }

func TestIndirections(t *testing.T) {
	i32 := scalar(info.I32)
	tests := []struct {
		name string
		got  info.Descriptor
		want info.Descriptor
	}{
		{"ref", MustDescribe[Ref[int32]](), info.Reference{Target: i32}},
		{"mut ref", MustDescribe[MutRef[int32]](), info.Reference{Target: i32, Mutable: true}},
		{"static ref", MustDescribe[RefIn[Static, int32]](), info.Reference{Lifetime: "static", Target: i32}},
		{"named mut ref", MustDescribe[MutRefIn[frame, int32]](), info.Reference{Lifetime: "frame", Target: i32, Mutable: true}},
		{"const ptr", MustDescribe[ConstPtr[int32]](), info.ConstPointer{Target: i32}},
		{"mut ptr", MustDescribe[MutPtr[int32]](), info.MutPointer{Target: i32}},
		{"native pointer", MustDescribe[*int32](), info.MutPointer{Target: i32}},
		{"ref via Of", Of[Ref[point]](), info.Reference{Target: pointDescriptor()}},
		{"ref to ref", MustDescribe[Ref[Ref[int32]]](), info.Reference{Target: info.Reference{Target: i32}}},
		{"pointer to tuple", MustDescribe[*Tuple1[int32]](), info.MutPointer{Target: info.MustTuple(i32)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertDescriptor(t, tt.want, tt.got)
		})
	}

	if info.Equal(MustDescribe[Ref[int32]](), MustDescribe[ConstPtr[int32]]()) {
		t.Error("references and raw pointers should differ")
	}
}

func TestIndirectionAccessors(t *testing.T) {
	v := int32(7)

	if got := NewRef(&v).Get(); got != 7 {
		t.Errorf("Ref.Get = %d", got)
	}
	m := NewMutRef(&v)
	m.Set(9)
	if v != 9 {
		t.Errorf("MutRef.Set did not write through, v = %d", v)
	}
	if got := NewRefIn[Static](&v).Get(); got != 9 {
		t.Errorf("RefIn.Get = %d", got)
	}
	if NewConstPtr[int32](nil).IsNil() != true || NewConstPtr(&v).Load() != 9 {
		t.Error("ConstPtr accessors")
	}
	if NewMutPtr(&v).Ptr() != &v {
		t.Error("MutPtr.Ptr should return the wrapped pointer")
	}
}

func TestWideIntegers(t *testing.T) {
	if got := Int128From64(-5).String(); got != "-5" {
		t.Errorf("Int128From64(-5) = %s", got)
	}
	if got := (Uint128{Hi: 1}).String(); got != "18446744073709551616" {
		t.Errorf("Uint128{Hi: 1} = %s", got)
	}
	if got := Uint128From64(42).String(); got != "42" {
		t.Errorf("Uint128From64(42) = %s", got)
	}
}
