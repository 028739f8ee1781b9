//go:build !nospecialized

package introspectable

import (
	"container/list"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Peperworx/introspectable/info"
)

func stringDescriptor() info.Descriptor { return info.Text() }

type index map[string][]byte

type dirTree struct {
	Children map[string]dirTree
}

type color string

// TestBuiltinShapes tests that recognized containers take precedence over
// structural decomposition
func TestBuiltinShapes(t *testing.T) {
	tests := []struct {
		name string
		typ  reflect.Type
		want info.Descriptor
	}{
		{"string", reflect.TypeFor[string](), info.Text()},
		{"named string", reflect.TypeFor[color](), info.Text()},
		{"builder", reflect.TypeFor[strings.Builder](), info.Text()},
		{"map", reflect.TypeFor[map[string]int32](), info.HashMapOf(info.Text(), scalar(info.I32))},
		{"named map", reflect.TypeFor[index](), info.HashMapOf(info.Text(), info.Slice{Elem: scalar(info.U8)})},
		{"set", reflect.TypeFor[map[int8]struct{}](), info.HashSetOf(scalar(info.I8))},
		{"map of unit tuples", reflect.TypeFor[map[int8]Unit](), info.HashSetOf(scalar(info.I8))},
		{"linked list", reflect.TypeFor[list.List](), info.LinkedListOf(info.ErasedDyn{})},
		{"recursive map", reflect.TypeFor[dirTree](), info.MustStruct("dirTree",
			info.Field{Name: "Children", Type: info.HashMapOf(info.Text(), info.Recursive{Name: "introspectable.dirTree"})},
		)},
		{"slice of bytes stays a slice", reflect.TypeFor[[]byte](), info.Slice{Elem: scalar(info.U8)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DescribeType(tt.typ)
			if err != nil {
				t.Fatalf("DescribeType: %v", err)
			}
			assertDescriptor(t, tt.want, got)
		})
	}
}

type ring []int16

func TestRegisterShape(t *testing.T) {
	r := NewResolver(DefaultOptions())
	if diff := cmp.Diff([]string{"hash_map", "hash_set", "string", "linked_list"}, r.Shapes()); diff != "" {
		t.Errorf("builtin shapes mismatch (-want +got):\n%s", diff)
	}

	before, err := DescribeWith[ring](r)
	if err != nil {
		t.Fatal(err)
	}
	assertDescriptor(t, info.Slice{Elem: scalar(info.I16)}, before)

	err = r.RegisterShape("ring",
		func(t reflect.Type) bool { return t == reflect.TypeFor[ring]() },
		func(t reflect.Type, describe func(reflect.Type) (info.Descriptor, error)) (info.Descriptor, error) {
			elem, err := describe(t.Elem())
			if err != nil {
				return nil, err
			}
			return info.VecDequeOf(elem), nil
		},
	)
	if err != nil {
		t.Fatal(err)
	}

	// Registration drops memoized descriptors.
	after, err := DescribeWith[ring](r)
	if err != nil {
		t.Fatal(err)
	}
	assertDescriptor(t, info.VecDequeOf(scalar(info.I16)), after)

	if err := r.RegisterShape("ring", func(reflect.Type) bool { return false }, nil); err == nil {
		t.Error("expected an error for a missing build function")
	}
	err = r.RegisterShape("hash_map", func(reflect.Type) bool { return false }, buildText)
	if !errors.Is(err, ErrDuplicateShape) {
		t.Errorf("expected ErrDuplicateShape, got %v", err)
	}
	if err := r.RegisterShape("", isMap, buildHashMap); !errors.Is(err, info.ErrEmptyName) {
		t.Errorf("expected info.ErrEmptyName, got %v", err)
	}
}

func TestAmbiguousShapes(t *testing.T) {
	r := NewResolver(DefaultOptions())
	err := r.RegisterShape("string_keyed_map",
		func(t reflect.Type) bool { return t.Kind() == reflect.Map && t.Key().Kind() == reflect.String },
		buildHashMap,
	)
	if err != nil {
		t.Fatal(err)
	}

	_, err = DescribeWith[map[string]bool](r)
	if !errors.Is(err, ErrAmbiguousSpecialization) {
		t.Fatalf("expected ErrAmbiguousSpecialization, got %v", err)
	}
	if !strings.Contains(err.Error(), "hash_map, string_keyed_map") {
		t.Errorf("error should name both shapes: %v", err)
	}

	// Types accepted by a single shape are unaffected.
	got, err := DescribeWith[map[int64]bool](r)
	if err != nil {
		t.Fatal(err)
	}
	assertDescriptor(t, info.HashMapOf(scalar(info.I64), scalar(info.Bool)), got)
}

func TestShapeBuildErrors(t *testing.T) {
	_, err := Describe[map[string]chan int]()
	if !errors.Is(err, ErrNotDescribable) {
		t.Fatalf("expected ErrNotDescribable, got %v", err)
	}
	var de *DescribeError
	if !errors.As(err, &de) {
		t.Fatalf("expected *DescribeError, got %T", err)
	}
	if diff := cmp.Diff([]string{"hash_map"}, de.Path); diff != "" {
		t.Errorf("path mismatch (-want +got):\n%s", diff)
	}

	r := NewResolver(DefaultOptions())
	_ = r.RegisterShape("exploding",
		func(t reflect.Type) bool { return t == reflect.TypeFor[ring]() },
		func(reflect.Type, func(reflect.Type) (info.Descriptor, error)) (info.Descriptor, error) {
			panic("boom")
		},
	)
	if _, err := DescribeWith[ring](r); !errors.Is(err, ErrIntrospectPanic) {
		t.Errorf("expected ErrIntrospectPanic, got %v", err)
	}
}
