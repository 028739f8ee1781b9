//go:build !nospecialized

package collections

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Peperworx/introspectable"
	"github.com/Peperworx/introspectable/info"
)

type inventory struct {
	Items  Vec[string]
	Counts OrderedMap[string, uint32]
	Tags   HashSet[string]
	Log    Deque[introspectable.Char]
}

type graph struct {
	Name  Text
	Edges List[graph]
}

func TestDescribeContainers(t *testing.T) {
	u32 := info.ScalarOf(info.U32)
	tests := []struct {
		name string
		got  info.Descriptor
		want info.Descriptor
	}{
		{"vec", introspectable.Of[Vec[uint32]](), info.VecOf(u32)},
		{"deque", introspectable.Of[Deque[uint32]](), info.VecDequeOf(u32)},
		{"list", introspectable.Of[List[uint32]](), info.LinkedListOf(u32)},
		{"hash map", introspectable.Of[HashMap[uint32, bool]](), info.HashMapOf(u32, info.ScalarOf(info.Bool))},
		{"ordered map", introspectable.Of[OrderedMap[uint32, bool]](), info.BTreeMapOf(u32, info.ScalarOf(info.Bool))},
		{"hash set", introspectable.Of[HashSet[uint32]](), info.HashSetOf(u32)},
		{"ordered set", introspectable.Of[OrderedSet[uint32]](), info.BTreeSetOf(u32)},
		{"priority queue", introspectable.Of[PriorityQueue[uint32]](), info.BinaryHeapOf(u32)},
		{"text", introspectable.Of[Text](), info.Text()},
		{"nested", introspectable.MustDescribe[Vec[OrderedSet[uint32]]](), info.VecOf(info.BTreeSetOf(u32))},
		{"pointer", introspectable.MustDescribe[*Vec[uint32]](), info.MutPointer{Target: info.VecOf(u32)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.got, cmp.Comparer(info.Equal)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDescribeContainerFields(t *testing.T) {
	got := introspectable.MustDescribe[inventory]()
	want := info.MustStruct("inventory",
		info.Field{Name: "Items", Type: info.VecOf(info.Text())},
		info.Field{Name: "Counts", Type: info.BTreeMapOf(info.Text(), info.ScalarOf(info.U32))},
		info.Field{Name: "Tags", Type: info.HashSetOf(info.Text())},
		info.Field{Name: "Log", Type: info.VecDequeOf(info.ScalarOf(info.Char))},
	)
	if !info.Equal(want, got) {
		t.Errorf("got %s\nwant %s", got, want)
	}

	// The recursive slot goes through a Composite, so the cycle is detected.
	got = introspectable.MustDescribe[graph]()
	want = info.MustStruct("graph",
		info.Field{Name: "Name", Type: info.Text()},
		info.Field{Name: "Edges", Type: info.LinkedListOf(info.Recursive{Name: "collections.graph"})},
	)
	if !info.Equal(want, got) {
		t.Errorf("got %s\nwant %s", got, want)
	}
}
