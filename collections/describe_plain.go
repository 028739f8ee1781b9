//go:build nospecialized

package collections

import "github.com/Peperworx/introspectable/info"

func sliceOf(args []info.Descriptor) info.Descriptor { return info.Slice{Elem: args[0]} }

func entries(args []info.Descriptor) info.Descriptor {
	return info.Slice{Elem: info.Tuple{Fields: []info.Descriptor{args[0], args[1]}}}
}

func (Vec[T]) Compose(args []info.Descriptor) info.Descriptor           { return sliceOf(args) }
func (Deque[T]) Compose(args []info.Descriptor) info.Descriptor         { return sliceOf(args) }
func (List[T]) Compose(args []info.Descriptor) info.Descriptor          { return sliceOf(args) }
func (HashMap[K, V]) Compose(args []info.Descriptor) info.Descriptor    { return entries(args) }
func (OrderedMap[K, V]) Compose(args []info.Descriptor) info.Descriptor { return entries(args) }
func (HashSet[T]) Compose(args []info.Descriptor) info.Descriptor       { return sliceOf(args) }
func (OrderedSet[T]) Compose(args []info.Descriptor) info.Descriptor    { return sliceOf(args) }
func (PriorityQueue[T]) Compose(args []info.Descriptor) info.Descriptor { return sliceOf(args) }

func (Text) Compose([]info.Descriptor) info.Descriptor {
	return info.Slice{Elem: info.ScalarOf(info.U8)}
}
