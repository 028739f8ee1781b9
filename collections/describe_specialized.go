//go:build !nospecialized

package collections

import "github.com/Peperworx/introspectable/info"

func (Vec[T]) Compose(args []info.Descriptor) info.Descriptor   { return info.VecOf(args[0]) }
func (Deque[T]) Compose(args []info.Descriptor) info.Descriptor { return info.VecDequeOf(args[0]) }
func (List[T]) Compose(args []info.Descriptor) info.Descriptor  { return info.LinkedListOf(args[0]) }

func (HashMap[K, V]) Compose(args []info.Descriptor) info.Descriptor {
	return info.HashMapOf(args[0], args[1])
}

func (OrderedMap[K, V]) Compose(args []info.Descriptor) info.Descriptor {
	return info.BTreeMapOf(args[0], args[1])
}

func (HashSet[T]) Compose(args []info.Descriptor) info.Descriptor    { return info.HashSetOf(args[0]) }
func (OrderedSet[T]) Compose(args []info.Descriptor) info.Descriptor { return info.BTreeSetOf(args[0]) }

func (PriorityQueue[T]) Compose(args []info.Descriptor) info.Descriptor {
	return info.BinaryHeapOf(args[0])
}

func (Text) Compose([]info.Descriptor) info.Descriptor { return info.Text() }
