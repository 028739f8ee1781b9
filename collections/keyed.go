package collections

import (
	"cmp"
	"iter"
	"reflect"

	"github.com/google/btree"
)

// btreeDegree is the node degree of the ordered containers.
const btreeDegree = 16

// HashMap maps keys to values without ordering.
type HashMap[K comparable, V any] struct {
	m map[K]V
}

// NewHashMap returns an empty HashMap.
func NewHashMap[K comparable, V any]() *HashMap[K, V] {
	return &HashMap[K, V]{m: make(map[K]V)}
}

func (h *HashMap[K, V]) Get(k K) (V, bool) {
	v, ok := h.m[k]
	return v, ok
}

func (h *HashMap[K, V]) Set(k K, v V) {
	if h.m == nil {
		h.m = make(map[K]V)
	}
	h.m[k] = v
}

func (h *HashMap[K, V]) Delete(k K) { delete(h.m, k) }
func (h *HashMap[K, V]) Len() int   { return len(h.m) }

// All iterates the entries in unspecified order.
func (h *HashMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, v := range h.m {
			if !yield(k, v) {
				return
			}
		}
	}
}

func (HashMap[K, V]) TypeArgs() []reflect.Type { return typeArgs2[K, V]() }

type entry[K, V any] struct {
	key   K
	value V
}

// OrderedMap maps keys to values in key order. Create one with NewOrderedMap
// or NewOrderedMapFunc.
type OrderedMap[K, V any] struct {
	tree *btree.BTreeG[entry[K, V]]
}

// NewOrderedMap returns an empty map ordered by the natural order of K.
func NewOrderedMap[K cmp.Ordered, V any]() *OrderedMap[K, V] {
	return NewOrderedMapFunc[K, V](cmp.Less[K])
}

// NewOrderedMapFunc returns an empty map ordered by less.
func NewOrderedMapFunc[K, V any](less func(a, b K) bool) *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		tree: btree.NewG[entry[K, V]](btreeDegree, func(a, b entry[K, V]) bool { return less(a.key, b.key) }),
	}
}

func (m *OrderedMap[K, V]) Get(k K) (V, bool) {
	e, ok := m.tree.Get(entry[K, V]{key: k})
	return e.value, ok
}

func (m *OrderedMap[K, V]) Set(k K, v V) {
	m.tree.ReplaceOrInsert(entry[K, V]{key: k, value: v})
}

func (m *OrderedMap[K, V]) Delete(k K) {
	m.tree.Delete(entry[K, V]{key: k})
}

func (m *OrderedMap[K, V]) Len() int { return m.tree.Len() }

// Min returns the entry with the smallest key.
func (m *OrderedMap[K, V]) Min() (K, V, bool) {
	e, ok := m.tree.Min()
	return e.key, e.value, ok
}

// Max returns the entry with the largest key.
func (m *OrderedMap[K, V]) Max() (K, V, bool) {
	e, ok := m.tree.Max()
	return e.key, e.value, ok
}

// All iterates the entries in ascending key order.
func (m *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.tree.Ascend(func(e entry[K, V]) bool {
			return yield(e.key, e.value)
		})
	}
}

func (OrderedMap[K, V]) TypeArgs() []reflect.Type { return typeArgs2[K, V]() }

// HashSet is an unordered set.
type HashSet[T comparable] struct {
	m map[T]struct{}
}

// NewHashSet returns a set holding items.
func NewHashSet[T comparable](items ...T) *HashSet[T] {
	s := &HashSet[T]{m: make(map[T]struct{}, len(items))}
	for _, x := range items {
		s.m[x] = struct{}{}
	}
	return s
}

// Add inserts x and reports whether it was absent.
func (s *HashSet[T]) Add(x T) bool {
	if s.m == nil {
		s.m = make(map[T]struct{})
	}
	if _, ok := s.m[x]; ok {
		return false
	}
	s.m[x] = struct{}{}
	return true
}

func (s *HashSet[T]) Remove(x T) { delete(s.m, x) }

func (s *HashSet[T]) Contains(x T) bool {
	_, ok := s.m[x]
	return ok
}

func (s *HashSet[T]) Len() int { return len(s.m) }

// All iterates the elements in unspecified order.
func (s *HashSet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for x := range s.m {
			if !yield(x) {
				return
			}
		}
	}
}

func (HashSet[T]) TypeArgs() []reflect.Type { return typeArgs[T]() }

// OrderedSet is a set iterated in element order. Create one with
// NewOrderedSet or NewOrderedSetFunc.
type OrderedSet[T any] struct {
	tree *btree.BTreeG[T]
}

// NewOrderedSet returns a set ordered by the natural order of T.
func NewOrderedSet[T cmp.Ordered](items ...T) *OrderedSet[T] {
	s := NewOrderedSetFunc(cmp.Less[T])
	for _, x := range items {
		s.Add(x)
	}
	return s
}

// NewOrderedSetFunc returns an empty set ordered by less.
func NewOrderedSetFunc[T any](less func(a, b T) bool) *OrderedSet[T] {
	return &OrderedSet[T]{tree: btree.NewG[T](btreeDegree, less)}
}

// Add inserts x and reports whether it was absent.
func (s *OrderedSet[T]) Add(x T) bool {
	_, replaced := s.tree.ReplaceOrInsert(x)
	return !replaced
}

func (s *OrderedSet[T]) Remove(x T)        { s.tree.Delete(x) }
func (s *OrderedSet[T]) Contains(x T) bool { return s.tree.Has(x) }
func (s *OrderedSet[T]) Len() int          { return s.tree.Len() }
func (s *OrderedSet[T]) Min() (T, bool)    { return s.tree.Min() }
func (s *OrderedSet[T]) Max() (T, bool)    { return s.tree.Max() }

// All iterates the elements in ascending order.
func (s *OrderedSet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		s.tree.Ascend(func(x T) bool { return yield(x) })
	}
}

func (OrderedSet[T]) TypeArgs() []reflect.Type { return typeArgs[T]() }
