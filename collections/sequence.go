// Package collections provides container types whose descriptors are the
// specialized container forms: Vec, Deque, List, HashMap, OrderedMap,
// HashSet, OrderedSet, PriorityQueue and Text.
//
// Built with the nospecialized tag, each container describes as a slice of
// its elements (map entries as key/value tuples, text as bytes).
package collections

import (
	"container/list"
	"iter"
	"reflect"
)

// Vec is a growable sequence.
type Vec[T any] struct {
	items []T
}

// NewVec returns a Vec holding items.
func NewVec[T any](items ...T) *Vec[T] {
	return &Vec[T]{items: append([]T(nil), items...)}
}

// Push appends x.
func (v *Vec[T]) Push(x T) { v.items = append(v.items, x) }

// Pop removes and returns the last element.
func (v *Vec[T]) Pop() (T, bool) {
	var zero T
	if len(v.items) == 0 {
		return zero, false
	}
	x := v.items[len(v.items)-1]
	v.items[len(v.items)-1] = zero
	v.items = v.items[:len(v.items)-1]
	return x, true
}

// Get returns the element at i.
func (v *Vec[T]) Get(i int) (T, bool) {
	if i < 0 || i >= len(v.items) {
		var zero T
		return zero, false
	}
	return v.items[i], true
}

func (v *Vec[T]) Len() int { return len(v.items) }

// All iterates the elements in order.
func (v *Vec[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range v.items {
			if !yield(i, x) {
				return
			}
		}
	}
}

func (Vec[T]) TypeArgs() []reflect.Type { return typeArgs[T]() }

// Deque is a double-ended queue backed by a ring buffer.
type Deque[T any] struct {
	buf   []T
	head  int
	count int
}

// NewDeque returns an empty Deque.
func NewDeque[T any]() *Deque[T] {
	return &Deque[T]{}
}

func (d *Deque[T]) grow() {
	if d.count < len(d.buf) {
		return
	}
	n := max(2*len(d.buf), 8)
	buf := make([]T, n)
	for i := 0; i < d.count; i++ {
		buf[i] = d.buf[(d.head+i)%len(d.buf)]
	}
	d.buf = buf
	d.head = 0
}

// PushBack appends x at the back.
func (d *Deque[T]) PushBack(x T) {
	d.grow()
	d.buf[(d.head+d.count)%len(d.buf)] = x
	d.count++
}

// PushFront inserts x at the front.
func (d *Deque[T]) PushFront(x T) {
	d.grow()
	d.head = (d.head - 1 + len(d.buf)) % len(d.buf)
	d.buf[d.head] = x
	d.count++
}

// PopFront removes and returns the front element.
func (d *Deque[T]) PopFront() (T, bool) {
	var zero T
	if d.count == 0 {
		return zero, false
	}
	x := d.buf[d.head]
	d.buf[d.head] = zero
	d.head = (d.head + 1) % len(d.buf)
	d.count--
	return x, true
}

// PopBack removes and returns the back element.
func (d *Deque[T]) PopBack() (T, bool) {
	var zero T
	if d.count == 0 {
		return zero, false
	}
	i := (d.head + d.count - 1) % len(d.buf)
	x := d.buf[i]
	d.buf[i] = zero
	d.count--
	return x, true
}

func (d *Deque[T]) Len() int { return d.count }

// All iterates from front to back.
func (d *Deque[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < d.count; i++ {
			if !yield(i, d.buf[(d.head+i)%len(d.buf)]) {
				return
			}
		}
	}
}

func (Deque[T]) TypeArgs() []reflect.Type { return typeArgs[T]() }

// List is a doubly linked list of T.
type List[T any] struct {
	l list.List
}

// NewList returns a List holding items.
func NewList[T any](items ...T) *List[T] {
	l := &List[T]{}
	for _, x := range items {
		l.PushBack(x)
	}
	return l
}

func (l *List[T]) PushBack(x T)  { l.l.PushBack(x) }
func (l *List[T]) PushFront(x T) { l.l.PushFront(x) }

// PopFront removes and returns the first element.
func (l *List[T]) PopFront() (T, bool) {
	return l.remove(l.l.Front())
}

// PopBack removes and returns the last element.
func (l *List[T]) PopBack() (T, bool) {
	return l.remove(l.l.Back())
}

func (l *List[T]) remove(e *list.Element) (T, bool) {
	if e == nil {
		var zero T
		return zero, false
	}
	return l.l.Remove(e).(T), true
}

func (l *List[T]) Len() int { return l.l.Len() }

// All iterates from front to back.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := l.l.Front(); e != nil; e = e.Next() {
			if !yield(e.Value.(T)) {
				return
			}
		}
	}
}

func (List[T]) TypeArgs() []reflect.Type { return typeArgs[T]() }

func typeArgs[T any]() []reflect.Type {
	return []reflect.Type{reflect.TypeFor[T]()}
}

func typeArgs2[K, V any]() []reflect.Type {
	return []reflect.Type{reflect.TypeFor[K](), reflect.TypeFor[V]()}
}
