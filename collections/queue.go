package collections

import (
	"cmp"
	"container/heap"
	"reflect"
	"strings"
)

// PriorityQueue is a max-heap: Pop returns the greatest element.
type PriorityQueue[T any] struct {
	h maxHeap[T]
}

// NewPriorityQueue returns a queue ordered by the natural order of T.
func NewPriorityQueue[T cmp.Ordered](items ...T) *PriorityQueue[T] {
	q := NewPriorityQueueFunc(cmp.Less[T])
	for _, x := range items {
		q.Push(x)
	}
	return q
}

// NewPriorityQueueFunc returns an empty queue ordered by less.
func NewPriorityQueueFunc[T any](less func(a, b T) bool) *PriorityQueue[T] {
	return &PriorityQueue[T]{h: maxHeap[T]{less: less}}
}

func (q *PriorityQueue[T]) Push(x T) { heap.Push(&q.h, x) }

// Pop removes and returns the greatest element.
func (q *PriorityQueue[T]) Pop() (T, bool) {
	if q.h.Len() == 0 {
		var zero T
		return zero, false
	}
	return heap.Pop(&q.h).(T), true
}

// Peek returns the greatest element without removing it.
func (q *PriorityQueue[T]) Peek() (T, bool) {
	if q.h.Len() == 0 {
		var zero T
		return zero, false
	}
	return q.h.items[0], true
}

func (q *PriorityQueue[T]) Len() int { return q.h.Len() }

func (PriorityQueue[T]) TypeArgs() []reflect.Type { return typeArgs[T]() }

// maxHeap implements heap.Interface with the comparison inverted.
type maxHeap[T any] struct {
	items []T
	less  func(a, b T) bool
}

func (h *maxHeap[T]) Len() int           { return len(h.items) }
func (h *maxHeap[T]) Less(i, j int) bool { return h.less(h.items[j], h.items[i]) }
func (h *maxHeap[T]) Swap(i, j int)      { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *maxHeap[T]) Push(x any)         { h.items = append(h.items, x.(T)) }
func (h *maxHeap[T]) Pop() any {
	n := len(h.items) - 1
	x := h.items[n]
	var zero T
	h.items[n] = zero
	h.items = h.items[:n]
	return x
}

// Text is an owned, growable text buffer.
type Text struct {
	b strings.Builder
}

// NewText returns a Text holding s.
func NewText(s string) *Text {
	t := &Text{}
	t.b.WriteString(s)
	return t
}

func (t *Text) WriteString(s string) (int, error) { return t.b.WriteString(s) }
func (t *Text) WriteRune(r rune) (int, error)     { return t.b.WriteRune(r) }
func (t *Text) String() string                    { return t.b.String() }
func (t *Text) Len() int                          { return t.b.Len() }
func (t *Text) Reset()                            { t.b.Reset() }

func (Text) TypeArgs() []reflect.Type { return nil }
