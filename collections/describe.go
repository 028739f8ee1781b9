package collections

import (
	"github.com/Peperworx/introspectable"
	"github.com/Peperworx/introspectable/info"
)

func (v Vec[T]) Introspect() info.Descriptor           { return introspectable.Assemble(v) }
func (d Deque[T]) Introspect() info.Descriptor         { return introspectable.Assemble(d) }
func (l List[T]) Introspect() info.Descriptor          { return introspectable.Assemble(l) }
func (m HashMap[K, V]) Introspect() info.Descriptor    { return introspectable.Assemble(m) }
func (m OrderedMap[K, V]) Introspect() info.Descriptor { return introspectable.Assemble(m) }
func (s HashSet[T]) Introspect() info.Descriptor       { return introspectable.Assemble(s) }
func (s OrderedSet[T]) Introspect() info.Descriptor    { return introspectable.Assemble(s) }
func (q PriorityQueue[T]) Introspect() info.Descriptor { return introspectable.Assemble(q) }
func (t Text) Introspect() info.Descriptor             { return introspectable.Assemble(t) }
