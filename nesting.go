package introspectable

import (
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/petermattis/goid"

	"github.com/Peperworx/introspectable/info"
)

// Introspect methods, Compose and shape builders are user code that may call
// back into the package, typically through Field. While such code runs, its
// resolution is registered against the calling goroutine, and nested calls
// join it: they share its cycle detection, its depth limit and its resolver.
var (
	running sync.Map // goroutine id -> *state
	inUser  atomic.Int64
)

// enter registers s as the resolution running user code on this goroutine.
// The returned function restores the previous registration.
func (s *state) enter() func() {
	id := goid.Get()
	prev, had := running.Load(id)
	running.Store(id, s)
	inUser.Add(1)
	return func() {
		inUser.Add(-1)
		if had {
			running.Store(id, prev)
		} else {
			running.Delete(id)
		}
	}
}

// enclosing returns the resolution whose user code is running on this
// goroutine, if any.
func enclosing() (*state, bool) {
	if inUser.Load() == 0 {
		return nil, false
	}
	v, ok := running.Load(goid.Get())
	if !ok {
		return nil, false
	}
	return v.(*state), true
}

// describeNested describes t inside the enclosing resolution, or with the
// default resolver when called outside of one. It panics on error; the
// enclosing resolution recovers the panic and reports the error.
func describeNested(t reflect.Type) info.Descriptor {
	if s, ok := enclosing(); ok {
		d, err := s.describe(t)
		if err != nil {
			panic(err)
		}
		return d
	}
	return Default().MustDescribe(t)
}

// mark records how far the stack and path reached, so a recovered panic can
// drop the frames it abandoned.
type mark struct {
	stack, path int
}

func (s *state) mark() mark {
	return mark{stack: len(s.stack), path: len(s.path)}
}

func (s *state) unwind(m mark) {
	for _, t := range s.stack[m.stack:] {
		delete(s.active, t)
	}
	s.stack = s.stack[:m.stack]
	s.path = s.path[:m.path]
}

// hasBackRef reports whether d contains a back-reference.
func hasBackRef(d info.Descriptor) bool {
	found := false
	info.Walk(d, func(d info.Descriptor, _ int) bool {
		if _, ok := d.(info.Recursive); ok {
			found = true
		}
		return !found
	})
	return found
}
