//go:build !nospecialized

package introspectable

import (
	"container/list"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/Peperworx/introspectable/info"
)

// MatchFunc reports whether a shape applies to t.
type MatchFunc func(t reflect.Type) bool

// BuildFunc builds the descriptor of a type accepted by the matching
// MatchFunc. describe resolves nested types within the current resolution,
// so cycles through the built shape are still detected.
type BuildFunc func(t reflect.Type, describe func(reflect.Type) (info.Descriptor, error)) (info.Descriptor, error)

type shape struct {
	name  string
	match MatchFunc
	build BuildFunc
}

type shapeRegistry struct {
	mu     sync.RWMutex
	shapes []shape
}

func newShapeRegistry() *shapeRegistry {
	return &shapeRegistry{shapes: builtinShapes()}
}

// matching returns every registered shape accepting t.
func (sr *shapeRegistry) matching(t reflect.Type) []shape {
	sr.mu.RLock()
	defer sr.mu.RUnlock()

	var out []shape
	for _, sh := range sr.shapes {
		if sh.match(t) {
			out = append(out, sh)
		}
	}
	return out
}

// RegisterShape adds a recognizer for a family of types. A type accepted by
// more than one shape cannot be described and fails with
// ErrAmbiguousSpecialization. Registering drops the memo cache.
func (r *Resolver) RegisterShape(name string, match MatchFunc, build BuildFunc) error {
	if name == "" {
		return fmt.Errorf("register shape: %w", info.ErrEmptyName)
	}
	if match == nil || build == nil {
		return fmt.Errorf("register shape %q: missing match or build function", name)
	}

	r.shapes.mu.Lock()
	for _, sh := range r.shapes.shapes {
		if sh.name == name {
			r.shapes.mu.Unlock()
			return fmt.Errorf("%w: %q", ErrDuplicateShape, name)
		}
	}
	r.shapes.shapes = append(r.shapes.shapes, shape{name: name, match: match, build: build})
	r.shapes.mu.Unlock()

	r.log.Infof("registered shape %q", name)
	r.Reset()
	return nil
}

// Shapes returns the names of the registered shapes in registration order.
func (r *Resolver) Shapes() []string {
	r.shapes.mu.RLock()
	defer r.shapes.mu.RUnlock()

	names := make([]string, len(r.shapes.shapes))
	for i, sh := range r.shapes.shapes {
		names[i] = sh.name
	}
	return names
}

func (s *state) specialize(t reflect.Type) (info.Descriptor, bool, error) {
	matched := s.r.shapes.matching(t)
	switch len(matched) {
	case 0:
		return nil, false, nil
	case 1:
	default:
		names := make([]string, len(matched))
		for i, sh := range matched {
			names[i] = sh.name
		}
		s.log.Warnf("%s matches shapes %s", t, strings.Join(names, ", "))
		err := fmt.Errorf("%w: %s", ErrAmbiguousSpecialization, strings.Join(names, ", "))
		return nil, true, s.fail(t, err)
	}

	sh := matched[0]
	s.log.Debugf("shape %s: %s", sh.name, t)

	s.push(sh.name)
	d, err := s.buildShape(t, sh)
	s.pop()
	if err != nil {
		return nil, true, err
	}
	return d, true, nil
}

func (s *state) buildShape(t reflect.Type, sh shape) (d info.Descriptor, err error) {
	m := s.mark()
	defer func() {
		if p := recover(); p != nil {
			s.unwind(m)
			d, err = nil, s.panicked(t, p)
		}
	}()
	defer s.enter()()

	d, err = sh.build(t, s.describe)
	if err != nil {
		var de *DescribeError
		if errors.As(err, &de) {
			return nil, err
		}
		return nil, s.fail(t, err)
	}
	if d == nil {
		return nil, s.fail(t, info.ErrNilDescriptor)
	}
	s.noteBackRefs(d)
	return d, nil
}

var (
	builderType = reflect.TypeFor[strings.Builder]()
	listType    = reflect.TypeFor[list.List]()
)

func builtinShapes() []shape {
	return []shape{
		{name: "hash_map", match: isMap, build: buildHashMap},
		{name: "hash_set", match: isSet, build: buildHashSet},
		{name: "string", match: isText, build: buildText},
		{name: "linked_list", match: isList, build: buildList},
	}
}

// isMap and isSet are disjoint: a map whose values carry no information is a
// set of its keys.
func isMap(t reflect.Type) bool {
	return t.Kind() == reflect.Map && !isEmptyStruct(t.Elem())
}

func isSet(t reflect.Type) bool {
	return t.Kind() == reflect.Map && isEmptyStruct(t.Elem())
}

func isText(t reflect.Type) bool {
	return t.Kind() == reflect.String || t == builderType
}

func isList(t reflect.Type) bool {
	return t == listType
}

func isEmptyStruct(t reflect.Type) bool {
	return t.Kind() == reflect.Struct && t.NumField() == 0
}

func buildHashMap(t reflect.Type, describe func(reflect.Type) (info.Descriptor, error)) (info.Descriptor, error) {
	key, err := describe(t.Key())
	if err != nil {
		return nil, err
	}
	value, err := describe(t.Elem())
	if err != nil {
		return nil, err
	}
	return info.HashMapOf(key, value), nil
}

func buildHashSet(t reflect.Type, describe func(reflect.Type) (info.Descriptor, error)) (info.Descriptor, error) {
	elem, err := describe(t.Key())
	if err != nil {
		return nil, err
	}
	return info.HashSetOf(elem), nil
}

func buildText(reflect.Type, func(reflect.Type) (info.Descriptor, error)) (info.Descriptor, error) {
	return info.Text(), nil
}

// container/list holds untyped elements, so only dynamic dispatch is known
// about them.
func buildList(reflect.Type, func(reflect.Type) (info.Descriptor, error)) (info.Descriptor, error) {
	return info.LinkedListOf(info.ErasedDyn{}), nil
}
