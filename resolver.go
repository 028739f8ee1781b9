package introspectable

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/Peperworx/introspectable/info"
)

// Resolver derives descriptors for Go types. It is safe for concurrent use.
//
// Resolution order for a type T, first match wins:
//  1. the memo cache;
//  2. Composite, for generic wrappers assembled from their type arguments;
//  3. Introspectable, for self-describing types;
//  4. registered shapes (only with the specialization extension);
//  5. structural decomposition by reflect.Kind.
type Resolver struct {
	opts Options
	log  Logger

	// cache holds reflect.Type -> entry. Only descriptors without
	// back-references are kept: those do not depend on where a cycle was
	// entered. LoadOrStore keeps one canonical descriptor per type when
	// resolutions race.
	cache sync.Map

	fpMu   sync.RWMutex
	prints map[reflect.Type]string

	shapes *shapeRegistry
}

// NewResolver creates a resolver with the given options. Unset limits take
// their defaults.
func NewResolver(opts Options) *Resolver {
	opts = opts.normalize()
	return &Resolver{
		opts:   opts,
		log:    opts.logger(),
		prints: make(map[reflect.Type]string, 64),
		shapes: newShapeRegistry(),
	}
}

// Options returns the normalized options of r.
func (r *Resolver) Options() Options {
	return r.opts
}

// Describe returns the descriptor of t.
func (r *Resolver) Describe(t reflect.Type) (info.Descriptor, error) {
	if t == nil {
		return nil, &DescribeError{Err: ErrNotDescribable}
	}
	if s, ok := enclosing(); ok && s.r == r {
		return s.describe(t)
	}
	s := r.newState(t)
	d, err := s.describe(t)
	if err != nil {
		r.log.Warnf("describe %s failed: %v", t, err)
		return nil, err
	}
	return d, nil
}

// MustDescribe is like Describe but panics on error.
func (r *Resolver) MustDescribe(t reflect.Type) info.Descriptor {
	d, err := r.Describe(t)
	if err != nil {
		panic(err)
	}
	return d
}

// Fingerprint returns info.Fingerprint of t's descriptor. Results are cached
// per type when caching is enabled.
func (r *Resolver) Fingerprint(t reflect.Type) (string, error) {
	r.fpMu.RLock()
	fp, ok := r.prints[t]
	r.fpMu.RUnlock()
	if ok {
		return fp, nil
	}

	d, err := r.Describe(t)
	if err != nil {
		return "", err
	}
	fp = info.Fingerprint(d)

	if r.opts.EnableCache {
		r.fpMu.Lock()
		r.prints[t] = fp
		r.fpMu.Unlock()
	}
	return fp, nil
}

// Reset drops every memoized descriptor and fingerprint.
func (r *Resolver) Reset() {
	r.cache.Clear()
	r.fpMu.Lock()
	clear(r.prints)
	r.fpMu.Unlock()
}

// DescribeWith returns the descriptor of T using r.
func DescribeWith[T any](r *Resolver) (info.Descriptor, error) {
	return r.Describe(reflect.TypeFor[T]())
}

// entry is a memoized descriptor with the number of nested frames its
// resolution took, so cache hits respect MaxDepth like fresh resolutions.
type entry struct {
	d      info.Descriptor
	height int
}

func (r *Resolver) lookup(t reflect.Type) (entry, bool) {
	if !r.opts.EnableCache {
		return entry{}, false
	}
	v, ok := r.cache.Load(t)
	if !ok {
		return entry{}, false
	}
	return v.(entry), true
}

func (r *Resolver) store(t reflect.Type, e entry) info.Descriptor {
	if !r.opts.EnableCache {
		return e.d
	}
	v, _ := r.cache.LoadOrStore(t, e)
	return v.(entry).d
}

// state is the bookkeeping of one top-level resolution.
type state struct {
	r   *Resolver
	log Logger

	// stack holds the types currently being described; active indexes it.
	stack  []reflect.Type
	active map[reflect.Type]int

	// peak is the deepest stack length reached, counting the heights of
	// cache hits. backRefs counts the back-references emitted so far.
	peak     int
	backRefs int

	path []string
}

func (r *Resolver) newState(root reflect.Type) *state {
	log := r.log
	if log.IsEnabled(LevelDebug) {
		log = log.With(map[string]any{"root": root})
	}
	return &state{
		r:      r,
		log:    log,
		active: make(map[reflect.Type]int),
	}
}

func (s *state) describe(t reflect.Type) (info.Descriptor, error) {
	if _, ok := s.active[t]; ok {
		s.log.Debugf("back-reference: %s", t)
		s.backRefs++
		return info.Recursive{Name: typeName(t)}, nil
	}
	depth := len(s.stack)
	if e, ok := s.r.lookup(t); ok {
		if depth+e.height <= s.r.opts.MaxDepth {
			s.log.Debugf("cache hit: %s", t)
			s.peak = max(s.peak, depth+e.height)
			return e.d, nil
		}
		// Too deep from here: resolve again so the failure is reported
		// exactly as without the cache.
	}
	if depth >= s.r.opts.MaxDepth {
		return nil, s.fail(t, fmt.Errorf("%w (%d)", ErrDepthExceeded, s.r.opts.MaxDepth))
	}

	s.stack = append(s.stack, t)
	s.active[t] = depth
	outer, refs := s.peak, s.backRefs
	s.peak = depth + 1

	d, err := s.resolve(t)

	height := s.peak - depth
	s.peak = max(outer, s.peak)
	s.stack = s.stack[:depth]
	delete(s.active, t)

	if err != nil {
		return nil, err
	}
	if s.backRefs == refs {
		d = s.r.store(t, entry{d: d, height: height})
	}
	return d, nil
}

func (s *state) resolve(t reflect.Type) (info.Descriptor, error) {
	if c, ok := zeroAs[Composite](t, compositeType); ok {
		s.log.Debugf("composite: %s", t)
		return s.compose(t, c)
	}
	if in, ok := zeroAs[Introspectable](t, introspectableType); ok {
		s.log.Debugf("introspectable: %s", t)
		return s.guard(t, in.Introspect)
	}
	if d, ok, err := s.specialize(t); ok {
		return d, err
	}
	return s.derive(t)
}

func (s *state) compose(t reflect.Type, c Composite) (info.Descriptor, error) {
	args := c.TypeArgs()
	descs := make([]info.Descriptor, len(args))
	for i, a := range args {
		d, err := s.nested("<"+strconv.Itoa(i)+">", a)
		if err != nil {
			return nil, err
		}
		descs[i] = d
	}
	return s.guard(t, func() info.Descriptor { return c.Compose(descs) })
}

// guard runs a user-supplied description and turns panics and nil results
// into errors. Nested descriptions requested by fn join this resolution.
func (s *state) guard(t reflect.Type, fn func() info.Descriptor) (d info.Descriptor, err error) {
	m := s.mark()
	defer func() {
		if p := recover(); p != nil {
			s.unwind(m)
			d, err = nil, s.panicked(t, p)
		}
	}()
	defer s.enter()()

	d = fn()
	if d == nil {
		return nil, s.fail(t, info.ErrNilDescriptor)
	}
	s.noteBackRefs(d)
	return d, nil
}

// panicked converts a recovered panic into an error. A DescribeError raised
// by a nested description is passed through with its own path.
func (s *state) panicked(t reflect.Type, p any) error {
	if err, ok := p.(error); ok {
		var de *DescribeError
		if errors.As(err, &de) {
			return err
		}
	}
	s.log.Warnf("recovered panic describing %s: %v", t, p)
	return s.fail(t, recoveredError(p))
}

// noteBackRefs accounts for back-references that user code wrote itself,
// such as Self, so the enclosing descriptors are not memoized.
func (s *state) noteBackRefs(d info.Descriptor) {
	if hasBackRef(d) {
		s.backRefs++
	}
}

func (s *state) derive(t reflect.Type) (info.Descriptor, error) {
	switch t.Kind() {
	case reflect.Bool:
		return info.ScalarOf(info.Bool), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return info.ScalarOf(intKind(t.Size(), true)), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return info.ScalarOf(intKind(t.Size(), false)), nil
	case reflect.Float32:
		return info.ScalarOf(info.F32), nil
	case reflect.Float64:
		return info.ScalarOf(info.F64), nil
	case reflect.String:
		return info.Slice{Elem: info.ScalarOf(info.U8)}, nil
	case reflect.Array:
		elem, err := s.nested("[]", t.Elem())
		if err != nil {
			return nil, err
		}
		return info.Array{Elem: elem, Len: t.Len()}, nil
	case reflect.Slice:
		elem, err := s.nested("[]", t.Elem())
		if err != nil {
			return nil, err
		}
		return info.Slice{Elem: elem}, nil
	case reflect.Pointer:
		target, err := s.nested("*", t.Elem())
		if err != nil {
			return nil, err
		}
		return info.MutPointer{Target: target}, nil
	case reflect.UnsafePointer:
		return info.MutPointer{Target: info.Unit{}}, nil
	case reflect.Struct:
		return s.deriveStruct(t)
	case reflect.Interface:
		return describeInterface(t), nil
	default:
		return nil, s.fail(t, fmt.Errorf("%w: %s kind", ErrNotDescribable, t.Kind()))
	}
}

func (s *state) deriveStruct(t reflect.Type) (info.Descriptor, error) {
	if t.NumField() == 0 && t.Name() == "" {
		return info.Unit{}, nil
	}

	fields := make([]info.Field, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name, ok := s.fieldName(f)
		if !ok {
			continue
		}
		d, err := s.nested(name, f.Type)
		if err != nil {
			return nil, err
		}
		fields = append(fields, info.Field{Name: name, Type: d})
	}

	st, err := info.NewStruct(t.Name(), fields...)
	if err != nil {
		return nil, s.fail(t, err)
	}
	return st, nil
}

// fieldName returns the descriptor name of f, or false when f is skipped.
func (s *state) fieldName(f reflect.StructField) (string, bool) {
	if f.Name == "_" {
		return "", false
	}
	if !f.IsExported() && !s.r.opts.IncludeUnexported {
		return "", false
	}
	tag, ok := f.Tag.Lookup(s.r.opts.TagName)
	if !ok {
		return f.Name, true
	}
	name, _, _ := strings.Cut(tag, ",")
	switch name {
	case "-":
		return "", false
	case "":
		return f.Name, true
	}
	return name, true
}

func (s *state) nested(seg string, t reflect.Type) (info.Descriptor, error) {
	s.push(seg)
	defer s.pop()
	return s.describe(t)
}

func (s *state) push(seg string) { s.path = append(s.path, seg) }
func (s *state) pop()            { s.path = s.path[:len(s.path)-1] }

// fail wraps err with the type and field path it occurred at.
func (s *state) fail(t reflect.Type, err error) error {
	return &DescribeError{
		Type: t,
		Path: append([]string(nil), s.path...),
		Err:  err,
	}
}

// describeInterface maps an interface type to its capability set: the
// qualified name of a named interface, the method names of an anonymous
// one, and the empty set for any.
func describeInterface(t reflect.Type) info.ErasedDyn {
	if t.Name() != "" {
		return info.ErasedDyn{Capabilities: []string{t.String()}}
	}
	if t.NumMethod() == 0 {
		return info.ErasedDyn{}
	}
	caps := make([]string, t.NumMethod())
	for i := range caps {
		caps[i] = t.Method(i).Name
	}
	return info.ErasedDyn{Capabilities: caps}
}

func intKind(size uintptr, signed bool) info.ScalarKind {
	switch size {
	case 1:
		return pick(signed, info.I8, info.U8)
	case 2:
		return pick(signed, info.I16, info.U16)
	case 4:
		return pick(signed, info.I32, info.U32)
	default:
		return pick(signed, info.I64, info.U64)
	}
}

func pick(signed bool, s, u info.ScalarKind) info.ScalarKind {
	if signed {
		return s
	}
	return u
}

// typeName is the name used for back-references. It is qualified by the
// package name so that same-named types from different packages stay
// distinguishable; struct descriptors keep the bare name.
func typeName(t reflect.Type) string {
	return t.String()
}
