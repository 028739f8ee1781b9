//go:build !nospecialized

package info

import "fmt"

// KindSpecialized tags the Specialized variant. It is only defined when the
// specialization extension is compiled in.
const KindSpecialized Kind = 32

// Form identifies a recognized container shape.
type Form uint8

const (
	// FormVec is a growable sequence.
	FormVec Form = iota
	// FormVecDeque is a double-ended queue.
	FormVecDeque
	// FormLinkedList is a linked sequence.
	FormLinkedList
	// FormHashMap is a hash-keyed map.
	FormHashMap
	// FormBTreeMap is a comparison-keyed ordered map.
	FormBTreeMap
	// FormHashSet is a hash set.
	FormHashSet
	// FormBTreeSet is a comparison-ordered set.
	FormBTreeSet
	// FormBinaryHeap is a max-heap priority queue.
	FormBinaryHeap
	// FormString is an owned text buffer.
	FormString
)

var formNames = [...]string{
	FormVec:        "vec",
	FormVecDeque:   "vec_deque",
	FormLinkedList: "linked_list",
	FormHashMap:    "hash_map",
	FormBTreeMap:   "btree_map",
	FormHashSet:    "hash_set",
	FormBTreeSet:   "btree_set",
	FormBinaryHeap: "binary_heap",
	FormString:     "string",
}

func (f Form) String() string {
	if int(f) < len(formNames) {
		return formNames[f]
	}
	return fmt.Sprintf("form(%d)", uint8(f))
}

// ParseForm parses a form name as produced by Form.String.
func ParseForm(s string) (Form, error) {
	for f, n := range formNames {
		if n == s {
			return Form(f), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownForm, s)
}

// HasKey reports whether the form is keyed (maps).
func (f Form) HasKey() bool {
	return f == FormHashMap || f == FormBTreeMap
}

// HasElem reports whether the form carries an element or value descriptor.
func (f Form) HasElem() bool {
	return f != FormString
}

// Specialized describes a recognized container shape. Key is set for maps
// only; Elem holds the element type, or the value type for maps, and is nil
// for FormString.
type Specialized struct {
	Form Form
	Key  Descriptor
	Elem Descriptor
}

// NewSpecialized builds a Specialized descriptor, checking that key and elem
// are present exactly when the form requires them.
func NewSpecialized(form Form, key, elem Descriptor) (Specialized, error) {
	if int(form) >= len(formNames) {
		return Specialized{}, fmt.Errorf("%w: %d", ErrUnknownForm, uint8(form))
	}
	if form.HasKey() != (key != nil) {
		return Specialized{}, fmt.Errorf("%s key: %w", form, errPresence(form.HasKey()))
	}
	if form.HasElem() != (elem != nil) {
		return Specialized{}, fmt.Errorf("%s element: %w", form, errPresence(form.HasElem()))
	}
	return Specialized{Form: form, Key: key, Elem: elem}, nil
}

func errPresence(required bool) error {
	if required {
		return ErrNilDescriptor
	}
	return ErrUnexpectedDescriptor
}

// VecOf describes a growable sequence of elem.
func VecOf(elem Descriptor) Specialized { return Specialized{Form: FormVec, Elem: elem} }

// VecDequeOf describes a double-ended queue of elem.
func VecDequeOf(elem Descriptor) Specialized { return Specialized{Form: FormVecDeque, Elem: elem} }

// LinkedListOf describes a linked sequence of elem.
func LinkedListOf(elem Descriptor) Specialized {
	return Specialized{Form: FormLinkedList, Elem: elem}
}

// HashMapOf describes a hash-keyed map from key to value.
func HashMapOf(key, value Descriptor) Specialized {
	return Specialized{Form: FormHashMap, Key: key, Elem: value}
}

// BTreeMapOf describes an ordered map from key to value.
func BTreeMapOf(key, value Descriptor) Specialized {
	return Specialized{Form: FormBTreeMap, Key: key, Elem: value}
}

// HashSetOf describes a hash set of elem.
func HashSetOf(elem Descriptor) Specialized { return Specialized{Form: FormHashSet, Elem: elem} }

// BTreeSetOf describes an ordered set of elem.
func BTreeSetOf(elem Descriptor) Specialized { return Specialized{Form: FormBTreeSet, Elem: elem} }

// BinaryHeapOf describes a max-heap of elem.
func BinaryHeapOf(elem Descriptor) Specialized {
	return Specialized{Form: FormBinaryHeap, Elem: elem}
}

// Text describes an owned text buffer.
func Text() Specialized { return Specialized{Form: FormString} }

func (Specialized) Kind() Kind { return KindSpecialized }
func (s Specialized) String() string {
	switch {
	case s.Form.HasKey():
		return fmt.Sprintf("%s<%s, %s>", s.Form, describeString(s.Key), describeString(s.Elem))
	case s.Form.HasElem():
		return fmt.Sprintf("%s<%s>", s.Form, describeString(s.Elem))
	default:
		return s.Form.String()
	}
}
func (Specialized) descriptor() {}

func extensionKindName(k Kind) (string, bool) {
	if k == KindSpecialized {
		return "specialized", true
	}
	return "", false
}

func parseExtensionKind(s string) (Kind, bool) {
	if s == "specialized" {
		return KindSpecialized, true
	}
	return 0, false
}

func equalExtension(a, b Descriptor) bool {
	x, ok := a.(Specialized)
	if !ok {
		return false
	}
	y, ok := b.(Specialized)
	if !ok {
		return false
	}
	return x.Form == y.Form && equalOptional(x.Key, y.Key) && equalOptional(x.Elem, y.Elem)
}

func childrenExtension(d Descriptor) []Descriptor {
	s, ok := d.(Specialized)
	if !ok {
		return nil
	}
	var out []Descriptor
	if s.Key != nil {
		out = append(out, s.Key)
	}
	if s.Elem != nil {
		out = append(out, s.Elem)
	}
	return out
}

func encodeExtension(d Descriptor, w *canonWriter) bool {
	s, ok := d.(Specialized)
	if !ok {
		return false
	}
	w.WriteString(`{"specialized":`)
	w.WriteQuoted(s.Form.String())
	if s.Key != nil {
		w.WriteString(`,"key":`)
		encodeDescriptor(s.Key, w)
	}
	if s.Elem != nil {
		w.WriteString(`,"elem":`)
		encodeDescriptor(s.Elem, w)
	}
	w.WriteByte('}')
	return true
}
