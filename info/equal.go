package info

// Equal reports whether a and b are structurally equal: the same variant with
// recursively equal contents. Names are compared, positional order matters
// for tuples and unnamed variants, and field or variant maps are compared as
// unordered key sets.
func Equal(a, b Descriptor) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}

	switch x := a.(type) {
	case Never, Unit:
		return true
	case Scalar:
		return x.Type == b.(Scalar).Type
	case Struct:
		y := b.(Struct)
		return x.Name == y.Name && equalFields(x.Fields, y.Fields)
	case Tuple:
		return equalSeq(x.Fields, b.(Tuple).Fields)
	case Enum:
		y := b.(Enum)
		if x.Name != y.Name || len(x.Variants) != len(y.Variants) {
			return false
		}
		for name, v := range x.Variants {
			w, ok := y.Variants[name]
			if !ok || !equalVariant(v, w) {
				return false
			}
		}
		return true
	case Array:
		y := b.(Array)
		return x.Len == y.Len && Equal(x.Elem, y.Elem)
	case Slice:
		return Equal(x.Elem, b.(Slice).Elem)
	case Reference:
		y := b.(Reference)
		return x.Lifetime == y.Lifetime && x.Mutable == y.Mutable && Equal(x.Target, y.Target)
	case ConstPointer:
		return Equal(x.Target, b.(ConstPointer).Target)
	case MutPointer:
		return Equal(x.Target, b.(MutPointer).Target)
	case ErasedImpl:
		return equalStrings(x.Capabilities, b.(ErasedImpl).Capabilities)
	case ErasedDyn:
		return equalStrings(x.Capabilities, b.(ErasedDyn).Capabilities)
	case Recursive:
		return x.Name == b.(Recursive).Name
	default:
		return equalExtension(a, b)
	}
}

// EqualVariant reports whether two enum variant payloads are structurally
// equal.
func EqualVariant(a, b EnumVariant) bool {
	return equalVariant(a, b)
}

func equalVariant(a, b EnumVariant) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.VariantKind() != b.VariantKind() {
		return false
	}
	switch x := a.(type) {
	case UnnamedVariant:
		return equalSeq(x.Fields, b.(UnnamedVariant).Fields)
	case NamedVariant:
		return equalFields(x.Fields, b.(NamedVariant).Fields)
	default:
		return true
	}
}

func equalFields(a, b map[string]Descriptor) bool {
	if len(a) != len(b) {
		return false
	}
	for name, d := range a {
		e, ok := b[name]
		if !ok || !Equal(d, e) {
			return false
		}
	}
	return true
}

func equalSeq(a, b []Descriptor) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalOptional(a, b Descriptor) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return Equal(a, b)
}
