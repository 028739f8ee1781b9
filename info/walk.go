package info

// Children returns the descriptors nested directly inside d, in a
// deterministic order: struct and named-variant fields by sorted name, enum
// variants by sorted name, positional fields in order.
func Children(d Descriptor) []Descriptor {
	switch x := d.(type) {
	case Struct:
		out := make([]Descriptor, 0, len(x.Fields))
		for _, name := range sortedKeys(x.Fields) {
			out = append(out, x.Fields[name])
		}
		return out
	case Tuple:
		return append([]Descriptor(nil), x.Fields...)
	case Enum:
		var out []Descriptor
		for _, name := range x.VariantNames() {
			switch v := x.Variants[name].(type) {
			case UnnamedVariant:
				out = append(out, v.Fields...)
			case NamedVariant:
				for _, f := range sortedKeys(v.Fields) {
					out = append(out, v.Fields[f])
				}
			}
		}
		return out
	case Array:
		return []Descriptor{x.Elem}
	case Slice:
		return []Descriptor{x.Elem}
	case Pointer:
		return []Descriptor{x.Pointee()}
	case nil:
		return nil
	default:
		return childrenExtension(d)
	}
}

// Walk visits d and every nested descriptor depth-first in pre-order. If fn
// returns false the children of the current descriptor are skipped.
func Walk(d Descriptor, fn func(d Descriptor, depth int) bool) {
	walk(d, 0, fn)
}

func walk(d Descriptor, depth int, fn func(Descriptor, int) bool) {
	if d == nil || !fn(d, depth) {
		return
	}
	for _, c := range Children(d) {
		walk(c, depth+1, fn)
	}
}

// Depth returns the nesting depth of d; leaves have depth 1.
func Depth(d Descriptor) int {
	max := 0
	Walk(d, func(_ Descriptor, depth int) bool {
		if depth+1 > max {
			max = depth + 1
		}
		return true
	})
	return max
}
