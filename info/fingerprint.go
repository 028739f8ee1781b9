package info

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"strconv"
)

// EncodingVersion is the version of the canonical encoding produced by Key.
// Fingerprints are only comparable between equal encoding versions.
const EncodingVersion = 1

// Key returns the canonical encoding of d. Two descriptors are Equal exactly
// when their keys are equal, so the key can be used where a comparable value
// is needed (map keys, set membership, sorting).
func Key(d Descriptor) string {
	w := newCanonWriter()
	w.WriteString("v")
	w.WriteString(strconv.Itoa(EncodingVersion))
	w.WriteByte(':')
	encodeDescriptor(d, w)
	return string(w.Bytes())
}

// Fingerprint returns a deterministic hex sha256 digest of d's canonical
// encoding.
func Fingerprint(d Descriptor) string {
	sum := sha256.Sum256([]byte(Key(d)))
	return fmt.Sprintf("%x", sum[:])
}

// Hash returns a 64-bit hash of d consistent with Equal.
func Hash(d Descriptor) uint64 {
	sum := sha256.Sum256([]byte(Key(d)))
	return binary.LittleEndian.Uint64(sum[:8])
}

// encodeDescriptor recursively encodes a descriptor into canonical form.
// Object keys are emitted in a fixed order and map-valued fields are sorted
// by name, so the output does not depend on map iteration order.
func encodeDescriptor(d Descriptor, w *canonWriter) {
	if d == nil {
		w.WriteString("null")
		return
	}

	switch x := d.(type) {
	case Never:
		w.WriteString(`{"never":true}`)
	case Unit:
		w.WriteString(`{"unit":true}`)
	case Scalar:
		w.WriteString(`{"scalar":`)
		w.WriteQuoted(x.Type.String())
		w.WriteByte('}')
	case Struct:
		w.WriteString(`{"struct":`)
		w.WriteQuoted(x.Name)
		w.WriteString(`,"fields":`)
		encodeFields(x.Fields, w)
		w.WriteByte('}')
	case Tuple:
		w.WriteString(`{"tuple":`)
		encodeSeq(x.Fields, w)
		w.WriteByte('}')
	case Enum:
		w.WriteString(`{"enum":`)
		w.WriteQuoted(x.Name)
		w.WriteString(`,"variants":{`)
		for i, name := range x.VariantNames() {
			if i > 0 {
				w.WriteByte(',')
			}
			w.WriteQuoted(name)
			w.WriteByte(':')
			encodeVariant(x.Variants[name], w)
		}
		w.WriteString("}}")
	case Array:
		w.WriteString(`{"array":`)
		encodeDescriptor(x.Elem, w)
		w.WriteString(`,"len":`)
		w.WriteString(strconv.Itoa(x.Len))
		w.WriteByte('}')
	case Slice:
		w.WriteString(`{"slice":`)
		encodeDescriptor(x.Elem, w)
		w.WriteByte('}')
	case Reference:
		w.WriteString(`{"ref":`)
		encodeDescriptor(x.Target, w)
		w.WriteString(`,"lifetime":`)
		w.WriteQuoted(x.Lifetime)
		w.WriteString(`,"mut":`)
		w.WriteString(strconv.FormatBool(x.Mutable))
		w.WriteByte('}')
	case ConstPointer:
		w.WriteString(`{"const_ptr":`)
		encodeDescriptor(x.Target, w)
		w.WriteByte('}')
	case MutPointer:
		w.WriteString(`{"mut_ptr":`)
		encodeDescriptor(x.Target, w)
		w.WriteByte('}')
	case ErasedImpl:
		w.WriteString(`{"impl":`)
		encodeStrings(x.Capabilities, w)
		w.WriteByte('}')
	case ErasedDyn:
		w.WriteString(`{"dyn":`)
		encodeStrings(x.Capabilities, w)
		w.WriteByte('}')
	case Recursive:
		w.WriteString(`{"rec":`)
		w.WriteQuoted(x.Name)
		w.WriteByte('}')
	default:
		if !encodeExtension(d, w) {
			w.WriteString(fmt.Sprintf(`{"unknown":%d}`, uint8(d.Kind())))
		}
	}
}

func encodeVariant(v EnumVariant, w *canonWriter) {
	switch x := v.(type) {
	case UnnamedVariant:
		w.WriteString(`{"unnamed":`)
		encodeSeq(x.Fields, w)
		w.WriteByte('}')
	case NamedVariant:
		w.WriteString(`{"named":`)
		encodeFields(x.Fields, w)
		w.WriteByte('}')
	default:
		w.WriteString(`{"unit":true}`)
	}
}

func encodeFields(fields map[string]Descriptor, w *canonWriter) {
	w.WriteByte('{')
	for i, name := range sortedKeys(fields) {
		if i > 0 {
			w.WriteByte(',')
		}
		w.WriteQuoted(name)
		w.WriteByte(':')
		encodeDescriptor(fields[name], w)
	}
	w.WriteByte('}')
}

func encodeSeq(seq []Descriptor, w *canonWriter) {
	w.WriteByte('[')
	for i, d := range seq {
		if i > 0 {
			w.WriteByte(',')
		}
		encodeDescriptor(d, w)
	}
	w.WriteByte(']')
}

func encodeStrings(ss []string, w *canonWriter) {
	w.WriteByte('[')
	for i, s := range ss {
		if i > 0 {
			w.WriteByte(',')
		}
		w.WriteQuoted(s)
	}
	w.WriteByte(']')
}

// canonWriter is a simple buffer for building canonical representations
type canonWriter struct {
	buf []byte
}

func newCanonWriter() *canonWriter {
	return &canonWriter{buf: make([]byte, 0, 256)}
}

func (w *canonWriter) WriteByte(b byte) {
	w.buf = append(w.buf, b)
}

func (w *canonWriter) WriteString(s string) {
	w.buf = append(w.buf, s...)
}

func (w *canonWriter) WriteQuoted(s string) {
	w.buf = strconv.AppendQuote(w.buf, s)
}

func (w *canonWriter) Bytes() []byte {
	return w.buf
}
