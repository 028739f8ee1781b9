package info

import (
	"fmt"
	"strings"
)

// ScalarKind identifies one of the primitive, non-decomposable value kinds.
//
// The declaration order is the total order used by Compare: Bool, signed
// integers by ascending width, unsigned integers by ascending width, floats
// by ascending width, then Char.
type ScalarKind uint8

const (
	Bool ScalarKind = iota
	I8
	I16
	I32
	I64
	I128
	U8
	U16
	U32
	U64
	U128
	F32
	F64
	Char
)

var scalarNames = [...]string{
	Bool: "bool",
	I8:   "i8",
	I16:  "i16",
	I32:  "i32",
	I64:  "i64",
	I128: "i128",
	U8:   "u8",
	U16:  "u16",
	U32:  "u32",
	U64:  "u64",
	U128: "u128",
	F32:  "f32",
	F64:  "f64",
	Char: "char",
}

var scalarWidths = [...]int{
	Bool: 1,
	I8:   8,
	I16:  16,
	I32:  32,
	I64:  64,
	I128: 128,
	U8:   8,
	U16:  16,
	U32:  32,
	U64:  64,
	U128: 128,
	F32:  32,
	F64:  64,
	Char: 32,
}

// ScalarKinds returns every scalar kind in canonical order.
func ScalarKinds() []ScalarKind {
	kinds := make([]ScalarKind, 0, len(scalarNames))
	for k := range scalarNames {
		kinds = append(kinds, ScalarKind(k))
	}
	return kinds
}

func (k ScalarKind) String() string {
	if k.Valid() {
		return scalarNames[k]
	}
	return fmt.Sprintf("scalar(%d)", uint8(k))
}

// Valid reports whether k is one of the declared kinds.
func (k ScalarKind) Valid() bool {
	return int(k) < len(scalarNames)
}

// Width returns the width of the kind in bits. Bool reports 1.
func (k ScalarKind) Width() int {
	if !k.Valid() {
		return 0
	}
	return scalarWidths[k]
}

// IsInteger reports whether k is a signed or unsigned integer kind.
func (k ScalarKind) IsInteger() bool {
	return k >= I8 && k <= U128
}

// IsFloat reports whether k is a floating point kind.
func (k ScalarKind) IsFloat() bool {
	return k == F32 || k == F64
}

// IsSigned reports whether k can hold negative values. Floats are signed.
func (k ScalarKind) IsSigned() bool {
	return (k >= I8 && k <= I128) || k.IsFloat()
}

// Less reports whether k orders before other.
func (k ScalarKind) Less(other ScalarKind) bool {
	return k < other
}

// Compare returns -1, 0 or +1 depending on whether a orders before, equal to,
// or after b.
func Compare(a, b ScalarKind) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// ParseScalarKind parses a kind name as produced by ScalarKind.String.
func ParseScalarKind(s string) (ScalarKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range scalarNames {
		if n == name {
			return ScalarKind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownScalar, s)
}
