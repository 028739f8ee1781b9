package introspectable

import (
	"math/big"
	"reflect"

	"github.com/Peperworx/introspectable/info"
)

// Char is a Unicode scalar value. rune is an alias of int32 and describes as
// i32; use Char where the value is a character.
type Char rune

func (Char) Introspect() info.Descriptor { return info.ScalarOf(info.Char) }

// Int128 is a signed 128-bit integer in two's complement, split into halves.
type Int128 struct {
	Hi int64
	Lo uint64
}

// Int128From64 sign-extends v.
func Int128From64(v int64) Int128 {
	return Int128{Hi: v >> 63, Lo: uint64(v)}
}

func (Int128) Introspect() info.Descriptor { return info.ScalarOf(info.I128) }

// Big returns x as a big.Int.
func (x Int128) Big() *big.Int {
	b := new(big.Int).SetInt64(x.Hi)
	b.Lsh(b, 64)
	return b.Or(b, new(big.Int).SetUint64(x.Lo))
}

func (x Int128) String() string { return x.Big().String() }

// Uint128 is an unsigned 128-bit integer split into halves.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// Uint128From64 zero-extends v.
func Uint128From64(v uint64) Uint128 {
	return Uint128{Lo: v}
}

func (Uint128) Introspect() info.Descriptor { return info.ScalarOf(info.U128) }

// Big returns x as a big.Int.
func (x Uint128) Big() *big.Int {
	b := new(big.Int).SetUint64(x.Hi)
	b.Lsh(b, 64)
	return b.Or(b, new(big.Int).SetUint64(x.Lo))
}

func (x Uint128) String() string { return x.Big().String() }

// NeverType marks a position that never holds a value, such as the error
// slot of an operation that cannot fail. Go has no uninhabited types, so the
// zero value exists but carries no meaning.
type NeverType struct{}

func (NeverType) Introspect() info.Descriptor { return info.Never{} }

// Opaque holds a value known only through the capabilities of C. C is
// normally an interface; its descriptor is ErasedImpl over the same
// capability names an interface field of type C would report.
type Opaque[C any] struct {
	v C
}

// NewOpaque wraps v.
func NewOpaque[C any](v C) Opaque[C] {
	return Opaque[C]{v: v}
}

// Value returns the wrapped value.
func (o Opaque[C]) Value() C { return o.v }

func (Opaque[C]) Introspect() info.Descriptor {
	t := reflect.TypeFor[C]()
	if t.Kind() != reflect.Interface {
		return info.ErasedImpl{Capabilities: []string{t.String()}}
	}
	return info.ErasedImpl{Capabilities: describeInterface(t).Capabilities}
}

// Lifetime names the scope a reference is valid for. Implementations are
// empty marker types.
type Lifetime interface {
	LifetimeName() string
}

// Static is the lifetime of values that live for the whole program.
type Static struct{}

func (Static) LifetimeName() string { return "static" }

func lifetimeOf[L Lifetime]() string {
	var l L
	return l.LifetimeName()
}
