package introspectable

import "github.com/Peperworx/introspectable/info"

//go:generate go run ./internal/gen/tuples -n 16 -o tuple_gen.go

// MaxTupleArity is the largest arity with a built-in tuple type.
const MaxTupleArity = 16

// Unit is the empty tuple. It describes as info.Unit, as does any anonymous
// struct without fields.
type Unit = struct{}

func composeTuple(args []info.Descriptor) info.Descriptor {
	return info.Tuple{Fields: append([]info.Descriptor(nil), args...)}
}
