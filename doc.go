// Package introspectable produces structural descriptors of Go types.
//
// A descriptor (see package info) records the shape of a type: its scalar
// kind, struct fields, enum variants, tuple slots, arrays and slices, the
// form of its indirections, and the capability names of erased values. With
// the specialization extension, which is compiled in unless the
// nospecialized build tag is set, recognized containers such as maps, sets
// and strings get their own descriptors instead of being decomposed.
//
// Types describe themselves by implementing Introspectable:
//
//	type Shape struct{}
//
//	func (Shape) Introspect() info.Descriptor {
//		return introspectable.EnumOf("Shape",
//			introspectable.UnitCase("Empty"),
//			introspectable.TupleCase[float64]("Circle"),
//			introspectable.FieldsCaseOf("Rect",
//				introspectable.Field[float64]("w"),
//				introspectable.Field[float64]("h"),
//			),
//		)
//	}
//
//	d := introspectable.Of[Shape]()
//
// Any other type is described by reflection:
//
//	d, err := introspectable.Describe[map[string][]int]()
//
// Descriptors are derived from types alone. Values are never inspected.
package introspectable
