//go:build !nospecialized

package jsonschema

import (
	"fmt"

	"github.com/speakeasy-api/openapi/jsonschema/oas3"

	"github.com/Peperworx/introspectable/info"
)

func (g *generator) extension(d info.Descriptor) (*oas3.Schema, bool, error) {
	s, ok := d.(info.Specialized)
	if !ok {
		return nil, false, nil
	}
	g.path = append(g.path, s.Form.String())
	defer func() { g.path = g.path[:len(g.path)-1] }()

	switch s.Form {
	case info.FormString:
		return typed(oas3.SchemaTypeString), true, nil
	case info.FormVec, info.FormVecDeque, info.FormLinkedList, info.FormBinaryHeap:
		items, err := g.generate(s.Elem)
		if err != nil {
			return nil, true, err
		}
		return ArrayType(items), true, nil
	case info.FormHashSet, info.FormBTreeSet:
		items, err := g.generate(s.Elem)
		if err != nil {
			return nil, true, err
		}
		schema := ArrayType(items)
		unique := true
		schema.UniqueItems = &unique
		return schema, true, nil
	case info.FormHashMap, info.FormBTreeMap:
		values, err := g.generate(s.Elem)
		if err != nil {
			return nil, true, err
		}
		if textual(s.Key) {
			return MapType(values), true, nil
		}
		key, err := g.generate(s.Key)
		if err != nil {
			return nil, true, err
		}
		return ArrayType(TupleType([]*oas3.Schema{key, values})), true, nil
	}
	return nil, true, g.fail(fmt.Errorf("%w: form %s", ErrUnsupported, s.Form))
}

// textual reports whether values of d serialize as JSON strings and so can
// be object keys.
func textual(d info.Descriptor) bool {
	switch x := d.(type) {
	case info.Specialized:
		return x.Form == info.FormString
	case info.Scalar:
		return x.Type == info.Char
	}
	return false
}
