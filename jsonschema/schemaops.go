package jsonschema

import (
	"sort"

	"github.com/speakeasy-api/openapi/jsonschema/oas3"
	"github.com/speakeasy-api/openapi/sequencedmap"
	"gopkg.in/yaml.v3"
)

// Top returns a schema that matches any value.
func Top() *oas3.Schema {
	return &oas3.Schema{}
}

// Bottom returns a schema that matches nothing.
func Bottom() *oas3.Schema {
	return &oas3.Schema{Not: wrap(Top())}
}

// ConstString creates a schema for a specific string literal.
func ConstString(s string) *oas3.Schema {
	node := &yaml.Node{Kind: yaml.ScalarNode, Value: s, Tag: "!!str"}
	return &oas3.Schema{
		Type: oas3.NewTypeFromString(oas3.SchemaTypeString),
		Enum: []*yaml.Node{node},
	}
}

func typed(t oas3.SchemaType) *oas3.Schema {
	return &oas3.Schema{Type: oas3.NewTypeFromString(t)}
}

// ArrayType creates an array schema whose every element matches items.
func ArrayType(items *oas3.Schema) *oas3.Schema {
	schema := typed(oas3.SchemaTypeArray)
	schema.Items = wrap(items)
	return schema
}

// TupleType creates an array schema with exactly len(items) positional elements.
func TupleType(items []*oas3.Schema) *oas3.Schema {
	schema := typed(oas3.SchemaTypeArray)
	schema.PrefixItems = make([]*oas3.JSONSchema[oas3.Referenceable], 0, len(items))
	for _, it := range items {
		schema.PrefixItems = append(schema.PrefixItems, wrap(it))
	}
	n := int64(len(items))
	schema.MinItems = &n
	schema.MaxItems = &n
	return schema
}

// MapType creates an object schema with arbitrary keys whose values match values.
func MapType(values *oas3.Schema) *oas3.Schema {
	schema := typed(oas3.SchemaTypeObject)
	schema.AdditionalProperties = wrap(values)
	return schema
}

// BuildObject creates a closed object schema from a property map: properties
// other than the listed ones are rejected. Properties are emitted in sorted
// key order.
func BuildObject(props map[string]*oas3.Schema, required []string) *oas3.Schema {
	propMap := sequencedmap.New[string, *oas3.JSONSchema[oas3.Referenceable]]()
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		propMap.Set(k, wrap(props[k]))
	}
	req := append([]string(nil), required...)
	sort.Strings(req)

	return &oas3.Schema{
		Type:                 oas3.NewTypeFromString(oas3.SchemaTypeObject),
		Properties:           propMap,
		Required:             req,
		AdditionalProperties: wrap(Bottom()),
	}
}

// OneOf creates a schema matching exactly one of branches.
func OneOf(branches []*oas3.Schema) *oas3.Schema {
	schema := &oas3.Schema{}
	for _, b := range branches {
		schema.OneOf = append(schema.OneOf, wrap(b))
	}
	return schema
}

func wrap(s *oas3.Schema) *oas3.JSONSchema[oas3.Referenceable] {
	return oas3.NewJSONSchemaFromSchema[oas3.Referenceable](s)
}
