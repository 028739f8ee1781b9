// Package infoyaml reads and writes descriptors as versioned YAML documents.
//
// A document is a mapping with a version and the descriptor tree:
//
//	version: 1
//	descriptor:
//	  kind: struct
//	  name: Point
//	  fields:
//	    - name: x
//	      type: {kind: scalar, scalar: i32}
//
// Every node carries its kind. Struct fields and named variant fields are
// lists of name/type pairs sorted by name; tuple slots are listed under
// items. Decoding rebuilds the tree through the info constructors, so a
// document naming a field twice is rejected.
package infoyaml

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Peperworx/introspectable/info"
)

// Version is the document version written by Marshal and Encode.
const Version = 1

var (
	// ErrUnsupportedVersion is returned for documents of any other version.
	ErrUnsupportedVersion = errors.New("infoyaml: unsupported version")
	// ErrMalformed is returned for documents that do not describe a valid tree.
	ErrMalformed = errors.New("infoyaml: malformed descriptor")
)

type document struct {
	Version    int   `yaml:"version"`
	Descriptor *wire `yaml:"descriptor"`
}

// Marshal encodes d as a YAML document.
func Marshal(d info.Descriptor) ([]byte, error) {
	n, err := Encode(d)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(n); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a document written by Marshal. Unknown keys are rejected.
func Unmarshal(b []byte) (info.Descriptor, error) {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return doc.build()
}

// Encode returns the document node for d.
func Encode(d info.Descriptor) (*yaml.Node, error) {
	w, err := toWire(d)
	if err != nil {
		return nil, err
	}
	var n yaml.Node
	if err := n.Encode(document{Version: Version, Descriptor: w}); err != nil {
		return nil, err
	}
	return &n, nil
}

// Decode rebuilds a descriptor from a document node.
func Decode(n *yaml.Node) (info.Descriptor, error) {
	if n == nil {
		return nil, fmt.Errorf("%w: nil node", ErrMalformed)
	}
	var doc document
	if err := n.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return doc.build()
}

// ToValue returns the generic form of d: the descriptor tree as nested
// map[string]any and []any values, without the version envelope.
func ToValue(d info.Descriptor) (any, error) {
	w, err := toWire(d)
	if err != nil {
		return nil, err
	}
	var n yaml.Node
	if err := n.Encode(w); err != nil {
		return nil, err
	}
	var v any
	if err := n.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

func (doc document) build() (info.Descriptor, error) {
	if doc.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, doc.Version)
	}
	if doc.Descriptor == nil {
		return nil, fmt.Errorf("%w: missing descriptor", ErrMalformed)
	}
	return doc.Descriptor.build()
}

// FromValue rebuilds a descriptor from its generic form, as returned by
// ToValue or produced by a query over it.
func FromValue(v any) (info.Descriptor, error) {
	var n yaml.Node
	if err := n.Encode(v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	var w wire
	if err := n.Decode(&w); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return w.build()
}
