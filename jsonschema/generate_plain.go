//go:build nospecialized

package jsonschema

import (
	"github.com/speakeasy-api/openapi/jsonschema/oas3"

	"github.com/Peperworx/introspectable/info"
)

func (g *generator) extension(info.Descriptor) (*oas3.Schema, bool, error) {
	return nil, false, nil
}
