//go:build nospecialized

package introspectable

import (
	"reflect"

	"github.com/Peperworx/introspectable/info"
)

type shapeRegistry struct{}

func newShapeRegistry() *shapeRegistry { return &shapeRegistry{} }

func (s *state) specialize(reflect.Type) (info.Descriptor, bool, error) {
	return nil, false, nil
}
