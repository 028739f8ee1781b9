//go:build nospecialized

package infoyaml

import (
	"fmt"

	"github.com/Peperworx/introspectable/info"
)

func extensionToWire(info.Descriptor, *wire) (bool, error) { return false, nil }

func (w *wire) buildExtension(info.Kind) (info.Descriptor, error) {
	return nil, fmt.Errorf("%w: unknown kind %q", ErrMalformed, w.Kind)
}
