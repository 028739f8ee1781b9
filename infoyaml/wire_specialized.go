//go:build !nospecialized

package infoyaml

import (
	"fmt"

	"github.com/Peperworx/introspectable/info"
)

func extensionToWire(d info.Descriptor, w *wire) (bool, error) {
	s, ok := d.(info.Specialized)
	if !ok {
		return false, nil
	}
	w.Form = s.Form.String()
	var err error
	if s.Key != nil {
		if w.Key, err = toWire(s.Key); err != nil {
			return true, fmt.Errorf("%s key: %w", w.Form, err)
		}
	}
	if s.Elem != nil {
		if w.Elem, err = toWire(s.Elem); err != nil {
			return true, fmt.Errorf("%s elem: %w", w.Form, err)
		}
	}
	return true, nil
}

func (w *wire) buildExtension(kind info.Kind) (info.Descriptor, error) {
	if kind != info.KindSpecialized {
		return nil, fmt.Errorf("%w: unknown kind %q", ErrMalformed, w.Kind)
	}
	form, err := info.ParseForm(w.Form)
	if err != nil {
		return nil, err
	}
	var key, elem info.Descriptor
	if w.Key != nil {
		if key, err = w.Key.build(); err != nil {
			return nil, fmt.Errorf("key: %w", err)
		}
	}
	if w.Elem != nil {
		if elem, err = w.Elem.build(); err != nil {
			return nil, fmt.Errorf("elem: %w", err)
		}
	}
	return info.NewSpecialized(form, key, elem)
}
