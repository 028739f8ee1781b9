package introspectable

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// Resolution errors. A failed resolution returns a *DescribeError wrapping one
// of these, so callers can use errors.Is.
var (
	ErrNotDescribable          = errors.New("type has no descriptor")
	ErrDepthExceeded           = errors.New("maximum description depth exceeded")
	ErrIntrospectPanic         = errors.New("introspect method panicked")
	ErrAmbiguousSpecialization = errors.New("type matches more than one specialization")
	ErrDuplicateShape          = errors.New("shape already registered")
)

// DescribeError reports the type that could not be described and the field
// path leading to it from the type whose description was requested.
type DescribeError struct {
	Type reflect.Type
	Path []string
	Err  error
}

func (e *DescribeError) Error() string {
	var b strings.Builder
	b.WriteString("introspectable: ")
	if e.Type != nil {
		b.WriteString(e.Type.String())
	} else {
		b.WriteString("<nil>")
	}
	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	return b.String()
}

func (e *DescribeError) Unwrap() error {
	return e.Err
}

func recoveredError(p any) error {
	if err, ok := p.(error); ok {
		return fmt.Errorf("%w: %w", ErrIntrospectPanic, err)
	}
	return fmt.Errorf("%w: %v", ErrIntrospectPanic, p)
}
