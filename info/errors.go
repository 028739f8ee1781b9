package info

import "errors"

// Construction errors. Constructors wrap these with the offending name so
// callers can use errors.Is.
var (
	ErrDuplicateName  = errors.New("duplicate name")
	ErrEmptyName      = errors.New("empty name")
	ErrNilDescriptor  = errors.New("nil descriptor")
	ErrNilVariant     = errors.New("nil enum variant")
	ErrNegativeLength = errors.New("negative array length")
	ErrUnknownScalar  = errors.New("unknown scalar kind")
	ErrUnknownForm    = errors.New("unknown specialized form")

	ErrUnexpectedDescriptor = errors.New("unexpected descriptor")
)
