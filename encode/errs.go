package encode

import (
	"errors"
	"fmt"
)

var ErrEncoding = errors.New("encoding error")

var (
	// ErrInvalidInput marks a value handed to the object encoder that is
	// not an object.
	ErrInvalidInput = fmt.Errorf("%w: input is not an object", ErrEncoding)
	// ErrUnsupportedKey marks an object key that is neither a string nor
	// a symbol.
	ErrUnsupportedKey = fmt.Errorf("%w: unsupported key type", ErrEncoding)
	// ErrEmptyMappingItem marks an array item that is an object with no
	// fields, leaving nothing to put on the dash line.
	ErrEmptyMappingItem = fmt.Errorf("%w: empty object in array", ErrEncoding)
)
