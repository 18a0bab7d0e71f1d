package bhash

import "errors"

// ErrBadLength is returned when a fixed-width digest is constructed from the
// wrong number of bytes.
var ErrBadLength = errors.New("bhash: wrong digest length")
