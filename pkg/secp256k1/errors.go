package secp256k1

import "errors"

// ErrBadSEC is returned when parsing malformed SEC-encoded point data.
var ErrBadSEC = errors.New("secp256k1: malformed SEC encoding")
