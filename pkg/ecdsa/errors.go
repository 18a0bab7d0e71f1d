package ecdsa

import "errors"

var (
	// ErrBadDER is returned when parsing a malformed DER signature.
	ErrBadDER = errors.New("ecdsa: malformed DER signature")
	// ErrInvalidSignature is returned by Sign if it cannot produce a valid r.
	ErrInvalidSignature = errors.New("ecdsa: failed to produce a valid signature")
)
