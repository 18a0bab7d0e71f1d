package bitcoin

import "errors"

var (
	// ErrScriptTooLong is returned when a data push is 520 bytes or larger.
	ErrScriptTooLong = errors.New("bitcoin: script push exceeds maximum length")
	// ErrScriptParse is returned when a script's declared push length does
	// not match the bytes actually available.
	ErrScriptParse = errors.New("bitcoin: malformed script encoding")
	// ErrScriptFail is returned by Script.Execute when an opcode is unwired,
	// an opcode handler reports failure, or the final stack is empty. A
	// final top element that is Script-false yields false with a nil error.
	// The error deliberately does not distinguish the reason, matching
	// consensus-layer semantics.
	ErrScriptFail = errors.New("bitcoin: script evaluation failed")
	// ErrTxIdMismatch is returned when a fetched transaction's computed id
	// disagrees with the one requested.
	ErrTxIdMismatch = errors.New("bitcoin: fetched transaction id mismatch")
	// ErrFetchError wraps an underlying transport failure from a Fetcher.
	ErrFetchError = errors.New("bitcoin: transaction fetch failed")
	// ErrTxParse is returned when a transaction's wire encoding is malformed.
	ErrTxParse = errors.New("bitcoin: malformed transaction encoding")
)
