package strbuf

import "errors"

var (
	// ErrFixedCapacity indicates a growth request on a buffer adopted from
	// caller-owned storage, which can never relocate.
	ErrFixedCapacity = errors.New("strbuf: fixed buffer cannot grow")

	// ErrTooLarge indicates a reservation beyond the 32-bit length bound.
	ErrTooLarge = errors.New("strbuf: reservation exceeds 32-bit bound")

	// ErrFormatArg indicates a Quickf argument list that does not match the
	// template's directives. The buffer is left unmodified.
	ErrFormatArg = errors.New("strbuf: format argument mismatch")
)
