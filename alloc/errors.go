package alloc

import "errors"

var (
	// ErrNoSpace indicates that a fixed region cannot satisfy the request.
	ErrNoSpace = errors.New("alloc: region exhausted")

	// ErrBadSize indicates a negative allocation size.
	ErrBadSize = errors.New("alloc: negative size")
)
