package mem

import "errors"

var (
	// ErrUnmapped indicates a load touched a page that was never mapped or
	// written.
	ErrUnmapped = errors.New("mem: address not mapped")

	// ErrOutOfRange indicates an access outside an arena's backing region.
	ErrOutOfRange = errors.New("mem: address out of arena range")

	// ErrBadSize indicates a zero-byte or overflowing range was requested.
	ErrBadSize = errors.New("mem: bad range size")
)
