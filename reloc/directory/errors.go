package directory

import "errors"

var (
	// ErrNotTracked indicates no entry is keyed at the requested base address.
	ErrNotTracked = errors.New("directory: allocation not tracked")

	// ErrOverlap indicates the requested range overlaps a live entry.
	ErrOverlap = errors.New("directory: range overlaps tracked allocation")

	// ErrZeroLength indicates an attempt to track an empty range.
	ErrZeroLength = errors.New("directory: zero-length allocation")

	// ErrRangeWrap indicates base+length wraps the 64-bit address space.
	ErrRangeWrap = errors.New("directory: range wraps address space")
)
