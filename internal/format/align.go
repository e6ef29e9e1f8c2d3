package format

// Alignment utilities for the managed address space.

const (
	// WordAlignmentMask is the mask for 8-byte (pointer-sized) alignment.
	WordAlignmentMask = 7

	// PageAlignmentMask is the mask for 4KB page alignment.
	PageAlignmentMask = 4095

	// PageSize is the page granularity used by the simulated memory and the
	// mmap arena.
	PageSize = 4096
)

// Align8 returns n aligned up to the next 8-byte boundary.
//
// Example:
//
//	Align8(1)  = 8
//	Align8(8)  = 8
//	Align8(9)  = 16
func Align8(n uint64) uint64 {
	return (n + WordAlignmentMask) &^ WordAlignmentMask
}

// AlignPage returns n aligned up to the next 4KB boundary.
//
// Example:
//
//	AlignPage(1)    = 4096
//	AlignPage(4096) = 4096
//	AlignPage(4097) = 8192
func AlignPage(n uint64) uint64 {
	return (n + PageAlignmentMask) &^ PageAlignmentMask
}

// PageBase returns the start of the page containing addr.
func PageBase(addr uint64) uint64 {
	return addr &^ PageAlignmentMask
}
