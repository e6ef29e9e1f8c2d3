// Package alias implements the range test at the heart of every relocation
// pass: does a candidate word point into an allocation's current byte range,
// and if so at which offset.
//
// The escape table is a conservative superset, so most candidates fed through
// Offset do not alias. The test is pure and side-effect free, which makes
// redundant or stale escape entries harmless.
package alias

import "github.com/relokit/relokit/pkg/types"

// NoAlias is returned by Offset when the candidate does not fall inside the
// allocation's range.
const NoAlias int64 = -1

// Offset reports whether p lies in [base, base+length) and returns the byte
// offset p-base if so, NoAlias otherwise. Addresses are unsigned 64-bit; the
// offset is signed purely to make room for the sentinel, and is always
// non-negative on an alias.
func Offset(p, base types.Addr, length uint64) int64 {
	if length == 0 || p < base {
		return NoAlias
	}
	off := uint64(p - base)
	if off >= length {
		return NoAlias
	}
	return int64(off)
}

// Contains reports whether p lies in [base, base+length).
func Contains(p, base types.Addr, length uint64) bool {
	return Offset(p, base, length) != NoAlias
}
