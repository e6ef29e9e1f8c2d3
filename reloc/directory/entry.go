package directory

import (
	"github.com/relokit/relokit/pkg/types"
	"github.com/relokit/relokit/reloc/alias"
	"github.com/relokit/relokit/reloc/escape"
)

// Entry is the tracking record for one live allocation.
type Entry struct {
	base    types.Addr
	length  uint64
	escapes *escape.Set
}

// Base returns the current start of the allocation's byte range.
func (e *Entry) Base() types.Addr { return e.base }

// Length returns the size of the range in bytes. Length never changes for
// the life of the record.
func (e *Entry) Length() uint64 { return e.length }

// Escapes returns the allocation's escape set. The set is shared, not
// copied; a re-key carries the same set to the new entry key.
func (e *Entry) Escapes() *escape.Set { return e.escapes }

// RecordEscape is the hook surface for the compiler-inserted guards: it
// records loc as a slot that may hold a pointer into this allocation.
func (e *Entry) RecordEscape(loc types.Addr) {
	e.escapes.Add(loc)
}

// Contains reports whether addr lies inside the allocation's current range.
func (e *Entry) Contains(addr types.Addr) bool {
	return alias.Contains(addr, e.base, e.length)
}

func (e *Entry) overlaps(base types.Addr, length uint64) bool {
	return base < e.base.Add(e.length) && e.base < base.Add(length)
}
