package directory

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/relokit/relokit/pkg/types"
	"github.com/relokit/relokit/reloc/escape"
)

// Directory is the process-wide base-address → entry table.
type Directory struct {
	mu      sync.Mutex
	entries map[types.Addr]*Entry
	log     *zap.Logger
}

// New creates an empty directory. A nil logger disables logging.
func New(log *zap.Logger) *Directory {
	if log == nil {
		log = zap.NewNop()
	}
	return &Directory{
		entries: make(map[types.Addr]*Entry),
		log:     log,
	}
}

// Track inserts a new entry for [base, base+length). Called by the
// allocation-create hook. Rejects empty, wrapping, and overlapping ranges.
func (d *Directory) Track(base types.Addr, length uint64) (*Entry, error) {
	if length == 0 {
		return nil, ErrZeroLength
	}
	if uint64(base)+length < uint64(base) {
		return nil, fmt.Errorf("%s+%d: %w", base, length, ErrRangeWrap)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	for _, e := range d.entries {
		if e.overlaps(base, length) {
			return nil, fmt.Errorf("%s+%d vs %s+%d: %w",
				base, length, e.base, e.length, ErrOverlap)
		}
	}
	e := &Entry{base: base, length: length, escapes: escape.NewSet()}
	d.entries[base] = e
	d.log.Debug("tracking allocation",
		zap.Stringer("base", base), zap.Uint64("length", length))
	return e, nil
}

// Untrack removes the entry keyed at base. Called by the allocation-free hook.
func (d *Directory) Untrack(base types.Addr) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.entries[base]; !ok {
		return fmt.Errorf("%s: %w", base, ErrNotTracked)
	}
	delete(d.entries, base)
	d.log.Debug("untracking allocation", zap.Stringer("base", base))
	return nil
}

// Lookup resolves the entry keyed exactly at base.
func (d *Directory) Lookup(base types.Addr) (*Entry, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	e, ok := d.entries[base]
	return e, ok
}

// Rekey commits a relocation in the table: the entry keyed at old moves to
// key target, keeping its length and its escape set. The entry's base is
// updated; this is the only mutation Base ever sees.
//
// A degenerate re-key (old == target) logically re-inserts the entry and
// succeeds.
func (d *Directory) Rekey(old, target types.Addr) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	e, ok := d.entries[old]
	if !ok {
		return fmt.Errorf("%s: %w", old, ErrNotTracked)
	}
	if target != old {
		for _, other := range d.entries {
			if other != e && other.overlaps(target, e.length) {
				return fmt.Errorf("%s+%d: %w", target, e.length, ErrOverlap)
			}
		}
	}
	delete(d.entries, old)
	e.base = target
	d.entries[target] = e
	d.log.Debug("re-keyed allocation",
		zap.Stringer("old", old), zap.Stringer("new", target))
	return nil
}

// Resolve finds the entry whose range contains addr. Inspection tooling
// only; the relocation path is exact-base.
func (d *Directory) Resolve(addr types.Addr) (*Entry, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, e := range d.entries {
		if e.Contains(addr) {
			return e, true
		}
	}
	return nil, false
}

// Len returns the number of live entries.
func (d *Directory) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.entries)
}

// Entries returns the live entries ordered by base address.
func (d *Directory) Entries() []*Entry {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]*Entry, 0, len(d.entries))
	for _, e := range d.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].base < out[j].base })
	return out
}
