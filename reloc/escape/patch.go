package escape

import (
	"fmt"

	"github.com/relokit/relokit/pkg/types"
	"github.com/relokit/relokit/reloc/alias"
)

// Patch rewrites every recorded escape slot whose current value points into
// [base, base+length) to the equivalent address under target. Slots holding
// anything else (stale entries, reused slots, unrelated values) are left
// byte-identical.
//
// Returns the number of slots rewritten. The first slot that cannot be read
// or written aborts the pass; escape slots already rewritten stay rewritten
// (the caller owns that hazard, see the orchestrator).
func Patch(m types.Memory, set *Set, base types.Addr, length uint64, target types.Addr) (int, error) {
	patched := 0
	for _, slot := range set.Addrs() {
		v, err := m.LoadWord(slot)
		if err != nil {
			return patched, fmt.Errorf("escape: read slot %s: %w", slot, err)
		}
		off := alias.Offset(types.Addr(v), base, length)
		if off < 0 {
			continue
		}
		if err := m.StoreWord(slot, uint64(target)+uint64(off)); err != nil {
			return patched, fmt.Errorf("escape: rewrite slot %s: %w", slot, err)
		}
		patched++
	}
	return patched, nil
}
