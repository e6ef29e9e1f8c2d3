package regs

import (
	"fmt"

	"github.com/relokit/relokit/pkg/types"
	"github.com/relokit/relokit/reloc/alias"
)

// Patch applies the relocation rewrite rule to every patched register in one
// thread's snapshot: a register whose saved value points into
// [base, base+length) is rewritten to target plus the same offset; every
// other register, including rsp and rip, is left alone.
//
// Returns the number of registers rewritten. Any load or store failure is
// fatal to the pass for this thread.
func Patch(r Registers, base types.Addr, length uint64, target types.Addr) (int, error) {
	patched := 0
	for _, n := range Patched() {
		v, err := r.Load(n)
		if err != nil {
			return patched, fmt.Errorf("regs: read %s: %w", n, err)
		}
		off := alias.Offset(types.Addr(v), base, length)
		if off < 0 {
			continue
		}
		if err := r.Store(n, uint64(target)+uint64(off)); err != nil {
			return patched, fmt.Errorf("regs: rewrite %s: %w", n, err)
		}
		patched++
	}
	return patched, nil
}
