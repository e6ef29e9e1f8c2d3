// Package regs applies the relocation rewrite rule to suspended threads'
// saved general-purpose registers.
//
// The dependency on a raw, architecture-defined register frame layout is
// deliberately confined to the Frame codec: everything else works against
// the two-method Registers interface ("load named register", "store named
// register"), so the patch pass stays architecture-agnostic and testable
// with any snapshot implementation.
//
// Two registers are never patched: the stack pointer and the instruction
// pointer. The runtime also does not scan a thread's stack memory for
// escaped pointers. Both are documented limitations of the relocation
// design, not oversights: an allocation referenced only from a live stack
// frame will not be fixed up.
package regs
