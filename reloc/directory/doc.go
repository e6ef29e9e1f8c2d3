// Package directory owns the process-wide table of tracked allocations.
//
// Each live allocation is one Entry: an immutable length, a base address that
// changes exactly once per successful relocation, and the escape set the
// instrumentation has accumulated for it. The Directory maps current base
// address to entry, guarantees tracked ranges never overlap, and performs the
// re-key that commits a relocation (old key out, target key in, same length,
// same escape set, by identity rather than copy).
//
// Outside a relocation the table is mutated by the allocation-create,
// allocation-free, and escape-recording hooks under the Directory's own lock.
// Inside a relocation the stop-the-world bracket is the synchronization; the
// lock is still taken, it is just uncontended.
//
// Lookup is exact-base only. Resolve exists for inspection tooling and is
// never used by the relocation path.
package directory
