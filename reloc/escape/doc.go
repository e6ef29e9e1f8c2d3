// Package escape maintains the per-allocation escape table and applies the
// escape patch pass during a relocation.
//
// An escape is an address of a pointer-sized slot somewhere else in memory
// that may hold a pointer into the allocation. The set is populated by
// compiler-inserted guards (through Entry.RecordEscape on the directory side,
// which calls Set.Add) whenever a pointer derived from a tracked allocation
// is stored. Membership is conservative: a recorded slot may since have been
// overwritten with an unrelated value, and the patch pass must
// leave such slots untouched.
//
// The patch pass reads every recorded slot through the Memory, applies the
// alias test against the allocation's current range, and rewrites aliasing
// slots to the equivalent address under the new base. It never retries; any
// slot that cannot be read or written fails the whole pass, and the
// orchestrator aborts the relocation.
package escape
