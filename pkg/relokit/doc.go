// Package relokit is the public entry point for the relocation runtime: it
// wires a directory, a memory backend, and a scheduler into a Runtime that
// can move a live tracked allocation to a new address while every recorded
// escape slot and every suspended thread's general-purpose registers are
// rewritten to match.
//
// The moved code cooperates only through the conservative escape table the
// compiler-side instrumentation populates via RecordEscape; there are no
// read or write barriers at use sites.
//
// Basic use:
//
//	rt := relokit.New(relokit.Options{})
//	entry, _ := rt.Track(0x1000, 64)
//	entry.RecordEscape(0x2000)
//	rep, err := rt.Move(0x1000, 0x9000)
//
// What a relocation does NOT cover, by design: stack-pointer and
// instruction-pointer registers are never patched, and thread stack memory
// is never scanned, so an allocation referenced only from a live stack
// frame will not be fixed up. A failed thread pass also does not roll back
// escape slots that were already rewritten. See the reloc/move package
// documentation for the full contract.
package relokit
