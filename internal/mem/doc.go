// Package mem provides the word-addressable memory backends the relocation
// runtime operates on.
//
// The relocation protocol itself never touches raw pointers; every slot read,
// slot rewrite, and bulk copy goes through the types.Memory interface. Two
// backends implement it:
//
//   - Sim: a sparse, page-granular map keyed by page base address. Any 64-bit
//     address is usable, which makes it the backend for tests and scenario
//     files. Loads from unmapped pages fail loudly so a patch aimed at the
//     wrong slot is caught instead of silently reading zeros.
//
//   - Arena: a contiguous anonymous mmap region (heap-backed on non-unix
//     builds) presented at a caller-chosen base address. This is the backend
//     for exercising the runtime against a real writable region.
//
// Both backends are safe for concurrent use; during a relocation the
// stop-the-world bracket makes the locking moot, but the allocation and
// escape-recording hooks run under ordinary scheduling.
package mem
