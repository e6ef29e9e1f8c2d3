// Package types holds the shared vocabulary of the relocation runtime:
// addresses, the memory interface the passes operate through, relocation
// policy, and the per-move report. It has no dependencies on the runtime
// packages so every layer, including the public facade, can import it.
package types

import (
	"fmt"
	"time"
)

// WordSize is the size in bytes of a pointer-sized slot. The runtime only
// targets 64-bit architectures.
const WordSize = 8

// Addr is an absolute address in the managed address space. Addresses are
// plain unsigned 64-bit values; they are never dereferenced by this module
// directly, only resolved through a Memory.
type Addr uint64

// String renders the address in the conventional hex form.
func (a Addr) String() string {
	return fmt.Sprintf("0x%x", uint64(a))
}

// Add returns the address offset by n bytes.
func (a Addr) Add(n uint64) Addr {
	return a + Addr(n)
}

// Memory is a word-addressable view of the managed address space. The
// relocation passes read and rewrite pointer-sized slots through it and the
// orchestrator performs the bulk copy through it, so the protocol never
// depends on how the bytes are actually backed.
//
// Move must have memmove semantics: the copy is correct even when the source
// and destination ranges overlap.
type Memory interface {
	// LoadWord reads the pointer-sized value stored at addr.
	LoadWord(addr Addr) (uint64, error)

	// StoreWord overwrites the pointer-sized value stored at addr.
	StoreWord(addr Addr, v uint64) error

	// Move copies n bytes from src to dst, overlap-safe.
	Move(dst, src Addr, n uint64) error

	// ReadBytes returns a copy of the n bytes starting at addr.
	ReadBytes(addr Addr, n uint64) ([]byte, error)

	// WriteBytes copies b into memory starting at addr.
	WriteBytes(addr Addr, b []byte) error
}

// Policy controls deployment-specific relocation behavior.
type Policy struct {
	// ContinueOnThreadError keeps the thread register pass iterating after a
	// thread's snapshot cannot be read or rewritten. The failure is observed
	// either way once the full iteration attempt completes; this only decides
	// whether the remaining threads still get patched.
	ContinueOnThreadError bool
}

// DefaultPolicy returns the policy used when callers pass the zero Options:
// keep iterating so a single faulty thread does not leave the rest of the
// world with stale registers on top of already-patched escapes.
func DefaultPolicy() Policy {
	return Policy{ContinueOnThreadError: true}
}

// MoveReport summarizes one relocation attempt. It is diagnostics only and
// never part of the success/failure contract.
type MoveReport struct {
	Source Addr   `json:"source"`
	Target Addr   `json:"target"`
	Length uint64 `json:"length"`

	// EscapesPatched counts escape slots that aliased the source range and
	// were rewritten. Escape slots holding unrelated values are visited but
	// not counted.
	EscapesPatched int `json:"escapes_patched"`

	// RegistersPatched counts general-purpose registers rewritten across all
	// visited threads.
	RegistersPatched int `json:"registers_patched"`

	// ThreadsVisited counts threads whose register snapshots were inspected.
	ThreadsVisited int `json:"threads_visited"`

	Elapsed time.Duration `json:"elapsed"`
}
