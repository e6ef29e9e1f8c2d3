package regs

import "fmt"

// Name identifies one saved register in a thread's snapshot.
type Name uint8

// The amd64 register set, in frame order. The first fifteen are the patched
// general-purpose set; RSP and RIP are present in the frame but excluded
// from patching.
const (
	R15 Name = iota
	R14
	R13
	R12
	R11
	R10
	R9
	R8
	RBP
	RDI
	RSI
	RDX
	RCX
	RBX
	RAX
	RSP
	RIP

	numRegisters = int(RIP) + 1
)

var names = [numRegisters]string{
	"r15", "r14", "r13", "r12", "r11", "r10", "r9", "r8",
	"rbp", "rdi", "rsi", "rdx", "rcx", "rbx", "rax", "rsp", "rip",
}

// String returns the conventional lowercase register name.
func (n Name) String() string {
	if int(n) >= numRegisters {
		return "reg?"
	}
	return names[n]
}

// ParseName resolves a lowercase register name like "rax" or "r12".
func ParseName(s string) (Name, error) {
	for i, name := range names {
		if name == s {
			return Name(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRegister, s)
}

// Patched returns the registers the relocation pass rewrites, in patch
// order. The slice is freshly allocated; callers may not rely on mutation.
func Patched() []Name {
	return []Name{R15, R14, R13, R12, R11, R10, R9, R8, RBP, RDI, RSI, RDX, RCX, RBX, RAX}
}

// Registers is the narrow seam over one thread's saved register snapshot.
// Implementations decide where the words actually live (a raw frame, a
// simulated thread, a debugger target).
type Registers interface {
	// Load reads the saved value of register n.
	Load(n Name) (uint64, error)

	// Store overwrites the saved value of register n.
	Store(n Name, v uint64) error
}
