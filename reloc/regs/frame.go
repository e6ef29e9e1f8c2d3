package regs

import (
	"errors"
	"fmt"

	"github.com/relokit/relokit/internal/format"
)

// FrameSize is the byte length of an amd64 saved-GPR frame: seventeen
// little-endian 64-bit slots in the order defined by the Name constants.
const FrameSize = numRegisters * 8

var (
	// ErrBadFrame indicates a register frame buffer of the wrong size.
	ErrBadFrame = errors.New("regs: register frame must be exactly FrameSize bytes")

	// ErrUnknownRegister indicates a Name outside the architecture's set.
	ErrUnknownRegister = errors.New("regs: unknown register")
)

// Frame is the amd64 register frame codec. It decodes and rewrites named
// registers at fixed offsets in a raw byte slice, the slice a scheduler
// hands out at the architecture-defined position relative to a thread's
// control block. The frame aliases the underlying buffer; stores are visible
// to whoever owns it.
type Frame struct {
	raw []byte
}

// NewFrame wraps a raw saved-register buffer.
func NewFrame(raw []byte) (*Frame, error) {
	if len(raw) != FrameSize {
		return nil, fmt.Errorf("%w (got %d)", ErrBadFrame, len(raw))
	}
	return &Frame{raw: raw}, nil
}

// Load reads the saved value of register n.
func (f *Frame) Load(n Name) (uint64, error) {
	if int(n) >= numRegisters {
		return 0, fmt.Errorf("%w: %d", ErrUnknownRegister, n)
	}
	return format.ReadU64(f.raw, int(n)*8), nil
}

// Store overwrites the saved value of register n.
func (f *Frame) Store(n Name, v uint64) error {
	if int(n) >= numRegisters {
		return fmt.Errorf("%w: %d", ErrUnknownRegister, n)
	}
	format.PutU64(f.raw, int(n)*8, v)
	return nil
}
