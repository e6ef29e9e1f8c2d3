package mem

import (
	"fmt"
	"sync"

	"github.com/relokit/relokit/internal/format"
	"github.com/relokit/relokit/pkg/types"
)

// Arena is a contiguous memory region presented at a fixed simulated base
// address. The backing bytes come from an anonymous mmap on unix builds and
// from the Go heap elsewhere; see NewArena in the build-tagged files.
type Arena struct {
	mu      sync.Mutex
	base    types.Addr
	data    []byte
	cleanup func() error
}

// Base returns the first address of the arena.
func (a *Arena) Base() types.Addr { return a.base }

// Size returns the arena length in bytes.
func (a *Arena) Size() uint64 { return uint64(len(a.data)) }

// Close releases the backing region. Safe to call more than once.
func (a *Arena) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.cleanup == nil {
		return nil
	}
	fn := a.cleanup
	a.cleanup = nil
	a.data = nil
	return fn()
}

// LoadWord reads the pointer-sized value stored at addr.
func (a *Arena) LoadWord(addr types.Addr) (uint64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	b, err := a.slice(addr, types.WordSize)
	if err != nil {
		return 0, err
	}
	return format.ReadU64(b, 0), nil
}

// StoreWord overwrites the pointer-sized value stored at addr.
func (a *Arena) StoreWord(addr types.Addr, v uint64) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	b, err := a.slice(addr, types.WordSize)
	if err != nil {
		return err
	}
	format.PutU64(b, 0, v)
	return nil
}

// Move copies n bytes from src to dst. Go's copy builtin already has memmove
// semantics for overlapping slices of the same array.
func (a *Arena) Move(dst, src types.Addr, n uint64) error {
	if n == 0 {
		return nil
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	s, err := a.slice(src, n)
	if err != nil {
		return err
	}
	d, err := a.slice(dst, n)
	if err != nil {
		return err
	}
	copy(d, s)
	return nil
}

// ReadBytes returns a copy of the n bytes starting at addr.
func (a *Arena) ReadBytes(addr types.Addr, n uint64) ([]byte, error) {
	if n == 0 {
		return nil, ErrBadSize
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	b, err := a.slice(addr, n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

// WriteBytes copies b into the arena starting at addr.
func (a *Arena) WriteBytes(addr types.Addr, b []byte) error {
	if len(b) == 0 {
		return nil
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	d, err := a.slice(addr, uint64(len(b)))
	if err != nil {
		return err
	}
	copy(d, b)
	return nil
}

// slice resolves [addr, addr+n) against the backing region. Callers hold mu.
func (a *Arena) slice(addr types.Addr, n uint64) ([]byte, error) {
	if a.data == nil {
		return nil, fmt.Errorf("arena closed: %w", ErrOutOfRange)
	}
	if addr < a.base {
		return nil, fmt.Errorf("access at %s below arena base %s: %w", addr, a.base, ErrOutOfRange)
	}
	off := uint64(addr - a.base)
	if off+n > uint64(len(a.data)) || off+n < off {
		return nil, fmt.Errorf("access at %s+%d past arena end: %w", addr, n, ErrOutOfRange)
	}
	return a.data[off : off+n], nil
}
