package mem

import (
	"fmt"
	"sync"

	"github.com/relokit/relokit/internal/format"
	"github.com/relokit/relokit/pkg/types"
)

// Sim is a sparse simulated memory. Pages are materialized on first write,
// so scenarios can scatter allocations and escape slots anywhere in the
// 64-bit address space without reserving backing storage.
type Sim struct {
	mu    sync.Mutex
	pages map[uint64][]byte // keyed by page base
}

// NewSim creates an empty simulated memory.
func NewSim() *Sim {
	return &Sim{pages: make(map[uint64][]byte)}
}

// MapRange pre-maps (zero-filled) every page overlapping [addr, addr+n).
// Useful when a test wants subsequent loads of untouched bytes to succeed.
func (s *Sim) MapRange(addr types.Addr, n uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n == 0 {
		return
	}
	for page := format.PageBase(uint64(addr)); page < uint64(addr)+n; page += format.PageSize {
		if _, ok := s.pages[page]; !ok {
			s.pages[page] = make([]byte, format.PageSize)
		}
	}
}

// LoadWord reads the pointer-sized value stored at addr.
func (s *Sim) LoadWord(addr types.Addr) (uint64, error) {
	var buf [types.WordSize]byte
	if err := s.readAt(addr, buf[:]); err != nil {
		return 0, err
	}
	return format.ReadU64(buf[:], 0), nil
}

// StoreWord overwrites the pointer-sized value stored at addr, mapping the
// underlying page(s) on demand.
func (s *Sim) StoreWord(addr types.Addr, v uint64) error {
	var buf [types.WordSize]byte
	format.PutU64(buf[:], 0, v)
	return s.writeAt(addr, buf[:])
}

// Move copies n bytes from src to dst. The copy is staged through a scratch
// buffer, so overlapping ranges behave like memmove.
func (s *Sim) Move(dst, src types.Addr, n uint64) error {
	if n == 0 {
		return nil
	}
	b, err := s.ReadBytes(src, n)
	if err != nil {
		return err
	}
	return s.WriteBytes(dst, b)
}

// ReadBytes returns a copy of the n bytes starting at addr.
func (s *Sim) ReadBytes(addr types.Addr, n uint64) ([]byte, error) {
	if n == 0 {
		return nil, ErrBadSize
	}
	b := make([]byte, n)
	if err := s.readAt(addr, b); err != nil {
		return nil, err
	}
	return b, nil
}

// WriteBytes copies b into memory starting at addr, mapping pages on demand.
func (s *Sim) WriteBytes(addr types.Addr, b []byte) error {
	return s.writeAt(addr, b)
}

func (s *Sim) readAt(addr types.Addr, dst []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := uint64(addr)
	for len(dst) > 0 {
		page := format.PageBase(a)
		pb, ok := s.pages[page]
		if !ok {
			return fmt.Errorf("load at 0x%x: %w", a, ErrUnmapped)
		}
		off := a - page
		n := copy(dst, pb[off:])
		dst = dst[n:]
		a += uint64(n)
	}
	return nil
}

func (s *Sim) writeAt(addr types.Addr, src []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := uint64(addr)
	for len(src) > 0 {
		page := format.PageBase(a)
		pb, ok := s.pages[page]
		if !ok {
			pb = make([]byte, format.PageSize)
			s.pages[page] = pb
		}
		off := a - page
		n := copy(pb[off:], src)
		src = src[n:]
		a += uint64(n)
	}
	return nil
}
