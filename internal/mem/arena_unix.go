//go:build unix

package mem

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/relokit/relokit/internal/format"
	"github.com/relokit/relokit/pkg/types"
)

// NewArena maps an anonymous, zero-filled region of at least size bytes and
// presents it at base. Size is rounded up to page granularity.
func NewArena(base types.Addr, size uint64) (*Arena, error) {
	if size == 0 {
		return nil, ErrBadSize
	}
	size = format.AlignPage(size)
	if size > uint64(^uint(0)>>1) {
		return nil, fmt.Errorf("mem: arena too large to map (%d bytes)", size)
	}
	data, err := unix.Mmap(-1, 0, int(size),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("mem: mmap arena: %w", err)
	}
	cleanup := func() error {
		err := unix.Munmap(data)
		if errors.Is(err, unix.EINVAL) {
			// Treat double-unmap as no-op for callers.
			return nil
		}
		return err
	}
	return &Arena{base: base, data: data, cleanup: cleanup}, nil
}
