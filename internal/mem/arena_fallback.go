//go:build !unix

package mem

import (
	"github.com/relokit/relokit/internal/format"
	"github.com/relokit/relokit/pkg/types"
)

// NewArena allocates a zero-filled heap region of at least size bytes and
// presents it at base. Platforms without mmap support get the same semantics
// with ordinary slice backing.
func NewArena(base types.Addr, size uint64) (*Arena, error) {
	if size == 0 {
		return nil, ErrBadSize
	}
	size = format.AlignPage(size)
	return &Arena{
		base:    base,
		data:    make([]byte, size),
		cleanup: func() error { return nil },
	}, nil
}
