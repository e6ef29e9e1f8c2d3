package escape

import (
	"sort"
	"sync"

	"github.com/relokit/relokit/pkg/types"
)

// Set is a conservative set of escape slot addresses. Adds are idempotent,
// so a guard firing repeatedly for the same store site costs one entry.
//
// The set carries its own lock because escape recording runs under ordinary
// fine-grained scheduling, concurrently with other guards. During a
// relocation the stop-the-world bracket means the patch pass sees a frozen
// set.
type Set struct {
	mu    sync.Mutex
	slots map[types.Addr]struct{}
}

// NewSet returns an empty escape set.
func NewSet() *Set {
	return &Set{slots: make(map[types.Addr]struct{})}
}

// Add records loc as a possible escape slot.
func (s *Set) Add(loc types.Addr) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[loc] = struct{}{}
}

// Has reports whether loc was ever recorded.
func (s *Set) Has(loc types.Addr) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.slots[loc]
	return ok
}

// Len returns the number of recorded slots.
func (s *Set) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.slots)
}

// Addrs returns the recorded slot addresses in ascending order. Sorting
// keeps patch iteration and printed output deterministic.
func (s *Set) Addrs() []types.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.Addr, 0, len(s.slots))
	for a := range s.slots {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
