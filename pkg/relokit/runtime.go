package relokit

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/relokit/relokit/pkg/types"
	"github.com/relokit/relokit/reloc/directory"
	"github.com/relokit/relokit/reloc/move"
	"github.com/relokit/relokit/reloc/sched"
)

// Runtime is a wired relocation runtime: directory, memory, scheduler, and
// the mover on top of them.
type Runtime struct {
	log   *zap.Logger
	mem   types.Memory
	dir   *directory.Directory
	sched sched.Scheduler
	mover *move.Mover
}

// Track registers a new live allocation. This is the allocation-create hook
// surface.
func (r *Runtime) Track(base types.Addr, length uint64) (*directory.Entry, error) {
	return r.dir.Track(base, length)
}

// Untrack removes a live allocation. This is the allocation-free hook
// surface.
func (r *Runtime) Untrack(base types.Addr) error {
	return r.dir.Untrack(base)
}

// RecordEscape records loc as a possible escape slot for the allocation
// currently based at base. This is the guard hook surface.
func (r *Runtime) RecordEscape(base, loc types.Addr) error {
	entry, ok := r.dir.Lookup(base)
	if !ok {
		return fmt.Errorf("%s: %w", base, ErrNotTracked)
	}
	entry.RecordEscape(loc)
	return nil
}

// Move relocates the allocation based at source to target. Synchronous;
// blocks only on stop-the-world acquisition. Each call gets a trace ID in
// the logs so overlapping retries can be told apart.
func (r *Runtime) Move(source, target types.Addr) (types.MoveReport, error) {
	traceID := uuid.NewString()
	r.log.Info("relocation requested",
		zap.String("trace_id", traceID),
		zap.Stringer("source", source),
		zap.Stringer("target", target))

	rep, err := r.mover.Move(source, target)
	if err != nil {
		r.log.Warn("relocation failed",
			zap.String("trace_id", traceID), zap.Error(err))
		return rep, err
	}
	r.log.Info("relocation succeeded",
		zap.String("trace_id", traceID),
		zap.Int("escapes_patched", rep.EscapesPatched),
		zap.Int("registers_patched", rep.RegistersPatched))
	return rep, nil
}

// Directory exposes the allocation directory for hooks and tooling.
func (r *Runtime) Directory() *directory.Directory { return r.dir }

// Memory exposes the backing memory.
func (r *Runtime) Memory() types.Memory { return r.mem }

// SimScheduler returns the underlying simulated scheduler, or nil when the
// Runtime was wired with a different Scheduler implementation. Convenience
// for tests and scenario tooling that need to create threads.
func (r *Runtime) SimScheduler() *sched.Sim {
	s, _ := r.sched.(*sched.Sim)
	return s
}
