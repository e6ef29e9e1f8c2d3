package move

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/relokit/relokit/pkg/types"
	"github.com/relokit/relokit/reloc/directory"
	"github.com/relokit/relokit/reloc/escape"
	"github.com/relokit/relokit/reloc/regs"
	"github.com/relokit/relokit/reloc/sched"
)

// Mover owns the public relocation entry point.
type Mover struct {
	dir    *directory.Directory
	mem    types.Memory
	sched  sched.Scheduler
	policy types.Policy
	log    *zap.Logger
}

// New wires a mover over its collaborators. A nil logger disables logging.
func New(dir *directory.Directory, mem types.Memory, s sched.Scheduler, policy types.Policy, log *zap.Logger) *Mover {
	if log == nil {
		log = zap.NewNop()
	}
	return &Mover{dir: dir, mem: mem, sched: s, policy: policy, log: log}
}

// Move relocates the tracked allocation based at source to target and fixes
// up every recorded escape slot and every thread's patched registers to
// match. Blocking only on stop-the-world acquisition; no internal retries.
//
// The returned report is valid on success and best-effort on failure.
func (m *Mover) Move(source, target types.Addr) (types.MoveReport, error) {
	start := time.Now()
	rep := types.MoveReport{Source: source, Target: target}

	if !m.sched.StopWorld() {
		m.log.Warn("relocation refused, world busy",
			zap.Stringer("source", source), zap.Stringer("target", target))
		return rep, ErrWorldBusy
	}
	// The one StartWorld for every path past this point.
	defer m.sched.StartWorld()

	entry, ok := m.dir.Lookup(source)
	if !ok {
		m.log.Error("relocation source not tracked", zap.Stringer("source", source))
		return rep, fmt.Errorf("%s: %w", source, ErrNotTracked)
	}
	rep.Length = entry.Length()

	patched, err := escape.Patch(m.mem, entry.Escapes(), source, entry.Length(), target)
	rep.EscapesPatched = patched
	if err != nil {
		m.log.Error("escape patch pass failed",
			zap.Stringer("source", source), zap.Error(err))
		return rep, fmt.Errorf("%w: %v", ErrEscapePatch, err)
	}

	if err := m.patchThreads(&rep, entry, target); err != nil {
		// Escape slots rewritten above stay rewritten. See the package
		// comment for why this abort path is asymmetric.
		m.log.Error("thread register pass failed",
			zap.Stringer("source", source), zap.Error(err))
		return rep, err
	}

	if err := m.mem.Move(target, source, entry.Length()); err != nil {
		m.log.Error("bulk copy failed",
			zap.Stringer("source", source), zap.Stringer("target", target), zap.Error(err))
		return rep, fmt.Errorf("%w: %v", ErrCopy, err)
	}

	if err := m.dir.Rekey(source, target); err != nil {
		m.log.Error("directory re-key failed",
			zap.Stringer("source", source), zap.Stringer("target", target), zap.Error(err))
		return rep, err
	}

	rep.Elapsed = time.Since(start)
	m.log.Info("relocation complete",
		zap.Stringer("source", source),
		zap.Stringer("target", target),
		zap.Uint64("length", rep.Length),
		zap.Int("escapes_patched", rep.EscapesPatched),
		zap.Int("registers_patched", rep.RegistersPatched),
		zap.Int("threads_visited", rep.ThreadsVisited),
		zap.Duration("elapsed", rep.Elapsed))
	return rep, nil
}

// patchThreads runs the register rewrite over every live thread. A shared
// failure flag accumulates per-thread outcomes; the flag is observed only
// after the iteration attempt completes, so the policy decides whether later
// threads still get patched, not whether the failure surfaces.
func (m *Mover) patchThreads(rep *types.MoveReport, entry *directory.Entry, target types.Addr) error {
	failed := false

	iterErr := m.sched.ForEachThread(sched.AllThreads, func(t sched.Thread) error {
		rep.ThreadsVisited++
		r, err := t.Registers()
		if err == nil {
			var n int
			n, err = regs.Patch(r, entry.Base(), entry.Length(), target)
			rep.RegistersPatched += n
		}
		if err != nil {
			failed = true
			m.log.Warn("thread snapshot not patchable",
				zap.Int64("thread", t.ID()),
				zap.String("name", t.Name()),
				zap.Error(err))
			if m.policy.ContinueOnThreadError {
				return nil
			}
			return err
		}
		return nil
	})
	if iterErr != nil || failed {
		return ErrThreadPatch
	}
	return nil
}
