package relokit

import (
	"go.uber.org/zap"

	"github.com/relokit/relokit/internal/mem"
	"github.com/relokit/relokit/pkg/types"
	"github.com/relokit/relokit/reloc/directory"
	"github.com/relokit/relokit/reloc/move"
	"github.com/relokit/relokit/reloc/sched"
)

// New wires a Runtime from the given options, filling in defaults for every
// zero field.
func New(opts Options) *Runtime {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	policy := types.DefaultPolicy()
	if opts.Policy != nil {
		policy = *opts.Policy
	}
	memory := opts.Memory
	if memory == nil {
		memory = mem.NewSim()
	}
	scheduler := opts.Scheduler
	if scheduler == nil {
		scheduler = sched.NewSim(log.Named("sched"))
	}
	dir := directory.New(log.Named("directory"))
	return &Runtime{
		log:   log,
		mem:   memory,
		dir:   dir,
		sched: scheduler,
		mover: move.New(dir, memory, scheduler, policy, log.Named("move")),
	}
}

// NewSimMemory returns a fresh sparse simulated memory. Useful when a caller
// wants to seed memory contents before constructing the Runtime.
func NewSimMemory() types.Memory {
	return mem.NewSim()
}

// NewArena maps a contiguous zero-filled region of at least size bytes,
// presented at base, and returns it with its release function. Size is
// rounded up to page granularity.
func NewArena(base types.Addr, size uint64) (types.Memory, func() error, error) {
	a, err := mem.NewArena(base, size)
	if err != nil {
		return nil, nil, err
	}
	return a, a.Close, nil
}
