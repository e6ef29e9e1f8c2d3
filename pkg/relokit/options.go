package relokit

import (
	"go.uber.org/zap"

	"github.com/relokit/relokit/pkg/types"
	"github.com/relokit/relokit/reloc/sched"
)

// Options controls Runtime construction. The zero value is usable: a no-op
// logger, the default policy, a fresh simulated memory, and a fresh
// simulated scheduler.
type Options struct {
	// Logger receives structured logs from every component.
	// Default: zap.NewNop().
	Logger *zap.Logger

	// Policy controls deployment-specific relocation behavior.
	// Default: types.DefaultPolicy().
	Policy *types.Policy

	// Memory is the address space the runtime operates on.
	// Default: a fresh simulated memory (see NewSimMemory).
	Memory types.Memory

	// Scheduler provides stop-the-world and thread enumeration.
	// Default: a fresh simulated scheduler (see Runtime.SimScheduler).
	Scheduler sched.Scheduler
}
