// Package sched defines the scheduler collaborator the relocation runtime
// consumes, and a simulated implementation for tests, scenarios, and the
// CLI.
//
// The runtime needs exactly three things from a scheduler: stop the world,
// start it again, and enumerate live threads while it is stopped. Thread
// suspension, run queues, and CPU bookkeeping stay on the scheduler's side
// of the line.
package sched

import "github.com/relokit/relokit/reloc/regs"

// Thread is a handle to one live kernel thread, valid while the world is
// stopped.
type Thread interface {
	// ID returns the scheduler's identifier for the thread.
	ID() int64

	// Name returns a human-readable thread name, if the scheduler keeps one.
	Name() string

	// Registers exposes the thread's saved register snapshot for reading
	// and rewriting. Fails if the snapshot cannot be accessed.
	Registers() (regs.Registers, error)
}

// Filter selects which threads ForEachThread visits.
type Filter func(Thread) bool

// AllThreads matches every live thread.
func AllThreads(Thread) bool { return true }

// Scheduler is the consumed interface.
type Scheduler interface {
	// StopWorld requests exclusive access. False means the world could not
	// be stopped and the caller must treat the operation as a no-op.
	StopWorld() bool

	// StartWorld releases exclusive access. Called exactly once for every
	// successful StopWorld.
	StartWorld()

	// ForEachThread invokes fn once per live thread matching filter. A nil
	// filter matches all threads. If fn returns an error, iteration stops
	// and the error is returned.
	ForEachThread(filter Filter, fn func(Thread) error) error
}
