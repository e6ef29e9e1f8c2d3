package sched

import (
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/relokit/relokit/reloc/regs"
)

// ErrSnapshotUnavailable is returned by a simulated thread marked as
// register-faulty. Stands in for a thread whose control block cannot be
// read back in a real deployment.
var ErrSnapshotUnavailable = errors.New("sched: register snapshot unavailable")

// Sim is an in-memory scheduler. Stop-the-world is single-outstanding: a
// second StopWorld before the matching StartWorld reports busy rather than
// queueing, matching the runtime's assumption that concurrent relocations
// are excluded by construction.
type Sim struct {
	mu      sync.Mutex
	stopped bool
	nextID  int64
	threads []*SimThread
	log     *zap.Logger
}

// NewSim creates a simulated scheduler with no threads. A nil logger
// disables logging.
func NewSim(log *zap.Logger) *Sim {
	if log == nil {
		log = zap.NewNop()
	}
	return &Sim{nextID: 1, log: log}
}

// SimThread is one simulated thread: a name, an amd64 register frame, and
// an optional injected register-access fault.
type SimThread struct {
	id    int64
	name  string
	frame *regs.Frame
	fail  bool
}

// ID returns the thread identifier.
func (t *SimThread) ID() int64 { return t.id }

// Name returns the thread name.
func (t *SimThread) Name() string { return t.name }

// Registers returns the thread's saved frame, or fails if the thread was
// marked faulty.
func (t *SimThread) Registers() (regs.Registers, error) {
	if t.fail {
		return nil, ErrSnapshotUnavailable
	}
	return t.frame, nil
}

// FailRegisterAccess marks the thread so Registers returns an error.
// Fault injection for the thread-patch failure paths.
func (t *SimThread) FailRegisterAccess() { t.fail = true }

// SetRegister seeds one saved register value.
func (t *SimThread) SetRegister(n regs.Name, v uint64) error {
	return t.frame.Store(n, v)
}

// Register reads one saved register value.
func (t *SimThread) Register(n regs.Name) (uint64, error) {
	return t.frame.Load(n)
}

// AddThread creates a thread with a zeroed register frame.
func (s *Sim) AddThread(name string) *SimThread {
	s.mu.Lock()
	defer s.mu.Unlock()
	frame, _ := regs.NewFrame(make([]byte, regs.FrameSize))
	t := &SimThread{id: s.nextID, name: name, frame: frame}
	s.nextID++
	s.threads = append(s.threads, t)
	s.log.Debug("thread created", zap.Int64("id", t.id), zap.String("name", name))
	return t
}

// StopWorld grants exclusive access unless it is already held.
func (s *Sim) StopWorld() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		s.log.Warn("stop-the-world refused: already stopped")
		return false
	}
	s.stopped = true
	s.log.Debug("world stopped")
	return true
}

// StartWorld releases exclusive access.
func (s *Sim) StartWorld() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = false
	s.log.Debug("world started")
}

// Stopped reports whether the world is currently stopped.
func (s *Sim) Stopped() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopped
}

// ForEachThread visits every thread matching filter in creation order.
func (s *Sim) ForEachThread(filter Filter, fn func(Thread) error) error {
	s.mu.Lock()
	threads := make([]*SimThread, len(s.threads))
	copy(threads, s.threads)
	s.mu.Unlock()

	for _, t := range threads {
		if filter != nil && !filter(t) {
			continue
		}
		if err := fn(t); err != nil {
			return err
		}
	}
	return nil
}
