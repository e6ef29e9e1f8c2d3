package sched

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/relokit/relokit/reloc/regs"
)

func TestSim_StopWorldSingleOutstanding(t *testing.T) {
	s := NewSim(zaptest.NewLogger(t))

	require.True(t, s.StopWorld())
	assert.False(t, s.StopWorld(), "second stop before start must report busy")

	s.StartWorld()
	assert.False(t, s.Stopped())
	assert.True(t, s.StopWorld(), "stop must succeed again after start")
	s.StartWorld()
}

func TestSim_ForEachThreadVisitsInOrder(t *testing.T) {
	s := NewSim(zaptest.NewLogger(t))
	s.AddThread("idle")
	s.AddThread("worker-0")
	s.AddThread("worker-1")

	var seen []string
	err := s.ForEachThread(AllThreads, func(th Thread) error {
		seen = append(seen, th.Name())
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"idle", "worker-0", "worker-1"}, seen)
}

func TestSim_ForEachThreadFilter(t *testing.T) {
	s := NewSim(zaptest.NewLogger(t))
	s.AddThread("idle")
	w := s.AddThread("worker-0")

	var seen []int64
	err := s.ForEachThread(func(th Thread) bool { return th.Name() != "idle" }, func(th Thread) error {
		seen = append(seen, th.ID())
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{w.ID()}, seen)
}

func TestSim_ForEachThreadStopsOnError(t *testing.T) {
	s := NewSim(zaptest.NewLogger(t))
	s.AddThread("a")
	s.AddThread("b")

	boom := errors.New("boom")
	visits := 0
	err := s.ForEachThread(nil, func(Thread) error {
		visits++
		return boom
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
	assert.Equal(t, 1, visits)
}

func TestSimThread_RegisterFaultInjection(t *testing.T) {
	s := NewSim(zaptest.NewLogger(t))
	th := s.AddThread("worker-0")
	require.NoError(t, th.SetRegister(regs.RAX, 0x1010))

	r, err := th.Registers()
	require.NoError(t, err)
	v, err := r.Load(regs.RAX)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x1010), v)

	th.FailRegisterAccess()
	_, err = th.Registers()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSnapshotUnavailable))
}
