package relokit_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/relokit/relokit/pkg/relokit"
	"github.com/relokit/relokit/reloc/regs"
)

func newTestRuntime(t *testing.T) *relokit.Runtime {
	t.Helper()
	return relokit.New(relokit.Options{Logger: zaptest.NewLogger(t)})
}

func TestRuntime_EndToEnd(t *testing.T) {
	rt := newTestRuntime(t)

	_, err := rt.Track(0x1000, 64)
	require.NoError(t, err)
	require.NoError(t, rt.Memory().WriteBytes(0x1000, bytesPattern(64)))

	require.NoError(t, rt.RecordEscape(0x1000, 0x2000))
	require.NoError(t, rt.Memory().StoreWord(0x2000, 0x1010))

	th := rt.SimScheduler().AddThread("worker-0")
	require.NoError(t, th.SetRegister(regs.RSI, 0x1030))

	before, err := rt.Memory().ReadBytes(0x1000, 64)
	require.NoError(t, err)

	rep, err := rt.Move(0x1000, 0x9000)
	require.NoError(t, err)
	assert.Equal(t, 1, rep.EscapesPatched)
	assert.Equal(t, 1, rep.RegistersPatched)

	after, err := rt.Memory().ReadBytes(0x9000, 64)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	v, err := rt.Memory().LoadWord(0x2000)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x9010), v)

	rv, err := th.Register(regs.RSI)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x9030), rv)

	// A second move of the old base must now fail.
	_, err = rt.Move(0x1000, 0x4000)
	require.Error(t, err)
	assert.True(t, errors.Is(err, relokit.ErrNotTracked))
}

func TestRuntime_RecordEscapeUnknownBase(t *testing.T) {
	rt := newTestRuntime(t)

	err := rt.RecordEscape(0x1000, 0x2000)
	require.Error(t, err)
	assert.True(t, errors.Is(err, relokit.ErrNotTracked))
}

func TestRuntime_UntrackStopsMoves(t *testing.T) {
	rt := newTestRuntime(t)
	_, err := rt.Track(0x1000, 64)
	require.NoError(t, err)

	require.NoError(t, rt.Untrack(0x1000))

	_, err = rt.Move(0x1000, 0x9000)
	require.Error(t, err)
	assert.True(t, errors.Is(err, relokit.ErrNotTracked))
}

func TestRuntime_ArenaBackend(t *testing.T) {
	arena, closeArena, err := relokit.NewArena(0x100000, 1<<16)
	require.NoError(t, err)
	defer func() { require.NoError(t, closeArena()) }()

	rt := relokit.New(relokit.Options{
		Logger: zaptest.NewLogger(t),
		Memory: arena,
	})

	_, err = rt.Track(0x100040, 64)
	require.NoError(t, err)
	require.NoError(t, rt.Memory().WriteBytes(0x100040, bytesPattern(64)))
	require.NoError(t, rt.RecordEscape(0x100040, 0x100000))
	require.NoError(t, rt.Memory().StoreWord(0x100000, 0x100050))

	rep, err := rt.Move(0x100040, 0x108000)
	require.NoError(t, err)
	assert.Equal(t, 1, rep.EscapesPatched)

	v, err := rt.Memory().LoadWord(0x100000)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x108010), v)

	got, err := rt.Memory().ReadBytes(0x108000, 64)
	require.NoError(t, err)
	assert.Equal(t, bytesPattern(64), got)
}

func bytesPattern(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i * 7)
	}
	return b
}
