package printer

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relokit/relokit/pkg/types"
	"github.com/relokit/relokit/reloc/directory"
)

func TestDirectory_PlainOutput(t *testing.T) {
	d := directory.New(nil)
	e, err := d.Track(0x1000, 4096)
	require.NoError(t, err)
	e.RecordEscape(0x2000)
	e.RecordEscape(0x2008)
	_, err = d.Track(0x9000, 64)
	require.NoError(t, err)

	var buf bytes.Buffer
	p := New(Options{NoColor: true, ShowEscapes: true})
	require.NoError(t, p.Directory(&buf, d))

	out := buf.String()
	assert.Contains(t, out, "Tracked allocations (2)")
	assert.Contains(t, out, "0x1000")
	assert.Contains(t, out, "4,096 bytes")
	assert.Contains(t, out, "2 escape slots")
	assert.Contains(t, out, "slot 0x2000")
	assert.Contains(t, out, "slot 0x2008")
	assert.Contains(t, out, "0x9000")
}

func TestReport_PlainOutput(t *testing.T) {
	rep := types.MoveReport{
		Source:           0x1000,
		Target:           0x9000,
		Length:           1 << 20,
		EscapesPatched:   3,
		RegistersPatched: 2,
		ThreadsVisited:   4,
		Elapsed:          125 * time.Microsecond,
	}

	var buf bytes.Buffer
	p := New(Options{NoColor: true})
	require.NoError(t, p.Report(&buf, rep))

	out := buf.String()
	assert.Contains(t, out, "0x1000 -> 0x9000")
	assert.Contains(t, out, "1,048,576 bytes moved")
	assert.Contains(t, out, "3 escape slots")
	assert.Contains(t, out, "2 registers")
	assert.Contains(t, out, "4 threads")
}
