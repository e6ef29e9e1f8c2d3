package relokit_test

import (
	"fmt"

	"github.com/relokit/relokit/pkg/relokit"
)

// Example walks the canonical relocation: a 64-byte allocation at 0x1000,
// one escape slot holding an interior pointer, moved to 0x9000.
func Example() {
	rt := relokit.New(relokit.Options{})

	// Allocation-create hook: start tracking [0x1000, 0x1040).
	if _, err := rt.Track(0x1000, 64); err != nil {
		fmt.Println("track:", err)
		return
	}

	// Compiler guard fires: slot 0x2000 may hold a pointer into it.
	_ = rt.RecordEscape(0x1000, 0x2000)
	_ = rt.Memory().StoreWord(0x2000, 0x1010)

	// Seed the allocation bytes and move it.
	_ = rt.Memory().WriteBytes(0x1000, make([]byte, 64))
	rep, err := rt.Move(0x1000, 0x9000)
	if err != nil {
		fmt.Println("move:", err)
		return
	}

	v, _ := rt.Memory().LoadWord(0x2000)
	fmt.Printf("escapes patched: %d\n", rep.EscapesPatched)
	fmt.Printf("slot now: 0x%x\n", v)
	// Output:
	// escapes patched: 1
	// slot now: 0x9010
}

// ExampleRuntime_Move_busy shows the only externally visible "busy" signal:
// a refused stop-the-world. The caller decides whether to retry.
func ExampleRuntime_Move_busy() {
	rt := relokit.New(relokit.Options{})
	_, _ = rt.Track(0x1000, 64)
	_ = rt.Memory().WriteBytes(0x1000, make([]byte, 64))

	// Someone else holds the world stopped.
	rt.SimScheduler().StopWorld()
	defer rt.SimScheduler().StartWorld()

	if _, err := rt.Move(0x1000, 0x9000); err != nil {
		fmt.Println("retry later:", err)
	}
	// Output:
	// retry later: move: could not stop the world
}
