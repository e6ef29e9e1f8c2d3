package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/relokit/relokit/pkg/relokit"
	"github.com/relokit/relokit/reloc/printer"
	"github.com/relokit/relokit/reloc/regs"
)

func init() {
	rootCmd.AddCommand(newDemoCmd())
}

func newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the canonical relocation walkthrough",
		Long: `The demo command builds the standard walkthrough world in simulated
memory and moves the allocation:

  allocation [0x1000, 0x1040), escape slot 0x2000 holding 0x1010 (interior),
  escape slot 0x2008 holding 0x5000 (unrelated), one thread with rax=0x1010,
  move 0x1000 -> 0x9000.

Then prints the report and the re-keyed directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo()
		},
	}
	return cmd
}

func runDemo() error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	rt := relokit.New(relokit.Options{Logger: log})

	if _, err := rt.Track(0x1000, 64); err != nil {
		return err
	}
	buf := make([]byte, 64)
	for i := range buf {
		buf[i] = byte(i)
	}
	if err := rt.Memory().WriteBytes(0x1000, buf); err != nil {
		return err
	}

	if err := rt.RecordEscape(0x1000, 0x2000); err != nil {
		return err
	}
	if err := rt.Memory().StoreWord(0x2000, 0x1010); err != nil {
		return err
	}
	if err := rt.RecordEscape(0x1000, 0x2008); err != nil {
		return err
	}
	if err := rt.Memory().StoreWord(0x2008, 0x5000); err != nil {
		return err
	}

	th := rt.SimScheduler().AddThread("worker-0")
	if err := th.SetRegister(regs.RAX, 0x1010); err != nil {
		return err
	}

	rep, err := rt.Move(0x1000, 0x9000)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(rep)
	}
	pr := printer.New(printer.Options{NoColor: noColor, ShowEscapes: true})
	if err := pr.Report(os.Stdout, rep); err != nil {
		return err
	}
	slotA, _ := rt.Memory().LoadWord(0x2000)
	slotB, _ := rt.Memory().LoadWord(0x2008)
	rax, _ := th.Register(regs.RAX)
	fmt.Printf("  slot 0x2000 now 0x%x, slot 0x2008 still 0x%x, rax now 0x%x\n\n", slotA, slotB, rax)
	return pr.Directory(os.Stdout, rt.Directory())
}
