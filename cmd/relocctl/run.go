package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/relokit/relokit/reloc/printer"
)

func init() {
	rootCmd.AddCommand(newRunCmd())
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <scenario.yaml>",
		Short: "Build a world from a scenario file and execute its moves",
		Long: `The run command builds the scenario's world, executes every move in order,
and prints a report per move plus the final directory. A move that fails
aborts the run with a non-zero exit; the world state printed is whatever the
failed move left behind, including the documented partial-patch hazard.

Example:
  relocctl run scenario.yaml
  relocctl run scenario.yaml --json -v`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(args[0])
		},
	}
	return cmd
}

func runRun(path string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	sc, err := loadScenario(path)
	if err != nil {
		return err
	}
	rt, cleanup, err := buildRuntime(sc, log)
	if err != nil {
		return err
	}
	defer func() { _ = cleanup() }()

	pr := printer.New(printer.Options{NoColor: noColor, ShowEscapes: true})

	for i, mv := range sc.Moves {
		source, err := parseAddr(mv.Source)
		if err != nil {
			return fmt.Errorf("move %d: %w", i, err)
		}
		target, err := parseAddr(mv.Target)
		if err != nil {
			return fmt.Errorf("move %d: %w", i, err)
		}

		rep, err := rt.Move(source, target)
		if err != nil {
			fmt.Fprintf(os.Stderr, "move %s -> %s failed: %v\n", source, target, err)
			_ = pr.Directory(os.Stdout, rt.Directory())
			return err
		}
		if jsonOut {
			if err := printJSON(rep); err != nil {
				return err
			}
			continue
		}
		if err := pr.Report(os.Stdout, rep); err != nil {
			return err
		}
	}

	if !jsonOut {
		fmt.Println()
		return pr.Directory(os.Stdout, rt.Directory())
	}
	return nil
}
