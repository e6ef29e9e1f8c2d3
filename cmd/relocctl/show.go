package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/relokit/relokit/reloc/printer"
)

func init() {
	rootCmd.AddCommand(newShowCmd())
}

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <scenario.yaml>",
		Short: "Build a world from a scenario file and print its directory",
		Long: `The show command builds the scenario's world and prints the allocation
directory without executing any moves. Useful for checking that a scenario
describes what you think it does.

Example:
  relocctl show scenario.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(args[0])
		},
	}
	return cmd
}

func runShow(path string) error {
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
	return pr.Directory(os.Stdout, rt.Directory())
}
