// Command gatesat is the test-driver harness: it runs one named
// scenario, or every scenario, against the real solver and reports
// pass/fail through its exit code. It is deliberately outside the core
// (spec.md §6.3) — nothing under pkg/ imports this package.
package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vedadux/gatesat/internal/scenario"
)

const (
	exitOK            = 0
	exitMissingArg    = 1
	exitUnknownTest   = 2
	exitAssertFailure = 3
)

func main() {
	os.Exit(run(os.Args[1:]))
}

var (
	errMissingArg  = fmt.Errorf("missing test name")
	errUnknownTest = fmt.Errorf("unknown test name")
	lastRequested  string
)

func run(args []string) int {
	var debug bool

	rootCmd := &cobra.Command{
		Use:   "gatesat",
		Short: "gatesat",
		Long:  `A test-driver harness for the gate-synthesis solver.`,
	}
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	runCmd := &cobra.Command{
		Use:   "run <test-name|all>",
		Short: "run a named scenario, or all of them",

		SilenceUsage:  true,
		SilenceErrors: true,

		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if debug {
				log.SetLevel(log.DebugLevel)
			}
			if len(args) != 1 {
				return errMissingArg
			}
			return dispatch(args[0])
		},
	}
	rootCmd.AddCommand(runCmd)
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		switch err {
		case errMissingArg:
			fmt.Fprintln(os.Stderr, "usage: gatesat run <test-name|all>")
			return exitMissingArg
		case errUnknownTest:
			fmt.Fprintf(os.Stderr, "gatesat: unknown test %q\n", lastRequested)
			return exitUnknownTest
		default:
			// Any other error, including a scenario.Violation, is treated
			// as the release-build assertion-failure outcome (spec.md
			// §6.3): the core distinguishes its own debug assertions from
			// solver results, but to this harness both report the same way.
			fmt.Fprintln(os.Stderr, err)
			return exitAssertFailure
		}
	}
	return exitOK
}

func dispatch(name string) error {
	if name == "all" {
		for _, sc := range scenario.All {
			if err := sc.Execute(); err != nil {
				return err
			}
			log.WithField("scenario", sc.Name).Info("gatesat: passed")
		}
		return nil
	}

	sc, ok := scenario.Find(name)
	if !ok {
		lastRequested = name
		return errUnknownTest
	}
	if err := sc.Execute(); err != nil {
		return err
	}
	log.WithField("scenario", sc.Name).Info("gatesat: passed")
	return nil
}
