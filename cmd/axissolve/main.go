// Command axissolve searches for a Builder winning strategy in the
// axis colouring game: given a desired colour count F, a clique bound
// K, and an event budget, it reports whether the Builder can force the
// adversary past F colours before the axis is confined to maxEvents
// events, and optionally writes the winning strategy to a file.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/axisgame/solver/engine"
	"github.com/axisgame/solver/notation"
)

var (
	strategyFile string
	hashMB       int
	debug        bool
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetPrefix("info: ")
	log.SetFlags(0)

	if err := newRootCmd().Execute(); err != nil {
		fmt.Println("FAILURE!")
		fmt.Println(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "axissolve F K maxEvents",
		Short: "Search for a Builder winning strategy in the axis colouring game",
		Long: `axissolve searches for a strategy that lets Builder force an on-line
interval colouring adversary to use at least F distinct colours, under
a maximum simultaneous clique of K segments, within an event budget of
maxEvents insertions and reductions.`,
		Args:          cobra.ExactArgs(3),
		RunE:          runSolve,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	var flags *pflag.FlagSet = cmd.Flags()
	flags.StringVarP(&strategyFile, "strategy-file", "s", "", "write the winning strategy to this file")
	flags.IntVarP(&hashMB, "hash-mb", "m", 0, "pre-size the transposition table for roughly this many megabytes")
	flags.BoolVarP(&debug, "debug", "d", false, "render the axis at the end of the search")
	return cmd
}

func runSolve(cmd *cobra.Command, args []string) error {
	f, k, maxEvents, err := parseArgs(args)
	if err != nil {
		return err
	}

	start := time.Now()
	solver := engine.NewSolverWithHashSize(k, f, maxEvents, hashMB)
	won := solver.Solve()
	elapsed := time.Since(start)

	if !won {
		return errors.Errorf(
			"Builder cannot force %d colours with clique bound %d and an event budget of %d.\n%d states discovered in %s.",
			f, k, maxEvents, solver.StatesDiscovered(), elapsed)
	}

	fmt.Println("SUCCESS!")
	fmt.Printf("Builder can force %d colours with clique bound %d and an event budget of %d.\n", f, k, maxEvents)
	fmt.Printf("%d states discovered in %s.\n", solver.StatesDiscovered(), elapsed)

	if debug {
		log.Printf("final axis: %s", solver.Axis().Render())
	}

	if strategyFile != "" {
		if err := writeStrategyFile(strategyFile, k, f, solver); err != nil {
			return errors.Wrap(err, "writing strategy file")
		}
		log.Printf("strategy written to %s", strategyFile)
	}
	return nil
}

func parseArgs(args []string) (f, k, maxEvents int, err error) {
	f, err = parsePositiveArg(args[0], "F")
	if err != nil {
		return 0, 0, 0, err
	}
	k, err = parsePositiveArg(args[1], "K")
	if err != nil {
		return 0, 0, 0, err
	}
	maxEvents, err = parsePositiveArg(args[2], "maxEvents")
	if err != nil {
		return 0, 0, 0, err
	}
	if maxEvents%2 != 0 {
		return 0, 0, 0, errors.Errorf("maxEvents must be even, got %d", maxEvents)
	}
	return f, k, maxEvents, nil
}

func parsePositiveArg(raw, name string) (int, error) {
	var v int
	if _, err := fmt.Sscanf(raw, "%d", &v); err != nil {
		return 0, errors.Wrapf(err, "parsing %s", name)
	}
	if v <= 0 {
		return 0, errors.Errorf("%s must be a positive integer, got %q", name, raw)
	}
	return v, nil
}

func writeStrategyFile(path string, k, f int, solver *engine.Solver) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()
	return notation.WriteStrategy(out, k, f, solver.ExtractStrategy())
}
