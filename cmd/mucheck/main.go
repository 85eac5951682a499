// Command mucheck is the model-checking driver CLI:
// check(lts, formula, algorithm) -> set of states. It only parses
// .aut/.mcf files (via packages internal/aut and internal/mcf) and calls
// package muops.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/katalvlaran/parityscope/internal/aut"
	"github.com/katalvlaran/parityscope/internal/mcf"
	"github.com/katalvlaran/parityscope/muops"
)

type cli struct {
	LTS       string `arg:"" type:"existingfile" help:"Path to an Aldebaran (.aut) LTS file."`
	Formula   string `arg:"" type:"existingfile" help:"Path to a .mcf mu-calculus formula file."`
	Algorithm string `enum:"naive,emerson-lei" default:"emerson-lei" help:"Evaluation discipline: naive or emerson-lei."`
	Debug     bool   `help:"Log at debug level instead of info."`
}

func main() {
	var c cli
	kctx := kong.Parse(&c,
		kong.Name("mucheck"),
		kong.Description("Evaluate a mu-calculus formula against a labelled transition system."),
		kong.UsageOnError(),
	)

	if err := run(&c); err != nil {
		kctx.FatalIfErrorf(err)
	}
}

func run(c *cli) error {
	logger, err := newLogger(c.Debug)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck // best-effort flush on exit

	ltsFile, err := os.Open(c.LTS)
	if err != nil {
		return fmt.Errorf("mucheck: %w", err)
	}
	defer ltsFile.Close()

	machine, err := aut.Parse(ltsFile)
	if err != nil {
		return fmt.Errorf("mucheck: parsing %s: %w", c.LTS, err)
	}

	formulaBytes, err := os.ReadFile(c.Formula)
	if err != nil {
		return fmt.Errorf("mucheck: %w", err)
	}
	f, err := mcf.Parse(string(formulaBytes))
	if err != nil {
		return fmt.Errorf("mucheck: parsing %s: %w", c.Formula, err)
	}

	alg := muops.EmersonLei
	if c.Algorithm == "naive" {
		alg = muops.Naive
	}

	states, err := muops.Check(machine, f, alg)
	if err != nil {
		return fmt.Errorf("mucheck: %w", err)
	}

	logger.Info("check complete",
		zap.String("lts", c.LTS),
		zap.String("formula", c.Formula),
		zap.String("algorithm", alg.String()),
		zap.Int("satisfying_states", len(states)),
	)
	fmt.Println(states.Sorted())

	return nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
