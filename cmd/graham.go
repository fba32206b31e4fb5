package cmd

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/quickval"
	"github.com/etnz/quickval/renderer"
)

// grahamCmd holds the flags for the 'graham' subcommand.
type grahamCmd struct {
	eps    float64
	price  float64
	growth float64
}

func (*grahamCmd) Name() string     { return "graham" }
func (*grahamCmd) Synopsis() string { return "compute a Graham valuation for a stock" }
func (*grahamCmd) Usage() string {
	return `qv graham -eps <eps> -price <price> [-growth <rate>] <SYMBOL>

  Computes the Graham intrinsic value for a stock from its earnings per
  share and expected growth rate, and reports the margin of safety at the
  current price together with a valuation score and a recommendation.

Usage Examples:
$ qv graham -eps 6.43 -price 175.50 AAPL
$ qv graham -eps 11.80 -price 420.00 -growth 0.10 msft

`
}

func (c *grahamCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.eps, "eps", math.NaN(), "earnings per share (required)")
	f.Float64Var(&c.price, "price", math.NaN(), "current price (required)")
	f.Float64Var(&c.growth, "growth", 0.05, "expected growth rate as a fraction (0.05 for 5%)")
}

func (c *grahamCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one stock symbol is required")
		return subcommands.ExitUsageError
	}
	if math.IsNaN(c.eps) || math.IsNaN(c.price) {
		fmt.Fprintln(os.Stderr, "Error: -eps and -price are required")
		return subcommands.ExitUsageError
	}

	analysis := quickval.AnalyzeGraham(f.Arg(0), c.eps, c.price, c.growth)
	printMarkdown(renderer.GrahamMarkdown(&analysis))

	return subcommands.ExitSuccess
}
