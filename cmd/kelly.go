package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/subcommands"

	"github.com/etnz/quickval"
	"github.com/etnz/quickval/renderer"
)

// kellyCmd holds the flags for the 'kelly' subcommand.
type kellyCmd struct {
	stats    string
	returns  string
	fraction float64
	jsonOut  bool
}

func (*kellyCmd) Name() string     { return "kelly" }
func (*kellyCmd) Synopsis() string { return "compute a Kelly-criterion position size" }
func (*kellyCmd) Usage() string {
	return `qv kelly (-stats <win_rate,avg_win,avg_loss> | -returns <r1,r2,...>) [-fraction <f>] [-json]

  Computes the Kelly criterion position size from either win/loss trading
  statistics or a historical returns series, applies a fractional-Kelly
  multiplier and position limits, and assesses a risk tier. Exactly one of
  -stats or -returns must be given.

Usage Examples:
$ qv kelly -stats '0.6,100,50'
$ qv kelly -returns '0.05,-0.03,0.08' -fraction 0.5
$ qv kelly -stats '0.55,80,60' -json

`
}

func (c *kellyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.stats, "stats", "", "win rate (0-1), average win and average loss, comma or space separated")
	f.StringVar(&c.returns, "returns", "", "historical returns, comma or space separated")
	f.Float64Var(&c.fraction, "fraction", 0.25, "fractional Kelly multiplier (0.25 for quarter Kelly)")
	f.BoolVar(&c.jsonOut, "json", false, "print the result as a JSON object")
}

func (c *kellyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if (c.stats == "") == (c.returns == "") {
		fmt.Fprintln(os.Stderr, "Error: exactly one of -stats or -returns is required")
		return subcommands.ExitUsageError
	}

	var analysis quickval.KellyAnalysis
	if c.stats != "" {
		vals, err := parseFloats(c.stats)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -stats: %v\n", err)
			return subcommands.ExitUsageError
		}
		if len(vals) != 3 {
			fmt.Fprintf(os.Stderr, "Error: -stats takes exactly 3 values (win rate, average win, average loss), got %d\n", len(vals))
			return subcommands.ExitUsageError
		}
		winRate, avgWin, avgLoss := vals[0], vals[1], vals[2]
		if winRate < 0 || winRate > 1 {
			fmt.Println("Error: win rate must be between 0 and 1")
			return subcommands.ExitFailure
		}
		analysis = quickval.AnalyzeKellyStats(winRate, avgWin, avgLoss, c.fraction)
	} else {
		vals, err := parseFloats(c.returns)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -returns: %v\n", err)
			return subcommands.ExitUsageError
		}
		if len(vals) == 0 {
			fmt.Fprintln(os.Stderr, "Error: -returns takes at least one value")
			return subcommands.ExitUsageError
		}
		analysis = quickval.AnalyzeKellyReturns(vals, c.fraction)
	}

	if c.jsonOut {
		out, err := encodeJSON(analysis)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding result: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Print(out)
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.KellyMarkdown(&analysis))
	return subcommands.ExitSuccess
}

// parseFloats parses a comma or space separated list of floats.
func parseFloats(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	vals := make([]float64, 0, len(fields))
	for _, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", field)
		}
		vals = append(vals, v)
	}
	return vals, nil
}

// encodeJSON encodes the analysis with stable field order, indented, and with
// HTML escaping disabled so that UTF-8 text passes through unescaped.
func encodeJSON(a quickval.KellyAnalysis) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(a); err != nil {
		return "", err
	}
	return buf.String(), nil
}
