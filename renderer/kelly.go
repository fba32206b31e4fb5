package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/etnz/quickval"
)

// KellyMarkdown renders a Kelly position-sizing report to a markdown string.
// When the position was clamped, a warning line distinguishes the weak-signal
// case from the single-position cap.
func KellyMarkdown(a *quickval.KellyAnalysis) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Kelly Position Sizing")

	doc.H2("Inputs")
	if a.FromReturns {
		doc.PlainText(fmt.Sprintf("Based on %d historical returns.", a.ReturnsCount))
	} else {
		table := md.TableSet{
			Header: []string{"Statistic", "Value"},
			Rows: [][]string{
				{"Win Rate", fmt.Sprintf("%.1f%%", float64(a.WinRate))},
				{"Average Win", dollar(a.AvgWin)},
				{"Average Loss", dollar(a.AvgLoss)},
			},
		}
		doc.Table(table)
	}

	doc.H2("Kelly Fractions")
	table := md.TableSet{
		Header: []string{"Fraction", "Value"},
		Rows: [][]string{
			{"Full Kelly", a.KellyFull.String()},
			{"Fractional Kelly", a.FractionalKelly.String()},
		},
	}
	doc.Table(table)

	doc.PlainText(fmt.Sprintf("Recommended Position: %s", a.RecommendedPosition))
	doc.PlainText(fmt.Sprintf("Risk Level: %s", a.RiskLevel))

	if a.IsLimited {
		if a.RecommendedPosition == 0 {
			doc.PlainText("Warning: Kelly signal is below the 2% minimum, no position is recommended.")
		} else {
			doc.PlainText("Warning: the 25% single-position cap was applied.")
		}
	}

	return doc.String()
}
