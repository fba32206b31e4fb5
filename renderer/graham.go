package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/etnz/quickval"
)

// GrahamMarkdown renders a Graham valuation report to a markdown string.
func GrahamMarkdown(a *quickval.GrahamAnalysis) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Graham Valuation of %s", a.Symbol))

	table := md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Intrinsic Value", dollar(a.IntrinsicValue)},
			{"Current Price", dollar(a.CurrentPrice)},
			{"Margin of Safety", a.MarginOfSafety.SignedString()},
		},
	}
	doc.Table(table)

	doc.PlainText(fmt.Sprintf("Graham Score: %d/20", a.ValuationScore))
	doc.PlainText(fmt.Sprintf("Recommendation: %s", a.Recommendation))

	doc.H2("Inputs")
	doc.PlainText(fmt.Sprintf("EPS: %s", dollar(a.EPS)))
	doc.PlainText(fmt.Sprintf("Expected Growth: %.1f%%", a.GrowthRate*100))

	return doc.String()
}
