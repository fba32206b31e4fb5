package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/quickval"
)

func TestGrahamMarkdown(t *testing.T) {
	a := quickval.AnalyzeGraham("aapl", 5.0, 60.0, 0.08)
	got := GrahamMarkdown(&a)

	for _, want := range []string{
		"Graham Valuation of AAPL",
		"$43.30",
		"$60.00",
		"-38.57%",
		"Graham Score: 0/20",
		"Recommendation: Avoid (1/5)",
		"EPS: $5.00",
		"Expected Growth: 8.0%",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("GrahamMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestKellyMarkdownFromStats(t *testing.T) {
	a := quickval.AnalyzeKellyStats(0.6, 100, 50, 0.25)
	got := KellyMarkdown(&a)

	for _, want := range []string{
		"Kelly Position Sizing",
		"60.0%",
		"$100.00",
		"$50.00",
		"40.00%",
		"10.00%",
		"Recommended Position: 10.00%",
		"Risk Level: Low",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("KellyMarkdown() missing %q in:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Warning") {
		t.Errorf("KellyMarkdown() has an unexpected warning in:\n%s", got)
	}
}

func TestKellyMarkdownWarnings(t *testing.T) {
	tests := []struct {
		name    string
		returns []float64
		want    string
	}{
		{
			name:    "weak signal",
			returns: []float64{0.001, -0.001, 0.001, -0.001},
			want:    "below the 2% minimum",
		},
		{
			name:    "capped position",
			returns: []float64{0.05, -0.03, 0.08},
			want:    "25% single-position cap",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := quickval.AnalyzeKellyReturns(tt.returns, 0.25)
			if !a.IsLimited {
				t.Fatalf("AnalyzeKellyReturns(%v) not limited, bad fixture", tt.returns)
			}
			got := KellyMarkdown(&a)
			if !strings.Contains(got, tt.want) {
				t.Errorf("KellyMarkdown() missing %q in:\n%s", tt.want, got)
			}
		})
	}
}

func TestKellyMarkdownFromReturns(t *testing.T) {
	a := quickval.AnalyzeKellyReturns([]float64{0.05, -0.03, 0.08}, 0.25)
	got := KellyMarkdown(&a)

	if !strings.Contains(got, "Based on 3 historical returns.") {
		t.Errorf("KellyMarkdown() missing sample count in:\n%s", got)
	}
	if strings.Contains(got, "Win Rate") {
		t.Errorf("KellyMarkdown() has an unexpected stats table in:\n%s", got)
	}
}
