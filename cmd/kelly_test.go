package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"

	"github.com/etnz/quickval"
	"github.com/etnz/quickval/renderer"
)

func TestParseFloats(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []float64
		wantErr bool
	}{
		{name: "comma separated", in: "0.6,100,50", want: []float64{0.6, 100, 50}},
		{name: "space separated", in: "0.05 -0.03 0.08", want: []float64{0.05, -0.03, 0.08}},
		{name: "mixed separators", in: "0.05, -0.03, 0.08", want: []float64{0.05, -0.03, 0.08}},
		{name: "empty fields dropped", in: "1,,2", want: []float64{1, 2}},
		{name: "not a number", in: "0.6,abc,50", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFloats(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseFloats(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseFloats(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func runKelly(t *testing.T, args ...string) subcommands.ExitStatus {
	t.Helper()
	c := &kellyCmd{}
	f := flag.NewFlagSet("kelly", flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("Parse(%v) error: %v", args, err)
	}
	return c.Execute(context.Background(), f)
}

func TestKellyCmdInputModes(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want subcommands.ExitStatus
	}{
		{name: "no input mode", args: nil, want: subcommands.ExitUsageError},
		{name: "both input modes", args: []string{"-stats", "0.6,100,50", "-returns", "0.05"}, want: subcommands.ExitUsageError},
		{name: "stats arity", args: []string{"-stats", "0.6,100"}, want: subcommands.ExitUsageError},
		{name: "stats malformed", args: []string{"-stats", "0.6,abc,50"}, want: subcommands.ExitUsageError},
		{name: "win rate out of range", args: []string{"-stats", "1.5,100,50"}, want: subcommands.ExitFailure},
		{name: "stats ok", args: []string{"-stats", "0.6,100,50", "-json"}, want: subcommands.ExitSuccess},
		{name: "returns ok", args: []string{"-returns", "0.05,-0.03,0.08", "-json"}, want: subcommands.ExitSuccess},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := runKelly(t, tt.args...); got != tt.want {
				t.Errorf("Execute(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}

func TestKellyJSONRoundTrip(t *testing.T) {
	// the JSON document and the text report must display the same rounded
	// figures
	a := quickval.AnalyzeKellyStats(0.6, 100, 50, 0.25)

	out, err := encodeJSON(a)
	if err != nil {
		t.Fatalf("encodeJSON() error: %v", err)
	}

	var doc any
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	report := renderer.KellyMarkdown(&a)

	for _, path := range []string{"$.kelly_full", "$.fractional_kelly", "$.recommended_position"} {
		jval, err := jsonpath.Get(path, doc)
		if err != nil {
			t.Fatalf("jsonpath.Get(%q) error: %v", path, err)
		}
		v, ok := jval.(float64)
		if !ok {
			t.Fatalf("jsonpath.Get(%q) = %v, not a float", path, jval)
		}
		display := fmt.Sprintf("%.2f%%", v)
		if !strings.Contains(report, display) {
			t.Errorf("report does not display %s for %s:\n%s", display, path, report)
		}
	}

	jval, err := jsonpath.Get("$.risk_level", doc)
	if err != nil {
		t.Fatalf("jsonpath.Get(%q) error: %v", "$.risk_level", err)
	}
	if risk, _ := jval.(string); !strings.Contains(report, "Risk Level: "+risk) {
		t.Errorf("report does not display risk level %q:\n%s", jval, report)
	}
}
