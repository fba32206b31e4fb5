// Package cmd implements the CLI application for the quickval calculators.
package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package calls Register() to declare the subcommands, and Execute() on
// the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&grahamCmd{}, "calculators")
	c.Register(&kellyCmd{}, "calculators")

	c.Register(&topicCmd{}, "documentation")
}

// printMarkdown renders a markdown report to the terminal, falling back to
// the raw text when rendering fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, styles.AutoStyle)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
