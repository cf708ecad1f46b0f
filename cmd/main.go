// Package cmd implements the CLI application to compare funds against
// a benchmark index.
package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/fundbench"
	"github.com/etnz/fundbench/mfapi"
	"github.com/etnz/fundbench/yahoo"
	"github.com/google/subcommands"
)

// Register registers all subcommands on the commander.
// A main package calls Register(), then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&analyzeCmd{}, "analysis")
	c.Register(&assistCmd{}, "analysis")

	c.Register(&searchCmd{}, "catalog")
	c.Register(&historyCmd{}, "catalog")

	c.Register(&topicCmd{}, "documentation")
}

// newAnalyzer wires the default providers.
func newAnalyzer(symbol string, days int) *fundbench.Analyzer {
	funds := mfapi.New()
	return &fundbench.Analyzer{
		Catalog:   funds,
		Funds:     funds,
		Benchmark: yahoo.New(symbol),
		Lookback:  days,
	}
}

// readQueries collects fund queries from the positional arguments and,
// when set, a file with one query per line (blank lines and #-comments
// skipped).
func readQueries(args []string, file string) ([]string, error) {
	queries := append([]string{}, args...)
	if file == "" {
		return queries, nil
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		queries = append(queries, line)
	}
	return queries, scanner.Err()
}

// printMarkdown renders markdown for the terminal, falling back to the
// raw text when rendering fails (e.g. no TTY).
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
