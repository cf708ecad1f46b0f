package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fundbench"
	"github.com/etnz/fundbench/renderer"
	"github.com/etnz/fundbench/yahoo"
	"github.com/google/subcommands"
)

// analyzeCmd holds the flags for the 'analyze' subcommand.
type analyzeCmd struct {
	days    int
	symbol  string
	queries string
	output  string
}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "compare funds against the benchmark index" }
func (*analyzeCmd) Usage() string {
	return `mfb analyze [-days <n>] [-symbol <index>] [-q <file>] [-o <report.xlsx>] [query ...]

  Resolves each fund query against the scheme catalog, aligns the
  fund's NAV history with the benchmark's daily bars over the trailing
  window, and prints the per-fund alignment metrics. Funds that cannot
  be matched, fetched, or aligned are skipped with a reason.

Usage Examples:
# Analyze two funds over the default 30-day window.
$ mfb analyze "Axis Small Cap Fund - Direct plan" "Parag Parikh ELSS Tax Saver"

# Read queries from a file and also write an xlsx workbook.
$ mfb analyze -q queries.txt -o report.xlsx
`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.days, "days", fundbench.DefaultLookback, "trailing window in days")
	f.StringVar(&c.symbol, "symbol", yahoo.DefaultSymbol, "benchmark index symbol")
	f.StringVar(&c.queries, "q", "", "file with one fund query per line")
	f.StringVar(&c.output, "o", "", "write an xlsx workbook to this path")
}

func (c *analyzeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	queries, err := readQueries(f.Args(), c.queries)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading queries: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(queries) == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one fund query is required.")
		return subcommands.ExitUsageError
	}

	report, err := newAnalyzer(c.symbol, c.days).Run(queries)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SummaryMarkdown(report))

	if c.output != "" {
		if err := renderer.WriteWorkbook(c.output, report); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing workbook %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(os.Stderr, "✅ Report saved to %s\n", c.output)
	}
	return subcommands.ExitSuccess
}
