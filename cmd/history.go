package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/fundbench"
	"github.com/etnz/fundbench/mfapi"
	"github.com/etnz/fundbench/renderer"
	"github.com/google/subcommands"
)

// historyCmd prints the recent NAV history of the best-matching fund.
type historyCmd struct {
	last int
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "print the recent NAV history of a fund" }
func (*historyCmd) Usage() string {
	return `mfb history [-n <points>] <fund name>

  Resolves the fund name against the scheme catalog and prints its most
  recent NAV points.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.last, "n", 10, "number of recent NAV points to print, 0 for all")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: a fund name is required.")
		return subcommands.ExitUsageError
	}
	query := strings.Join(f.Args(), " ")

	client := mfapi.New()
	catalog, err := client.List()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching the scheme catalog: %v\n", err)
		return subcommands.ExitFailure
	}

	match := fundbench.Match(query, catalog)
	if match == nil {
		fmt.Printf("No match found for '%s'.\n", query)
		return subcommands.ExitSuccess
	}

	hist, err := client.Fetch(match.Entry.Code)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching history for %q (code=%d): %v\n", match.Entry.Name, match.Entry.Code, err)
		return subcommands.ExitFailure
	}
	if hist.NAV.Len() == 0 {
		fmt.Printf("No NAV points for '%s' (code=%d).\n", match.Entry.Name, match.Entry.Code)
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.HistoryMarkdown(hist, c.last))
	return subcommands.ExitSuccess
}
