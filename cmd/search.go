package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/fundbench"
	"github.com/etnz/fundbench/mfapi"
	"github.com/google/subcommands"
)

// searchCmd resolves one query against the scheme catalog.
type searchCmd struct{}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "resolve a fund query against the scheme catalog" }
func (*searchCmd) Usage() string {
	return `mfb search <fund name>

  Resolves a (possibly incomplete) fund name against the full scheme
  catalog and prints the best match with its similarity score.
`
}

func (*searchCmd) SetFlags(f *flag.FlagSet) {}

func (c *searchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: a fund name is required.")
		return subcommands.ExitUsageError
	}
	query := strings.Join(f.Args(), " ")

	catalog, err := mfapi.New().List()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching the scheme catalog: %v\n", err)
		return subcommands.ExitFailure
	}

	match := fundbench.Match(query, catalog)
	if match == nil {
		fmt.Printf("No match found for '%s'.\n", query)
		return subcommands.ExitSuccess
	}

	fmt.Printf("➡️   Name  : %s\n", match.Entry.Name)
	fmt.Printf("    Code   : %d\n", match.Entry.Code)
	fmt.Printf("    Score  : %.3f\n", match.Score)
	fmt.Printf("\n    $ mfb analyze %q\n", match.Entry.Name)

	return subcommands.ExitSuccess
}
