package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fundbench"
	"github.com/etnz/fundbench/agent"
	"github.com/etnz/fundbench/renderer"
	"github.com/etnz/fundbench/yahoo"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd runs the analysis and asks the AI analyst to comment on
// the summary.
type assistCmd struct {
	days    int
	symbol  string
	queries string
	model   string
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "run the analysis and get an AI commentary" }
func (*assistCmd) Usage() string {
	return `mfb assist [-days <n>] [-symbol <index>] [-q <file>] [query ...]

  Runs the same analysis as 'analyze' and sends the summary to Gemini
  for an analyst-style commentary.

  Requires the GEMINI_API_KEY environment variable.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.days, "days", fundbench.DefaultLookback, "trailing window in days")
	f.StringVar(&c.symbol, "symbol", yahoo.DefaultSymbol, "benchmark index symbol")
	f.StringVar(&c.queries, "q", "", "file with one fund query per line")
	f.StringVar(&c.model, "model", agent.DefaultModel, "Gemini model for the commentary")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	summary := renderer.SummaryMarkdown(report)
	printMarkdown(summary)

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	analyst := agent.NewAnalyst()
	analyst.ModelName = c.model
	if err := analyst.Start(ctx, client); err != nil {
		fmt.Fprintln(os.Stderr, "Error starting the analyst session:", err)
		return subcommands.ExitFailure
	}
	commentary, err := analyst.Review(ctx, summary)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Analyst failed:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(commentary)
	return subcommands.ExitSuccess
}
