package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fundfolio/fundfolio"
	"github.com/fundfolio/fundfolio/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	deltas string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the portfolio checkpoint summary" }
func (*summaryCmd) Usage() string {
	return `mft summary [-deltas <days,...>]

  Displays the portfolio at recent checkpoints: today, the previous published
  dates, last week, last 15 days, last month and since start, with the profit
  movement between each checkpoint and today.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.deltas, "deltas", "", "Extra lookback checkpoints in days, comma separated (e.g. \"45,90\").")
}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	deltas, err := parseDeltas(c.deltas)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -deltas: %v\n", err)
		return subcommands.ExitUsageError
	}

	s, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	p, err := loadPortfolio(ctx, s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	series, err := p.PnLTimeseries(ctx, NAVSource())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing timeseries: %v\n", err)
		return subcommands.ExitFailure
	}

	summary, err := fundfolio.NewSummary(series, deltas)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building summary: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SummaryMarkdown(summary))
	return subcommands.ExitSuccess
}
