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

// changesCmd holds the flags for the 'changes' subcommand.
type changesCmd struct {
	deltas string
}

func (*changesCmd) Name() string     { return "changes" }
func (*changesCmd) Synopsis() string { return "display per-scheme profit movement since recent checkpoints" }
func (*changesCmd) Usage() string {
	return `mft changes [-deltas <days,...>]

  Displays how each scheme's profit moved between recent checkpoints and its
  latest published date, as an amount and relative to the amount invested.
`
}

func (c *changesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.deltas, "deltas", "", "Extra lookback checkpoints in days, comma separated (e.g. \"45,90\").")
}

func (c *changesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if _, err := p.PnLTimeseries(ctx, NAVSource()); err != nil {
		fmt.Fprintf(os.Stderr, "Error computing timeseries: %v\n", err)
		return subcommands.ExitFailure
	}

	mapping, err := s.Mapping(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scheme names: %v\n", err)
		return subcommands.ExitFailure
	}

	report, err := fundfolio.NewSchemeRelativeSummary(p.PerScheme(), mapping, deltas)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building report: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SchemeRelativeMarkdown(report))
	return subcommands.ExitSuccess
}
