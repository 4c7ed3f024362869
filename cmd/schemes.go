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

// schemesCmd holds the flags for the 'schemes' subcommand.
type schemesCmd struct {
	days int
}

func (*schemesCmd) Name() string     { return "schemes" }
func (*schemesCmd) Synopsis() string { return "display per-scheme profit over recent dates" }
func (*schemesCmd) Usage() string {
	return `mft schemes [-days <n>]

  Displays the profit of each scheme over the most recent published dates,
  one row per scheme, best performer first.
`
}

func (c *schemesCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.days, "days", 3, "How many recent dates to include as columns.")
}

func (c *schemesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	report, err := fundfolio.NewSchemeAbsoluteSummary(p.PerScheme(), mapping, c.days)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building report: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SchemeAbsoluteMarkdown(report))
	return subcommands.ExitSuccess
}
