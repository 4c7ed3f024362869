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

// historyCmd holds the flags for the 'history' subcommand.
type historyCmd struct {
	scheme string
	period string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the daily profit timeseries" }
func (*historyCmd) Usage() string {
	return `mft history [-s <scheme_id>] [-p <period>]

  Displays the daily profit timeseries of the portfolio, or of a single
  scheme. The series can be resampled to weekly, monthly, quarterly or
  yearly buckets, keeping the last known row of each bucket.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.scheme, "s", "", "Scheme id to report on. Defaults to the whole portfolio.")
	f.StringVar(&c.period, "p", "daily", "Bucketing period: daily, weekly, monthly, quarterly or yearly.")
}

func (c *historyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	period, err := fundfolio.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -p: %v\n", err)
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

	title := ""
	if c.scheme != "" {
		series = p.PerScheme().Scheme(c.scheme)
		if len(series) == 0 {
			fmt.Fprintf(os.Stderr, "No valued rows for scheme %q\n", c.scheme)
			return subcommands.ExitFailure
		}
		mapping, err := s.Mapping(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading scheme names: %v\n", err)
			return subcommands.ExitFailure
		}
		title = mapping.Name(c.scheme)
	}

	printMarkdown(renderer.TimeseriesMarkdown(series.Resample(period), title))
	return subcommands.ExitSuccess
}
