package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fundfolio/fundfolio"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	scheme string
	isin   string
	side   string
	date   string
	units  string
	price  string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a fund purchase or sell" }
func (*addCmd) Usage() string {
	return `mft add -scheme <id> -side <purchase|sell> -units <n> -price <n> [-d <date>] [-isin <isin>]

  Appends one trade to the user's ledger.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.scheme, "scheme", "", "Scheme id of the fund (as published by the value feed).")
	f.StringVar(&c.isin, "isin", "", "Optional ISIN of the fund.")
	f.StringVar(&c.side, "side", "purchase", "Trade side: purchase or sell.")
	f.StringVar(&c.date, "d", fundfolio.Today().String(), "Trade date. See the user manual for supported date formats.")
	f.StringVar(&c.units, "units", "", "Number of units traded.")
	f.StringVar(&c.price, "price", "", "Per-unit price paid or received.")
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.scheme == "" || c.units == "" || c.price == "" {
		fmt.Fprintln(os.Stderr, "Error: -scheme, -units and -price are required")
		return subcommands.ExitUsageError
	}
	on, err := fundfolio.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	units, err := decimal.NewFromString(c.units)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing units: %v\n", err)
		return subcommands.ExitUsageError
	}
	price, err := decimal.NewFromString(c.price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing price: %v\n", err)
		return subcommands.ExitUsageError
	}

	s, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	row := fundfolio.TradeRow{
		SchemeID: c.scheme,
		ISIN:     c.isin,
		Side:     c.side,
		Date:     on,
		Units:    fundfolio.Q(units),
		Price:    price,
	}
	if err := s.AppendTrade(ctx, User(), row); err != nil {
		fmt.Fprintf(os.Stderr, "Error recording trade: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded %s of %s units of %s at %s on %s\n", row.Side, c.units, c.scheme, c.price, on)
	return subcommands.ExitSuccess
}
