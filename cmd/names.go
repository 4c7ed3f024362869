package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fundfolio/fundfolio/mfapi"
	"github.com/google/subcommands"
)

// namesCmd holds the flags for the 'names' subcommand.
type namesCmd struct {
	refresh bool
}

func (*namesCmd) Name() string     { return "names" }
func (*namesCmd) Synopsis() string { return "fetch display names for the schemes in the ledger" }
func (*namesCmd) Usage() string {
	return `mft names [-refresh]

  Looks up the published display name of every scheme in the user's ledger
  and stores it in the mapping table. Schemes already mapped are skipped
  unless -refresh is given.
`
}

func (c *namesCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.refresh, "refresh", false, "Refetch names for schemes already mapped.")
}

func (c *namesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	mapping, err := s.Mapping(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scheme names: %v\n", err)
		return subcommands.ExitFailure
	}

	client := mfapi.New(logger().With().Str("component", "mfapi").Logger())
	for _, h := range p.Holdings() {
		if _, ok := mapping[h.SchemeID]; ok && !c.refresh {
			continue
		}
		name, err := client.SchemeName(ctx, h.SchemeID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			continue
		}
		if err := s.PutMapping(ctx, h.SchemeID, name); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving mapping: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("%s: %s\n", h.SchemeID, name)
	}
	return subcommands.ExitSuccess
}
