package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fundfolio/fundfolio"
	"github.com/google/subcommands"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	file string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the user's ledger from a JSONL file" }
func (*importCmd) Usage() string {
	return `mft import -f <file>

  Reads scheme records (one JSON object per line) and replaces the user's
  ledger with them. Use "-" to read from stdin.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "File of scheme records to import, or \"-\" for stdin.")
}

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -f is required")
		return subcommands.ExitUsageError
	}

	in := os.Stdin
	if c.file != "-" {
		var err error
		if in, err = os.Open(c.file); err != nil {
			fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", c.file, err)
			return subcommands.ExitFailure
		}
		defer in.Close()
	}

	recs, err := fundfolio.DecodeSchemeRecords(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}

	s, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	if err := s.SaveTransactions(ctx, User(), recs); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Imported %d scheme records for user %s\n", len(recs), User())
	return subcommands.ExitSuccess
}

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	file string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the user's ledger as a JSONL file" }
func (*exportCmd) Usage() string {
	return `mft export [-o <file>]

  Writes the user's scheme records, one JSON object per line, to the given
  file or to stdout.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "o", "", "Destination file. Defaults to stdout.")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	recs, err := s.Transactions(ctx, User())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	out := os.Stdout
	if c.file != "" {
		if out, err = os.Create(c.file); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.file, err)
			return subcommands.ExitFailure
		}
		defer out.Close()
	}

	if err := fundfolio.EncodeSchemeRecords(out, recs); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
