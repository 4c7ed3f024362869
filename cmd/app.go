// Package cmd implements the CLI application to track a mutual fund portfolio.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/fundfolio/fundfolio"
	"github.com/fundfolio/fundfolio/mfapi"
	"github.com/fundfolio/fundfolio/store"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Commands lists the subcommands a main package registers.
var Commands = []subcommands.Command{
	&addCmd{},
	&importCmd{},
	&exportCmd{},
	&summaryCmd{},
	&schemesCmd{},
	&changesCmd{},
	&historyCmd{},
	&namesCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	storePath = flag.String("store", "", "Path to the trades database. Defaults to $MFT_STORE, or mft.db")
	userName  = flag.String("user", "", "User whose ledger to work on. Defaults to $MFT_USER, or \"default\"")
	verbose   = flag.Bool("v", false, "Enable debug logging")
)

var envOnce sync.Once

// env reads an environment variable, loading a local .env file first.
func env(key, def string) string {
	envOnce.Do(func() { godotenv.Load() })
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func logger() zerolog.Logger {
	level := zerolog.WarnLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

// OpenStore opens the trades database selected by flag or environment.
func OpenStore() (*store.Store, error) {
	path := *storePath
	if path == "" {
		path = env("MFT_STORE", "mft.db")
	}
	return store.Open(path, logger().With().Str("component", "store").Logger())
}

// User returns the user selected by flag or environment.
func User() string {
	if *userName != "" {
		return *userName
	}
	return env("MFT_USER", "default")
}

// NAVSource returns the fund value feed, with its daily disk cache.
func NAVSource() fundfolio.NAVSource {
	return mfapi.New(logger().With().Str("component", "mfapi").Logger())
}

// loadPortfolio loads the selected user's ledger from the store.
func loadPortfolio(ctx context.Context, s *store.Store) (*fundfolio.Portfolio, error) {
	recs, err := s.Transactions(ctx, User())
	if err != nil {
		return nil, err
	}
	return fundfolio.NewPortfolio(recs)
}

// parseDeltas parses a comma separated list of day offsets, e.g. "45,90".
func parseDeltas(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var deltas []int
	for _, part := range strings.Split(s, ",") {
		d, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid day offset %q, want a positive number", part)
		}
		deltas = append(deltas, d)
	}
	return deltas, nil
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when rendering fails.
func printMarkdown(content string) {
	out, err := glamour.Render(content, "auto")
	if err != nil {
		fmt.Print(content)
		return
	}
	fmt.Print(out)
}
