package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fundfolio/fundfolio"
	"github.com/fundfolio/fundfolio/agent"
	"github.com/fundfolio/fundfolio/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI assistant" }
func (*assistCmd) Usage() string {
	return `mft assist [initial prompt]

  Starts an interactive session with the AI assistant. The assistant can read
  the portfolio reports and search the web. Requires GEMINI_API_KEY.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	// make sure GEMINI_API_KEY from a local .env is visible to the client
	env("GEMINI_API_KEY", "")

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	researcher := agent.NewResearcher()
	analyst := agent.NewAnalyst(appReports{})
	a := agent.New(os.Stdout, os.Stdin, researcher, analyst)

	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// appReports implements agent.Reports over the store and the value feed,
// recomputing on every tool call so the assistant always sees fresh data.
type appReports struct{}

func (appReports) timeseries(ctx context.Context) (*fundfolio.Portfolio, fundfolio.PnLSeries, fundfolio.Mapping, error) {
	s, err := OpenStore()
	if err != nil {
		return nil, nil, nil, err
	}
	defer s.Close()

	p, err := loadPortfolio(ctx, s)
	if err != nil {
		return nil, nil, nil, err
	}
	series, err := p.PnLTimeseries(ctx, NAVSource())
	if err != nil {
		return nil, nil, nil, err
	}
	mapping, err := s.Mapping(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	return p, series, mapping, nil
}

func (r appReports) Summary(extraDeltas []int) (string, error) {
	_, series, _, err := r.timeseries(context.Background())
	if err != nil {
		return "", err
	}
	summary, err := fundfolio.NewSummary(series, extraDeltas)
	if err != nil {
		return "", err
	}
	return renderer.SummaryMarkdown(summary), nil
}

func (r appReports) SchemeSummary(numDays int) (string, error) {
	p, _, mapping, err := r.timeseries(context.Background())
	if err != nil {
		return "", err
	}
	report, err := fundfolio.NewSchemeAbsoluteSummary(p.PerScheme(), mapping, numDays)
	if err != nil {
		return "", err
	}
	return renderer.SchemeAbsoluteMarkdown(report), nil
}

func (r appReports) SchemeChanges(extraDeltas []int) (string, error) {
	p, _, mapping, err := r.timeseries(context.Background())
	if err != nil {
		return "", err
	}
	report, err := fundfolio.NewSchemeRelativeSummary(p.PerScheme(), mapping, extraDeltas)
	if err != nil {
		return "", err
	}
	return renderer.SchemeRelativeMarkdown(report), nil
}
