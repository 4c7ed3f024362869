package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Reports provides rendered report markdown for the analyst's tools.
// The implementation is wired in by the command layer so the agent never
// touches the store or the value feed directly.
type Reports interface {
	// Summary renders the portfolio checkpoint report.
	Summary(extraDeltas []int) (string, error)
	// SchemeSummary renders the per-scheme profit pivot over the last numDays dates.
	SchemeSummary(numDays int) (string, error)
	// SchemeChanges renders the per-scheme profit movement pivot.
	SchemeChanges(extraDeltas []int) (string, error)
}

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to understand how his mutual fund portfolio is doing:
			how much is invested, what it is worth, and how the profit moved recently.

			Devise a plan of questions to ask each expert and come up with the best response to the user's request.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewResearcher returns an expert grounded in web search, for questions about
// funds and markets that the local ledger cannot answer.
func NewResearcher() *Expert {
	return &Expert{
		Name: "Researcher",
		Description: `This is an expert researcher,
		very well aware of financial products and institutions,
		and of the latest news about the different funds and fund houses.
		Ask the Researcher whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert researcher, you can search and find about anything related to
			financial institutions, mutual funds and markets. You leverage Google Search to
			ground your assertions in a solid truth.
			You can get the latest news too, and you know how to relate them to the user's request.
				`}}},
		},
	}
}

// NewAnalyst returns the expert in charge of the user's own portfolio,
// with tools over the rendered reports.
func NewAnalyst(reports Reports) *Expert {
	lib := []Function{
		summaryFunc(reports),
		schemeSummaryFunc(reports),
		schemeChangesFunc(reports),
	}

	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. He is in charge of reading the user's mutual fund portfolio.
		He can report the invested amount, the current value and the profit of the portfolio and of
		each scheme, today and at recent checkpoints (yesterday, last week, last month...).`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an analyst in charge of the user's mutual fund portfolio.
				You know how to use the Tools to extract relevant information about the portfolio.
				You are part of a team of experts, yours is everything about the user's own holdings.
				They might ask you questions about the portfolio, pardon their approximative language
				and figure out what they meant.

				Use the available tools to get information about the portfolio:
				  - the checkpoint summary (invested, value, profit over recent dates)
				  - the per-scheme profit table
				  - the per-scheme profit movement table
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

// intArg reads an optional integer argument. JSON numbers arrive as float64.
func intArg(args map[string]any, key string, def int) (int, error) {
	v, ok := args[key]
	if !ok {
		return def, nil
	}
	f, ok := v.(float64)
	if !ok {
		return def, fmt.Errorf("argument %q is not a number as expected but %T", key, v)
	}
	return int(f), nil
}

func respond(id, name string, output string, err error) *genai.FunctionResponse {
	resp := &genai.FunctionResponse{ID: id, Name: name, Response: map[string]any{}}
	if err != nil {
		resp.Response["error"] = err.Error()
		return resp
	}
	resp.Response["output"] = output
	return resp
}

func summaryFunc(reports Reports) *Func {
	const name = "portfolio_summary"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: name,
			Description: `portfolio_summary reports the whole portfolio at recent checkpoints:
			today, the previous three published dates, last week, last 15 days, last month and since start.
			Each row carries the invested amount, the current value, the profit and how the profit
			moved since that checkpoint.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"extra_days": {
						Type:        genai.TypeInteger,
						Description: "An optional extra lookback in days to add as a checkpoint, e.g. 45.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of the portfolio at each checkpoint.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			extra, err := intArg(args, "extra_days", 0)
			if err != nil {
				return respond(id, name, "", err)
			}
			var deltas []int
			if extra > 0 {
				deltas = []int{extra}
			}
			out, err := reports.Summary(deltas)
			return respond(id, name, out, err)
		},
	}
}

func schemeSummaryFunc(reports Reports) *Func {
	const name = "scheme_summary"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: name,
			Description: `scheme_summary reports the profit of each scheme in the portfolio over the
			most recent published dates, one row per scheme, best performer first.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"days": {
						Type:        genai.TypeInteger,
						Description: "How many recent dates to include as columns. Defaults to 3.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of per-scheme profit by date.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			days, err := intArg(args, "days", 3)
			if err != nil {
				return respond(id, name, "", err)
			}
			out, err := reports.SchemeSummary(days)
			return respond(id, name, out, err)
		},
	}
}

func schemeChangesFunc(reports Reports) *Func {
	const name = "scheme_changes"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: name,
			Description: `scheme_changes reports how each scheme's profit moved between recent
			checkpoints and today, as an amount and as a percentage of the amount invested.`,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of per-scheme profit movement.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			out, err := reports.SchemeChanges(nil)
			return respond(id, name, out, err)
		},
	}
}
