package renderer

import (
	"strings"
	"testing"

	"github.com/fundfolio/fundfolio"
)

func money(v float64) fundfolio.Money { return fundfolio.M(v, fundfolio.DefaultCurrency) }

func TestSummaryMarkdown(t *testing.T) {
	s := &fundfolio.Summary{Rows: []fundfolio.SummaryRow{
		{
			Label:         "T",
			Date:          fundfolio.MustParse("2024-06-17"),
			TotalInvested: money(10000),
			CurrentValue:  money(10450),
			PnL:           money(450),
			PnLPercent:    4.5,
		},
		{
			Label:            "Last Week",
			Date:             fundfolio.MustParse("2024-06-10"),
			TotalInvested:    money(10000),
			CurrentValue:     money(10200),
			PnL:              money(200),
			PnLPercent:       2,
			PnLChange:        money(250),
			PnLChangePercent: 2.5,
		},
	}}

	got := SummaryMarkdown(s)
	for _, want := range []string{
		"# Portfolio Summary on 2024-06-17",
		"| Checkpoint |",
		"| T ",
		"| Last Week ",
		"2024-06-10",
		"+₹250.00",
		"+2.50%",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestSummaryMarkdownEmpty(t *testing.T) {
	got := SummaryMarkdown(&fundfolio.Summary{})
	if !strings.Contains(got, "# Portfolio Summary") {
		t.Errorf("output missing title:\n%s", got)
	}
}

func TestSchemeAbsoluteMarkdown(t *testing.T) {
	s := &fundfolio.SchemeAbsoluteSummary{
		Dates: []fundfolio.Date{fundfolio.MustParse("2024-06-17"), fundfolio.MustParse("2024-06-14")},
		Rows: []fundfolio.SchemeAbsoluteRow{
			{
				Scheme:     "Axis Bluechip Fund",
				PnL:        []fundfolio.Money{money(450), money(400)},
				PnLPercent: []fundfolio.Percent{4.5, 4},
			},
		},
	}

	got := SchemeAbsoluteMarkdown(s)
	for _, want := range []string{
		"# Scheme PnL by Date",
		"PnL 2024-06-17",
		"PnL% 2024-06-14",
		"Axis Bluechip Fund",
		"450",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestSchemeRelativeMarkdown(t *testing.T) {
	s := &fundfolio.SchemeRelativeSummary{
		Schemes:       []string{"Axis Bluechip Fund"},
		Labels:        []string{"T", "T-1"},
		Change:        [][]fundfolio.Money{{money(0)}, {money(-50)}},
		ChangePercent: [][]fundfolio.Percent{{0}, {-0.5}},
	}

	got := SchemeRelativeMarkdown(s)
	for _, want := range []string{
		"# Scheme PnL Movement",
		"Change Axis Bluechip Fund",
		"Change% Axis Bluechip Fund",
		"| T-1 ",
		"-₹50.00",
		"-0.50%",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestTimeseriesMarkdown(t *testing.T) {
	series := fundfolio.PnLSeries{{
		Date:          fundfolio.MustParse("2024-06-17"),
		TotalInvested: money(10000),
		CurrentValue:  money(10450),
		PnL:           money(450),
		PnLPercent:    4.5,
	}}

	got := TimeseriesMarkdown(series, "Axis Bluechip Fund")
	for _, want := range []string{
		"# PnL History for Axis Bluechip Fund",
		"| Date |",
		"2024-06-17",
		"10450.00",
		"4.50%",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}

	if got := TimeseriesMarkdown(series, ""); !strings.Contains(got, "# Portfolio PnL History") {
		t.Errorf("portfolio title missing:\n%s", got)
	}
}
