package fundfolio

import (
	"errors"
	"fmt"
	"slices"
	"sort"
)

// ErrEmptySeries is returned when a report is asked for an empty timeseries.
var ErrEmptySeries = errors.New("empty pnl timeseries")

// checkpointTarget labels an ideal lookback date relative to the latest row.
type checkpointTarget struct {
	Label  string
	Target Date
}

// summaryTargets builds the standard lookback list: the latest date, the
// three days before it, then week, fortnight and month, any extra day
// offsets, and finally the first date of the series.
func summaryTargets(latest, first Date, extraDeltas []int) []checkpointTarget {
	targets := []checkpointTarget{
		{"T", latest},
		{"T-1", latest.Add(-1)},
		{"T-2", latest.Add(-2)},
		{"T-3", latest.Add(-3)},
		{"Last Week", latest.Add(-7)},
		{"Last 15 Days", latest.Add(-15)},
		{"Last Month", latest.Add(-30)},
	}
	deltas := slices.Clone(extraDeltas)
	sort.Ints(deltas)
	for _, d := range deltas {
		targets = append(targets, checkpointTarget{fmt.Sprintf("Last %d Days", d), latest.Add(-d)})
	}
	return append(targets, checkpointTarget{"Since Start", first})
}

// resolvedCheckpoint is a target matched to an actual date of the series.
type resolvedCheckpoint struct {
	Label string
	Date  Date
}

// resolveCheckpoints matches each target to the most recent series date on or
// before it. A date never backs two checkpoints: when the nearest date is
// already taken the search continues further back, and a target with no
// remaining candidate is skipped. The dates slice must be sorted ascending.
func resolveCheckpoints(dates []Date, targets []checkpointTarget) []resolvedCheckpoint {
	used := make(map[Date]bool, len(targets))
	var out []resolvedCheckpoint
	for _, t := range targets {
		i := sort.Search(len(dates), func(i int) bool { return dates[i].After(t.Target) })
		i-- // last index with date <= target
		for i >= 0 && used[dates[i]] {
			i--
		}
		if i < 0 {
			continue
		}
		used[dates[i]] = true
		out = append(out, resolvedCheckpoint{Label: t.Label, Date: dates[i]})
	}
	return out
}

// SummaryRow is the portfolio state at one resolved checkpoint, with the
// profit movement between that checkpoint and the latest date.
type SummaryRow struct {
	Label            string
	Date             Date
	TotalInvested    Money
	CurrentValue     Money
	PnL              Money
	PnLPercent       Percent
	PnLChange        Money   // pnl at T minus pnl at this checkpoint
	PnLChangePercent Percent // the change relative to the amount invested at T
}

// Summary is the checkpoint report over a portfolio-level timeseries: one row
// per resolved lookback checkpoint, most recent first. Money amounts are
// rounded to whole units for display.
type Summary struct {
	Rows []SummaryRow
}

// NewSummary builds the checkpoint report. extraDeltas adds further "Last N
// Days" checkpoints between "Last Month" and "Since Start". It fails with
// ErrEmptySeries when the series has no rows; a series too short for some
// checkpoints simply yields fewer rows.
func NewSummary(series PnLSeries, extraDeltas []int) (*Summary, error) {
	dates := series.Dates()
	if len(dates) == 0 {
		return nil, ErrEmptySeries
	}
	latest, first := dates[len(dates)-1], dates[0]

	cps := resolveCheckpoints(dates, summaryTargets(latest, first, extraDeltas))

	// The latest date is always free when resolution starts, so "T" resolves.
	current, _ := series.On(latest)

	s := &Summary{}
	for _, cp := range cps {
		row, ok := series.On(cp.Date)
		if !ok {
			continue
		}
		change := current.PnL.Sub(row.PnL)
		s.Rows = append(s.Rows, SummaryRow{
			Label:            cp.Label,
			Date:             cp.Date,
			TotalInvested:    row.TotalInvested.Round(0),
			CurrentValue:     row.CurrentValue.Round(0),
			PnL:              row.PnL.Round(0),
			PnLPercent:       row.PnLPercent,
			PnLChange:        change.Round(0),
			PnLChangePercent: change.PercentOf(current.TotalInvested),
		})
	}
	return s, nil
}
