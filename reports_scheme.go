package fundfolio

import "sort"

// SchemeAbsoluteRow is one scheme's profit across the report's date columns.
type SchemeAbsoluteRow struct {
	Scheme     string
	PnL        []Money   // parallel to SchemeAbsoluteSummary.Dates
	PnLPercent []Percent // parallel to SchemeAbsoluteSummary.Dates
}

// SchemeAbsoluteSummary pivots the per-scheme timeseries into a scheme-by-date
// table of absolute profit over the most recent published dates.
type SchemeAbsoluteSummary struct {
	Dates []Date // columns, most recent first
	Rows  []SchemeAbsoluteRow
}

// NewSchemeAbsoluteSummary builds the pivot over the last numDays published
// dates (all of them when numDays <= 0). A scheme without a row on a column
// date shows zero there. Rows are sorted by profit on the most recent date,
// best first. It fails with ErrEmptySeries when the series has no rows.
func NewSchemeAbsoluteSummary(perScheme PnLSeries, names Mapping, numDays int) (*SchemeAbsoluteSummary, error) {
	dates := perScheme.Dates()
	if len(dates) == 0 {
		return nil, ErrEmptySeries
	}
	if numDays > 0 && numDays < len(dates) {
		dates = dates[len(dates)-numDays:]
	}
	// columns run most recent first
	cols := make([]Date, len(dates))
	for i, d := range dates {
		cols[len(cols)-1-i] = d
	}

	byScheme := make(map[string]map[Date]PnLPoint)
	for _, p := range perScheme {
		m := byScheme[p.SchemeID]
		if m == nil {
			m = make(map[Date]PnLPoint)
			byScheme[p.SchemeID] = m
		}
		m[p.Date] = p
	}

	s := &SchemeAbsoluteSummary{Dates: cols}
	for _, id := range perScheme.Schemes() {
		row := SchemeAbsoluteRow{
			Scheme:     names.Name(id),
			PnL:        make([]Money, len(cols)),
			PnLPercent: make([]Percent, len(cols)),
		}
		for i, on := range cols {
			if p, ok := byScheme[id][on]; ok {
				row.PnL[i] = p.PnL.Round(0)
				row.PnLPercent[i] = p.PnLPercent
			}
		}
		s.Rows = append(s.Rows, row)
	}
	sort.SliceStable(s.Rows, func(i, j int) bool {
		return s.Rows[i].PnL[0].GreaterThan(s.Rows[j].PnL[0])
	})
	return s, nil
}

// SchemeRelativeSummary pivots profit movement per scheme: for each lookback
// checkpoint, how much each scheme's profit moved between that checkpoint and
// the scheme's own latest date.
type SchemeRelativeSummary struct {
	Schemes       []string // display names, column order
	Labels        []string // checkpoint labels, row order
	Change        [][]Money
	ChangePercent [][]Percent
}

// relativePercent expresses a profit movement against the invested base.
// A zero base reports ±100 following the sign of the movement.
func relativePercent(change, invested Money) Percent {
	if invested.IsZero() {
		switch {
		case change.IsPositive():
			return 100
		case change.IsNegative():
			return -100
		default:
			return 0
		}
	}
	return change.PercentOf(invested)
}

// NewSchemeRelativeSummary builds the movement pivot. Checkpoints resolve per
// scheme against that scheme's own dates, so schemes published on different
// calendars stay comparable. A label kept in the report is one resolved by at
// least one scheme; schemes that could not resolve it show zero. It fails
// with ErrEmptySeries when the series has no rows.
func NewSchemeRelativeSummary(perScheme PnLSeries, names Mapping, extraDeltas []int) (*SchemeRelativeSummary, error) {
	ids := perScheme.Schemes()
	if len(ids) == 0 {
		return nil, ErrEmptySeries
	}

	type cell struct {
		change Money
		pct    Percent
	}
	cells := make([]map[string]cell, len(ids))
	var template []string

	for col, id := range ids {
		series := perScheme.Scheme(id)
		dates := series.Dates()
		latest, first := dates[len(dates)-1], dates[0]

		targets := summaryTargets(latest, first, extraDeltas)
		if template == nil {
			for _, t := range targets {
				template = append(template, t.Label)
			}
		}
		current, _ := series.On(latest)

		cells[col] = make(map[string]cell)
		for _, cp := range resolveCheckpoints(dates, targets) {
			row, ok := series.On(cp.Date)
			if !ok {
				continue
			}
			change := current.PnL.Sub(row.PnL)
			cells[col][cp.Label] = cell{
				change: change.Round(0),
				pct:    relativePercent(change, current.TotalInvested),
			}
		}
	}

	s := &SchemeRelativeSummary{}
	for _, id := range ids {
		s.Schemes = append(s.Schemes, names.Name(id))
	}
	for _, label := range template {
		resolved := false
		for col := range ids {
			if _, ok := cells[col][label]; ok {
				resolved = true
				break
			}
		}
		if !resolved {
			continue
		}
		changes := make([]Money, len(ids))
		pcts := make([]Percent, len(ids))
		for col := range ids {
			if c, ok := cells[col][label]; ok {
				changes[col] = c.change
				pcts[col] = c.pct
			}
		}
		s.Labels = append(s.Labels, label)
		s.Change = append(s.Change, changes)
		s.ChangePercent = append(s.ChangePercent, pcts)
	}
	return s, nil
}
