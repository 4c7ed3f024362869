package fundfolio

import "sort"

// PnLPoint is one row of a daily profit timeseries: the state of a position
// (or of the whole portfolio) on one published-value date.
type PnLPoint struct {
	Date          Date
	SchemeID      string // empty on portfolio-level rows
	TotalInvested Money
	CurrentValue  Money
	PnL           Money
	PnLPercent    Percent
}

// newPnLPoint derives pnl and pnl percent from invested and value.
func newPnLPoint(on Date, invested, value Money, schemeID string) PnLPoint {
	pnl := value.Sub(invested)
	return PnLPoint{
		Date:          on,
		SchemeID:      schemeID,
		TotalInvested: invested,
		CurrentValue:  value,
		PnL:           pnl,
		PnLPercent:    pnl.PercentOf(invested),
	}
}

// PnLSeries is a list of daily profit rows. A per-scheme series may hold
// several rows per date (one per scheme); an aggregated series holds one.
type PnLSeries []PnLPoint

// Dates returns the distinct dates of the series in ascending order.
func (s PnLSeries) Dates() []Date {
	if len(s) == 0 {
		return nil
	}
	all := make([]Date, 0, len(s))
	for _, p := range s {
		all = append(all, p.Date)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Before(all[j]) })
	dates := all[:1]
	for _, d := range all[1:] {
		if d != dates[len(dates)-1] {
			dates = append(dates, d)
		}
	}
	return dates
}

// Last returns the chronologically last row, scanning for the max date.
func (s PnLSeries) Last() (PnLPoint, bool) {
	if len(s) == 0 {
		return PnLPoint{}, false
	}
	last := s[0]
	for _, p := range s[1:] {
		if p.Date.After(last.Date) {
			last = p
		}
	}
	return last, true
}

// On returns the first row recorded for the given date.
func (s PnLSeries) On(on Date) (PnLPoint, bool) {
	for _, p := range s {
		if p.Date == on {
			return p, true
		}
	}
	return PnLPoint{}, false
}

// Scheme returns the rows tagged with the given scheme id.
func (s PnLSeries) Scheme(id string) PnLSeries {
	var out PnLSeries
	for _, p := range s {
		if p.SchemeID == id {
			out = append(out, p)
		}
	}
	return out
}

// Schemes returns the distinct scheme ids in order of first appearance.
func (s PnLSeries) Schemes() []string {
	seen := make(map[string]bool)
	var ids []string
	for _, p := range s {
		if p.SchemeID == "" || seen[p.SchemeID] {
			continue
		}
		seen[p.SchemeID] = true
		ids = append(ids, p.SchemeID)
	}
	return ids
}

// GroupByDate folds a per-scheme series into a portfolio-level one: for each
// date, invested and value are summed across schemes, rows whose summed
// invested is not positive are dropped, and pnl is rederived from the sums.
// The result is sorted by ascending date with untagged rows.
func (s PnLSeries) GroupByDate() PnLSeries {
	type sums struct{ invested, value Money }
	byDate := make(map[Date]*sums, len(s))
	for _, p := range s {
		b := byDate[p.Date]
		if b == nil {
			b = &sums{}
			byDate[p.Date] = b
		}
		b.invested = b.invested.Add(p.TotalInvested)
		b.value = b.value.Add(p.CurrentValue)
	}
	var out PnLSeries
	for _, on := range s.Dates() {
		b := byDate[on]
		if !b.invested.IsPositive() {
			continue
		}
		out = append(out, newPnLPoint(on, b.invested, b.value, ""))
	}
	return out
}

// Resample buckets the series by calendar period, keeping for each period the
// last row on or before the period's end date, re-dated to it. Period ends
// past the last row are not emitted. A daily resample returns the series as is.
func (s PnLSeries) Resample(p Period) PnLSeries {
	if p == Daily || len(s) == 0 {
		return s
	}
	dates := s.Dates()
	first, last := dates[0], dates[len(dates)-1]

	var out PnLSeries
	i := -1 // index in dates of the last date <= current period end
	for end := first.EndOf(p); !end.After(last); end = end.Add(1).EndOf(p) {
		for i+1 < len(dates) && !dates[i+1].After(end) {
			i++
		}
		if i < 0 {
			continue
		}
		row, ok := s.On(dates[i])
		if !ok {
			continue
		}
		row.Date = end
		out = append(out, row)
	}
	return out
}
