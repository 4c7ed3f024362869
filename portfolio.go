package fundfolio

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoTransactions is returned when a portfolio holds nothing to value.
var ErrNoTransactions = errors.New("no transactions in portfolio")

// Portfolio is a set of fund holdings belonging to one investor.
type Portfolio struct {
	holdings []*Holding

	// perScheme caches the concatenated scheme-tagged rows of the last
	// successful PnLTimeseries run, for the scheme-level reports.
	perScheme PnLSeries
}

// NewPortfolio builds a portfolio from persisted scheme records.
func NewPortfolio(recs []SchemeRecord) (*Portfolio, error) {
	p := &Portfolio{}
	for _, rec := range recs {
		h, err := NewHolding(rec)
		if err != nil {
			return nil, err
		}
		p.holdings = append(p.holdings, h)
	}
	return p, nil
}

// Holdings returns the portfolio's holdings in record order.
func (p *Portfolio) Holdings() []*Holding { return p.holdings }

// Holding returns the holding for the given scheme id.
func (p *Portfolio) Holding(schemeID string) (*Holding, bool) {
	for _, h := range p.holdings {
		if h.SchemeID == schemeID {
			return h, true
		}
	}
	return nil, false
}

// InvestedAmount sums the net invested amount of every holding as of the given date.
func (p *Portfolio) InvestedAmount(asOf Date) Money {
	var total Money
	for _, h := range p.holdings {
		total = total.Add(h.InvestedAmount(asOf))
	}
	return total
}

// PnLTimeseries values the whole portfolio day by day: each holding is valued
// against its own published series, the tagged rows are concatenated, and the
// concatenation is folded into one portfolio row per date.
//
// It fails with ErrNoTransactions when the portfolio is empty or no holding
// produced a single valued row, leaving any cached state untouched. Each run
// recomputes from scratch, so calling it twice yields the same series.
func (p *Portfolio) PnLTimeseries(ctx context.Context, src NAVSource) (PnLSeries, error) {
	if len(p.holdings) == 0 {
		return nil, ErrNoTransactions
	}
	var all PnLSeries
	for _, h := range p.holdings {
		navs, err := src.Series(ctx, h.SchemeID)
		if err != nil {
			return nil, fmt.Errorf("scheme %s: %w", h.SchemeID, err)
		}
		all = append(all, h.PnLTimeseries(navs)...)
	}
	if len(all) == 0 {
		return nil, ErrNoTransactions
	}
	p.perScheme = all
	return all.GroupByDate(), nil
}

// PerScheme returns the scheme-tagged rows cached by the last successful
// PnLTimeseries run, or nil before the first run.
func (p *Portfolio) PerScheme() PnLSeries { return p.perScheme }

// TransactionDates returns the distinct purchase and sell dates across all
// holdings, each sorted ascending.
func (p *Portfolio) TransactionDates() (purchases, sells []Date) {
	var buys, sales [][]Date
	for _, h := range p.holdings {
		b, s := h.TransactionDates()
		buys, sales = append(buys, b), append(sales, s)
	}
	for on := range iterate(buys...) {
		purchases = append(purchases, on)
	}
	for on := range iterate(sales...) {
		sells = append(sells, on)
	}
	return purchases, sells
}
