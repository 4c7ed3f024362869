package fundfolio

import (
	"fmt"
	"sort"
)

// Holding is one fund position: the scheme identity plus its purchase and
// sell ledgers. Aggregates run over the merged ledger so sells net out.
type Holding struct {
	SchemeID string
	ISIN     string

	purchases *TransactionHistory
	sells     *TransactionHistory
	merged    *TransactionHistory
}

// NewHolding builds a holding from a persisted scheme record.
func NewHolding(rec SchemeRecord) (*Holding, error) {
	if rec.SchemeID == "" {
		return nil, fmt.Errorf("scheme record without scheme_id")
	}
	h := &Holding{
		SchemeID:  rec.SchemeID,
		ISIN:      rec.ISIN,
		purchases: NewTransactionHistory(),
		sells:     NewTransactionHistory(),
	}
	for _, leg := range rec.Purchases {
		if err := h.purchases.Add(leg.Date, leg.Units, M(leg.Price, DefaultCurrency), Purchase); err != nil {
			return nil, fmt.Errorf("scheme %s: %w", rec.SchemeID, err)
		}
	}
	for _, leg := range rec.Sells {
		if err := h.sells.Add(leg.Date, leg.Units, M(leg.Price, DefaultCurrency), Sell); err != nil {
			return nil, fmt.Errorf("scheme %s: %w", rec.SchemeID, err)
		}
	}
	h.merged = h.purchases.Merge(h.sells)
	h.merged.Sort(false)
	return h, nil
}

// History returns the merged purchase and sell ledger, sorted by date.
func (h *Holding) History() *TransactionHistory { return h.merged }

func (h *Holding) TotalUnits(asOf Date) Quantity  { return h.merged.TotalUnits(asOf) }
func (h *Holding) InvestedAmount(asOf Date) Money { return h.merged.InvestedAmount(asOf) }
func (h *Holding) AveragePrice(asOf Date) Money   { return h.merged.AveragePrice(asOf) }
func (h *Holding) PnL(nav Money, asOf Date) Money { return h.merged.PnL(nav, asOf) }
func (h *Holding) PnLPercent(nav Money, asOf Date) Percent {
	return h.merged.PnLPercent(nav, asOf)
}

// TransactionDates returns the distinct purchase and sell dates, each sorted ascending.
func (h *Holding) TransactionDates() (purchases, sells []Date) {
	return h.purchases.Dates(), h.sells.Dates()
}

// checkpoint is the position state after all transactions up to a date.
type checkpoint struct {
	on       Date
	units    Quantity
	invested Money
}

// checkpoints returns one position state per distinct transaction date,
// ascending: the running sums of signed units and signed cost. It sorts a
// copy of the merged ledger, so the order callers left History() in does
// not matter.
func (h *Holding) checkpoints() []checkpoint {
	txs := make([]Transaction, 0, h.merged.Len())
	for t := range h.merged.Transactions(Date{}) {
		txs = append(txs, t)
	}
	sort.SliceStable(txs, func(i, j int) bool { return txs[i].Date.Before(txs[j].Date) })

	var cps []checkpoint
	var units Quantity
	var invested Money
	for _, t := range txs {
		units = units.Add(t.SignedUnits())
		invested = invested.Add(t.SignedCost())
		if n := len(cps); n > 0 && cps[n-1].on == t.Date {
			cps[n-1].units, cps[n-1].invested = units, invested
			continue
		}
		cps = append(cps, checkpoint{on: t.Date, units: units, invested: invested})
	}
	return cps
}

// PnLTimeseries values the position on every published-value date: each nav
// point is joined backward against the most recent transaction state on or
// before it. Nav dates preceding the first transaction produce no row, and
// rows whose invested amount (clamped at zero) is not positive are dropped,
// so fully exited stretches of the position disappear from the series.
func (h *Holding) PnLTimeseries(navs NAVSeries) PnLSeries {
	navs = navs.Normalize()
	cps := h.checkpoints()
	if len(cps) == 0 || len(navs) == 0 {
		return nil
	}

	var series PnLSeries
	i := -1 // index of the last checkpoint dated on or before the nav point
	for _, p := range navs {
		for i+1 < len(cps) && !cps[i+1].on.After(p.Date) {
			i++
		}
		if i < 0 {
			continue
		}
		invested := cps[i].invested
		if invested.IsNegative() {
			invested = M(0, invested.Currency())
		}
		if !invested.IsPositive() {
			continue
		}
		value := p.NAV.Mul(cps[i].units)
		series = append(series, newPnLPoint(p.Date, invested, value, h.SchemeID))
	}
	return series
}

func (h *Holding) String() string {
	return fmt.Sprintf("%s (%d transactions)", h.SchemeID, h.merged.Len())
}
