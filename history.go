package fundfolio

import (
	"iter"
	"sort"
)

// TransactionHistory holds an ordered list of transactions for one fund and
// answers aggregate questions about the position as of a cutoff date.
//
// Every aggregate takes an asOf date: transactions dated after it are ignored.
// The zero Date means no cutoff.
type TransactionHistory struct {
	transactions []Transaction
	descending   bool
}

// NewTransactionHistory returns an empty history.
func NewTransactionHistory() *TransactionHistory {
	return &TransactionHistory{}
}

// Add validates the side and appends a transaction to the history.
func (h *TransactionHistory) Add(on Date, units Quantity, price Money, side Side) error {
	if side != Purchase && side != Sell {
		return ErrInvalidSide
	}
	h.transactions = append(h.transactions, Transaction{Date: on, Units: units, Price: price, Side: side})
	return nil
}

// Append appends already validated transactions.
func (h *TransactionHistory) Append(txs ...Transaction) {
	h.transactions = append(h.transactions, txs...)
}

// Len returns the number of transactions recorded.
func (h *TransactionHistory) Len() int { return len(h.transactions) }

// Transactions iterates over the transactions dated on or before asOf, in
// recorded order. A zero asOf yields all of them.
func (h *TransactionHistory) Transactions(asOf Date) iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, t := range h.transactions {
			if !asOf.IsZero() && t.Date.After(asOf) {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}
}

// TotalUnits returns the net number of units held as of the given date.
// Sells subtract from the total.
func (h *TransactionHistory) TotalUnits(asOf Date) Quantity {
	var total Quantity
	for t := range h.Transactions(asOf) {
		total = total.Add(t.SignedUnits())
	}
	return total
}

// InvestedAmount returns the net amount of money put in as of the given date,
// purchases minus sells. It can be negative when realized proceeds exceed
// the amount purchased; callers valuing a position treat that as zero.
func (h *TransactionHistory) InvestedAmount(asOf Date) Money {
	var total Money
	for t := range h.Transactions(asOf) {
		total = total.Add(t.SignedCost())
	}
	return total
}

// AveragePrice returns the net invested amount divided by the net units held
// as of the given date, or zero money when no units are held.
func (h *TransactionHistory) AveragePrice(asOf Date) Money {
	units := h.TotalUnits(asOf)
	if units.IsZero() {
		return Money{}
	}
	return h.InvestedAmount(asOf).Div(units)
}

// PnL returns the unrealized profit at the given per-unit nav:
// units held times nav, minus the invested amount.
func (h *TransactionHistory) PnL(nav Money, asOf Date) Money {
	value := nav.Mul(h.TotalUnits(asOf))
	return value.Sub(h.InvestedAmount(asOf))
}

// PnLPercent returns PnL as a percentage of the invested amount,
// or 0 when nothing is invested.
func (h *TransactionHistory) PnLPercent(nav Money, asOf Date) Percent {
	return h.PnL(nav, asOf).PercentOf(h.InvestedAmount(asOf))
}

// Sort orders the transactions by date. Sorting is stable and idempotent:
// transactions sharing a date keep their recorded order.
func (h *TransactionHistory) Sort(descending bool) {
	sort.SliceStable(h.transactions, func(i, j int) bool {
		if descending {
			return h.transactions[j].Date.Before(h.transactions[i].Date)
		}
		return h.transactions[i].Date.Before(h.transactions[j].Date)
	})
	h.descending = descending
}

// Merge returns a new history holding the transactions of both inputs.
// The inputs are left untouched.
func (h *TransactionHistory) Merge(o *TransactionHistory) *TransactionHistory {
	m := &TransactionHistory{transactions: make([]Transaction, 0, len(h.transactions)+len(o.transactions))}
	m.transactions = append(m.transactions, h.transactions...)
	m.transactions = append(m.transactions, o.transactions...)
	return m
}

// Dates returns the distinct transaction dates in ascending order.
func (h *TransactionHistory) Dates() []Date {
	if len(h.transactions) == 0 {
		return nil
	}
	sorted := make([]Date, 0, len(h.transactions))
	for _, t := range h.transactions {
		sorted = append(sorted, t.Date)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })
	dates := sorted[:1]
	for _, d := range sorted[1:] {
		if d != dates[len(dates)-1] {
			dates = append(dates, d)
		}
	}
	return dates
}
