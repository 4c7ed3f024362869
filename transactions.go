package fundfolio

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Side identifies the direction of a fund transaction.
type Side int

const (
	Purchase Side = iota
	Sell
)

// ErrInvalidSide is returned when a transaction side is neither purchase nor sell.
var ErrInvalidSide = errors.New("invalid transaction side: want purchase or sell")

// ParseSide parses a side from its textual form.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "purchase", "buy":
		return Purchase, nil
	case "sell":
		return Sell, nil
	default:
		return Purchase, fmt.Errorf("%w: got %q", ErrInvalidSide, s)
	}
}

func (s Side) String() string {
	switch s {
	case Purchase:
		return "purchase"
	case Sell:
		return "sell"
	default:
		panic(fmt.Sprintf("unknown side %d", int(s)))
	}
}

// Sign returns +1 for a purchase and -1 for a sell.
func (s Side) Sign() int {
	if s == Sell {
		return -1
	}
	return 1
}

func (s Side) MarshalJSON() ([]byte, error) { return json.Marshal(s.String()) }

func (s *Side) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	side, err := ParseSide(str)
	if err != nil {
		return err
	}
	*s = side
	return nil
}

// Transaction records a single trade in a fund: a number of units bought or
// sold at a given price per unit on a given date.
type Transaction struct {
	Date  Date
	Units Quantity
	Price Money
	Side  Side
}

// NewPurchase returns a buy transaction.
func NewPurchase(on Date, units Quantity, price Money) Transaction {
	return Transaction{Date: on, Units: units, Price: price, Side: Purchase}
}

// NewSell returns a sell transaction.
func NewSell(on Date, units Quantity, price Money) Transaction {
	return Transaction{Date: on, Units: units, Price: price, Side: Sell}
}

// SignedUnits returns the unit count with the side folded in: positive for a
// purchase, negative for a sell.
func (t Transaction) SignedUnits() Quantity {
	if t.Side == Sell {
		return t.Units.Neg()
	}
	return t.Units
}

// SignedCost returns units times price, negative for a sell.
func (t Transaction) SignedCost() Money {
	cost := t.Price.Mul(t.Units)
	if t.Side == Sell {
		return cost.Neg()
	}
	return cost
}

func (t Transaction) Equal(o Transaction) bool {
	return t.Date == o.Date && t.Side == o.Side && t.Units.Equal(o.Units) && t.Price.Equal(o.Price)
}

func (t Transaction) String() string {
	return fmt.Sprintf("%s %s units at %s on %s", t.Side, t.Units, t.Price, t.Date)
}
