package fundfolio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	// persist plain numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true
}

// Leg is one recorded trade inside a scheme record: units at a per-unit price
// on a date. The direction is carried by the list it belongs to.
type Leg struct {
	Date  Date            `json:"date"`
	Units Quantity        `json:"units"`
	Price decimal.Decimal `json:"price"`
}

// SchemeRecord is the persisted form of one fund holding: an identified
// scheme with its purchase and sell legs.
type SchemeRecord struct {
	SchemeID  string `json:"scheme_id"`
	ISIN      string `json:"isin,omitempty"`
	Purchases []Leg  `json:"purchase_legs,omitempty"`
	Sells     []Leg  `json:"sell_legs,omitempty"`
}

// TradeRow is one row of a raw trade export, before it is folded into a
// scheme record. Side is kept textual as found in the export.
type TradeRow struct {
	SchemeID string          `json:"scheme_id"`
	ISIN     string          `json:"isin,omitempty"`
	Side     string          `json:"side"`
	Date     Date            `json:"date"`
	Units    Quantity        `json:"units"`
	Price    decimal.Decimal `json:"price"`
}

// AppendTrade folds a raw trade row into the record's purchase or sell legs.
// It fails with ErrInvalidSide when the row's side is not recognized.
func (r *SchemeRecord) AppendTrade(row TradeRow) error {
	side, err := ParseSide(row.Side)
	if err != nil {
		return err
	}
	leg := Leg{Date: row.Date, Units: row.Units, Price: row.Price}
	switch side {
	case Purchase:
		r.Purchases = append(r.Purchases, leg)
	case Sell:
		r.Sells = append(r.Sells, leg)
	}
	return nil
}

// MergeTrade folds a raw trade row into the record matching its scheme id,
// appending a new record when the scheme is not yet present.
func MergeTrade(recs []SchemeRecord, row TradeRow) ([]SchemeRecord, error) {
	for i := range recs {
		if recs[i].SchemeID == row.SchemeID {
			if err := recs[i].AppendTrade(row); err != nil {
				return nil, err
			}
			return recs, nil
		}
	}
	rec := SchemeRecord{SchemeID: row.SchemeID, ISIN: row.ISIN}
	if err := rec.AppendTrade(row); err != nil {
		return nil, err
	}
	return append(recs, rec), nil
}

// DecodeSchemeRecords reads newline-delimited JSON scheme records.
func DecodeSchemeRecords(r io.Reader) ([]SchemeRecord, error) {
	dec := json.NewDecoder(r)
	var recs []SchemeRecord
	for i := 0; ; i++ {
		var rec SchemeRecord
		if err := dec.Decode(&rec); err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("invalid scheme record at index %d: %w", i, err)
		}
		if rec.SchemeID == "" {
			return nil, fmt.Errorf("invalid scheme record at index %d: missing scheme_id", i)
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// EncodeSchemeRecords writes the records as newline-delimited JSON.
func EncodeSchemeRecords(w io.Writer, recs []SchemeRecord) error {
	enc := json.NewEncoder(w)
	for _, rec := range recs {
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return nil
}
