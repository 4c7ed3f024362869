package fundfolio

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestDecodeSchemeRecords(t *testing.T) {
	input := `{"scheme_id":"120503","isin":"INF846K01EW2","purchase_legs":[{"date":"2024-01-05","units":10.5,"price":101.2}],"sell_legs":[{"date":"2024-02-01","units":4,"price":110}]}
{"scheme_id":"118989","purchase_legs":[{"date":"2024-01-10","units":20,"price":50}]}
`
	recs, err := DecodeSchemeRecords(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}

	first := recs[0]
	if first.SchemeID != "120503" || first.ISIN != "INF846K01EW2" {
		t.Errorf("record = %q/%q", first.SchemeID, first.ISIN)
	}
	if len(first.Purchases) != 1 || len(first.Sells) != 1 {
		t.Fatalf("legs = %d/%d, want 1/1", len(first.Purchases), len(first.Sells))
	}
	buy := first.Purchases[0]
	if buy.Date != on("2024-01-05") || !buy.Units.Equal(Q(10.5)) || !buy.Price.Equal(decimal.NewFromFloat(101.2)) {
		t.Errorf("purchase leg = %v %v %v", buy.Date, buy.Units, buy.Price)
	}
}

func TestDecodeSchemeRecordsMissingID(t *testing.T) {
	input := `{"purchase_legs":[{"date":"2024-01-05","units":10,"price":100}]}`
	if _, err := DecodeSchemeRecords(strings.NewReader(input)); err == nil {
		t.Error("decoding a record without scheme_id succeeded")
	}
}

func TestEncodeDecodeSchemeRecords(t *testing.T) {
	recs := []SchemeRecord{
		{
			SchemeID:  "120503",
			ISIN:      "INF846K01EW2",
			Purchases: []Leg{leg("2024-01-05", 10, 101.2)},
			Sells:     []Leg{leg("2024-02-01", 4, 110)},
		},
	}

	var buf bytes.Buffer
	if err := EncodeSchemeRecords(&buf, recs); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), `"units":"`) {
		t.Errorf("units encoded as a string: %s", buf.String())
	}

	got, err := DecodeSchemeRecords(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].SchemeID != recs[0].SchemeID ||
		len(got[0].Purchases) != 1 || len(got[0].Sells) != 1 {
		t.Errorf("roundtrip = %+v", got)
	}
	if !got[0].Purchases[0].Units.Equal(Q(10)) {
		t.Errorf("roundtrip units = %v, want 10", got[0].Purchases[0].Units)
	}
}

func TestAppendTrade(t *testing.T) {
	var rec SchemeRecord
	rows := []TradeRow{
		{SchemeID: "120503", Side: "PURCHASE", Date: on("2024-01-05"), Units: Q(10), Price: decimal.NewFromInt(100)},
		{SchemeID: "120503", Side: "sell", Date: on("2024-02-01"), Units: Q(4), Price: decimal.NewFromInt(110)},
	}
	for _, row := range rows {
		if err := rec.AppendTrade(row); err != nil {
			t.Fatal(err)
		}
	}
	if len(rec.Purchases) != 1 || len(rec.Sells) != 1 {
		t.Errorf("legs = %d/%d, want 1/1", len(rec.Purchases), len(rec.Sells))
	}

	err := rec.AppendTrade(TradeRow{SchemeID: "120503", Side: "redeem"})
	if !errors.Is(err, ErrInvalidSide) {
		t.Errorf("err = %v, want ErrInvalidSide", err)
	}
}

func TestMergeTrade(t *testing.T) {
	var recs []SchemeRecord
	rows := []TradeRow{
		{SchemeID: "120503", ISIN: "INF846K01EW2", Side: "buy", Date: on("2024-01-05"), Units: Q(10), Price: decimal.NewFromInt(100)},
		{SchemeID: "118989", Side: "buy", Date: on("2024-01-10"), Units: Q(20), Price: decimal.NewFromInt(50)},
		{SchemeID: "120503", Side: "sell", Date: on("2024-02-01"), Units: Q(4), Price: decimal.NewFromInt(110)},
	}
	for _, row := range rows {
		var err error
		if recs, err = MergeTrade(recs, row); err != nil {
			t.Fatal(err)
		}
	}
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	if recs[0].ISIN != "INF846K01EW2" {
		t.Errorf("isin = %q, want the one of the first row", recs[0].ISIN)
	}
	if len(recs[0].Purchases) != 1 || len(recs[0].Sells) != 1 {
		t.Errorf("120503 legs = %d/%d, want 1/1", len(recs[0].Purchases), len(recs[0].Sells))
	}
	if len(recs[1].Purchases) != 1 {
		t.Errorf("118989 legs = %d, want 1", len(recs[1].Purchases))
	}
}
