package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/fundfolio/fundfolio"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "mft.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveLoadTransactions(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	recs := []fundfolio.SchemeRecord{
		{
			SchemeID: "120503",
			ISIN:     "INF846K01EW2",
			Purchases: []fundfolio.Leg{
				{Date: fundfolio.MustParse("2024-01-05"), Units: fundfolio.Q(10.5), Price: decimal.NewFromFloat(101.2)},
				{Date: fundfolio.MustParse("2024-01-20"), Units: fundfolio.Q(5), Price: decimal.NewFromInt(105)},
			},
			Sells: []fundfolio.Leg{
				{Date: fundfolio.MustParse("2024-02-01"), Units: fundfolio.Q(4), Price: decimal.NewFromInt(110)},
			},
		},
		{
			SchemeID: "118989",
			Purchases: []fundfolio.Leg{
				{Date: fundfolio.MustParse("2024-01-10"), Units: fundfolio.Q(20), Price: decimal.NewFromInt(50)},
			},
		},
	}
	require.NoError(t, s.SaveTransactions(ctx, "alice", recs))

	got, err := s.Transactions(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "120503", got[0].SchemeID)
	assert.Equal(t, "INF846K01EW2", got[0].ISIN)
	require.Len(t, got[0].Purchases, 2)
	require.Len(t, got[0].Sells, 1)
	assert.True(t, got[0].Purchases[0].Units.Equal(fundfolio.Q(10.5)))
	assert.True(t, got[0].Purchases[0].Price.Equal(decimal.NewFromFloat(101.2)))
	assert.Equal(t, fundfolio.MustParse("2024-02-01"), got[0].Sells[0].Date)

	assert.Equal(t, "118989", got[1].SchemeID)
	require.Len(t, got[1].Purchases, 1)
}

func TestSaveTransactionsReplaces(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first := []fundfolio.SchemeRecord{{
		SchemeID:  "120503",
		Purchases: []fundfolio.Leg{{Date: fundfolio.MustParse("2024-01-05"), Units: fundfolio.Q(10), Price: decimal.NewFromInt(100)}},
	}}
	require.NoError(t, s.SaveTransactions(ctx, "alice", first))

	second := []fundfolio.SchemeRecord{{
		SchemeID:  "118989",
		Purchases: []fundfolio.Leg{{Date: fundfolio.MustParse("2024-01-10"), Units: fundfolio.Q(20), Price: decimal.NewFromInt(50)}},
	}}
	require.NoError(t, s.SaveTransactions(ctx, "alice", second))

	got, err := s.Transactions(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "118989", got[0].SchemeID)
}

func TestTransactionsNoUser(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Transactions(context.Background(), "nobody")
	assert.ErrorIs(t, err, fundfolio.ErrNoTransactions)
}

func TestAppendTrade(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	row := fundfolio.TradeRow{
		SchemeID: "120503",
		Side:     "purchase",
		Date:     fundfolio.MustParse("2024-01-05"),
		Units:    fundfolio.Q(10),
		Price:    decimal.NewFromInt(100),
	}
	require.NoError(t, s.AppendTrade(ctx, "alice", row))

	got, err := s.Transactions(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Len(t, got[0].Purchases, 1)
	assert.True(t, got[0].Purchases[0].Units.Equal(fundfolio.Q(10)))
}

func TestAppendTradeInvalidSide(t *testing.T) {
	s := openTestStore(t)

	err := s.AppendTrade(context.Background(), "alice", fundfolio.TradeRow{SchemeID: "120503", Side: "redeem"})
	assert.ErrorIs(t, err, fundfolio.ErrInvalidSide)
}

func TestUsers(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	row := fundfolio.TradeRow{SchemeID: "120503", Side: "buy", Date: fundfolio.MustParse("2024-01-05"), Units: fundfolio.Q(1), Price: decimal.NewFromInt(100)}
	require.NoError(t, s.AppendTrade(ctx, "bob", row))
	require.NoError(t, s.AppendTrade(ctx, "alice", row))

	users, err := s.Users(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob"}, users)
}

func TestMapping(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	m, err := s.Mapping(ctx)
	require.NoError(t, err)
	assert.Empty(t, m)

	require.NoError(t, s.PutMapping(ctx, "120503", "Axis Bluechip Fund"))
	require.NoError(t, s.PutMapping(ctx, "120503", "Axis Bluechip Fund Direct Growth"))

	m, err = s.Mapping(ctx)
	require.NoError(t, err)
	assert.Equal(t, fundfolio.Mapping{"120503": "Axis Bluechip Fund Direct Growth"}, m)
	assert.Equal(t, "Axis Bluechip Fund Direct Growth", m.Name("120503"))
	assert.Equal(t, fundfolio.UnknownScheme, m.Name("999999"))
}
