// Package store persists user trade ledgers and scheme name mappings in a
// local SQLite database.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fundfolio/fundfolio"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS trades (
	user      TEXT NOT NULL,
	scheme_id TEXT NOT NULL,
	isin      TEXT NOT NULL DEFAULT '',
	side      TEXT NOT NULL,
	date      TEXT NOT NULL,
	units     TEXT NOT NULL,
	price     TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_trades_user ON trades(user);

CREATE TABLE IF NOT EXISTS mappings (
	scheme_id TEXT PRIMARY KEY,
	name      TEXT NOT NULL
);`

// Store gives access to the trade ledger database.
type Store struct {
	db  *sql.DB
	log zerolog.Logger
}

// Open opens (creating if needed) the database at path and ensures the schema.
func Open(path string, log zerolog.Logger) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating store directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("opening store %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("opening store %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating store %s: %w", path, err)
	}
	log.Debug().Str("path", path).Msg("store opened")
	return &Store{db: db, log: log}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// Transactions loads a user's ledger as scheme records, legs in insertion
// order. It fails with fundfolio.ErrNoTransactions when the user has none.
func (s *Store) Transactions(ctx context.Context, user string) ([]fundfolio.SchemeRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT scheme_id, isin, side, date, units, price FROM trades WHERE user = ? ORDER BY rowid`, user)
	if err != nil {
		return nil, fmt.Errorf("loading trades for %s: %w", user, err)
	}
	defer rows.Close()

	var recs []fundfolio.SchemeRecord
	for rows.Next() {
		var row fundfolio.TradeRow
		var date, units, price string
		if err := rows.Scan(&row.SchemeID, &row.ISIN, &row.Side, &date, &units, &price); err != nil {
			return nil, fmt.Errorf("loading trades for %s: %w", user, err)
		}
		if row.Date, err = fundfolio.ParseDate(date); err != nil {
			return nil, fmt.Errorf("loading trades for %s: %w", user, err)
		}
		u, err := decimal.NewFromString(units)
		if err != nil {
			return nil, fmt.Errorf("loading trades for %s: invalid units %q: %w", user, units, err)
		}
		row.Units = fundfolio.Q(u)
		if row.Price, err = decimal.NewFromString(price); err != nil {
			return nil, fmt.Errorf("loading trades for %s: invalid price %q: %w", user, price, err)
		}
		if recs, err = fundfolio.MergeTrade(recs, row); err != nil {
			return nil, fmt.Errorf("loading trades for %s: %w", user, err)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("loading trades for %s: %w", user, err)
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("user %s: %w", user, fundfolio.ErrNoTransactions)
	}
	return recs, nil
}

// SaveTransactions replaces a user's ledger with the given scheme records.
func (s *Store) SaveTransactions(ctx context.Context, user string, recs []fundfolio.SchemeRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("saving trades for %s: %w", user, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM trades WHERE user = ?`, user); err != nil {
		return fmt.Errorf("saving trades for %s: %w", user, err)
	}
	insert := func(rec fundfolio.SchemeRecord, leg fundfolio.Leg, side fundfolio.Side) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO trades (user, scheme_id, isin, side, date, units, price) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			user, rec.SchemeID, rec.ISIN, side.String(), leg.Date.String(), leg.Units.String(), leg.Price.String())
		return err
	}
	count := 0
	for _, rec := range recs {
		for _, leg := range rec.Purchases {
			if err := insert(rec, leg, fundfolio.Purchase); err != nil {
				return fmt.Errorf("saving trades for %s: %w", user, err)
			}
			count++
		}
		for _, leg := range rec.Sells {
			if err := insert(rec, leg, fundfolio.Sell); err != nil {
				return fmt.Errorf("saving trades for %s: %w", user, err)
			}
			count++
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("saving trades for %s: %w", user, err)
	}
	s.log.Debug().Str("user", user).Int("trades", count).Msg("ledger saved")
	return nil
}

// AppendTrade validates and appends one raw trade row to a user's ledger.
func (s *Store) AppendTrade(ctx context.Context, user string, row fundfolio.TradeRow) error {
	side, err := fundfolio.ParseSide(row.Side)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO trades (user, scheme_id, isin, side, date, units, price) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		user, row.SchemeID, row.ISIN, side.String(), row.Date.String(), row.Units.String(), row.Price.String())
	if err != nil {
		return fmt.Errorf("appending trade for %s: %w", user, err)
	}
	return nil
}

// Users returns the distinct users holding a ledger.
func (s *Store) Users(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT user FROM trades ORDER BY user`)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()
	var users []string
	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return nil, fmt.Errorf("listing users: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// Mapping loads the scheme id to display name mapping.
func (s *Store) Mapping(ctx context.Context) (fundfolio.Mapping, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT scheme_id, name FROM mappings`)
	if err != nil {
		return nil, fmt.Errorf("loading mappings: %w", err)
	}
	defer rows.Close()
	m := fundfolio.Mapping{}
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("loading mappings: %w", err)
		}
		m[id] = name
	}
	return m, rows.Err()
}

// PutMapping stores or replaces the display name for a scheme id.
func (s *Store) PutMapping(ctx context.Context, schemeID, name string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO mappings (scheme_id, name) VALUES (?, ?)
		 ON CONFLICT(scheme_id) DO UPDATE SET name = excluded.name`, schemeID, name)
	if err != nil {
		return fmt.Errorf("saving mapping for %s: %w", schemeID, err)
	}
	return nil
}
