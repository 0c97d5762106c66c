package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"winrush-wallet/internal/ledger"
)

const entryColumns = `id, account_id, kind, amount::text, status, reference_id, game_label, created_at`

func (s *Store) FindEntry(ctx context.Context, entryID string) (*ledger.Entry, error) {
	row := s.Pool.QueryRow(ctx,
		`SELECT `+entryColumns+` FROM ledger_entries WHERE id = $1`, entryID)
	return scanEntry(row)
}

func (s *Store) ListEntries(ctx context.Context, f EntryFilter, limit, offset int) ([]ledger.Entry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.Pool.Query(ctx,
		`SELECT `+entryColumns+`
		 FROM ledger_entries
		 WHERE ($1 = '' OR account_id = $1)
		   AND ($2 = '' OR kind = $2)
		   AND ($3 = '' OR status = $3)
		 ORDER BY created_at DESC, id DESC
		 LIMIT $4 OFFSET $5`,
		f.AccountID, string(f.Kind), string(f.Status), limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEntries(rows)
}

// ListPendingDeposits returns the admin reconciliation queue, oldest first.
func (s *Store) ListPendingDeposits(ctx context.Context, limit, offset int) ([]ledger.Entry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.Pool.Query(ctx,
		`SELECT `+entryColumns+`
		 FROM ledger_entries
		 WHERE kind = 'deposit' AND status = 'pending'
		 ORDER BY created_at ASC, id ASC
		 LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEntries(rows)
}

func (s *Store) Leaderboard(ctx context.Context, limit, offset int) ([]LeaderboardRow, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.Pool.Query(ctx,
		`SELECT a.id, a.username, COALESCE(SUM(e.amount), 0)::text
		 FROM accounts a
		 JOIN ledger_entries e
		   ON e.account_id = a.id AND e.kind = 'win' AND e.status = 'completed'
		 GROUP BY a.id, a.username
		 ORDER BY SUM(e.amount) DESC, a.id ASC
		 LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]LeaderboardRow, 0, limit)
	for rows.Next() {
		var r LeaderboardRow
		var total string
		if err := rows.Scan(&r.AccountID, &r.Username, &total); err != nil {
			return nil, err
		}
		if r.TotalWinnings, err = decimal.NewFromString(total); err != nil {
			return nil, fmt.Errorf("parse winnings: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func scanEntry(row pgx.Row) (*ledger.Entry, error) {
	var e ledger.Entry
	var kind, status, amount string
	if err := row.Scan(&e.ID, &e.AccountID, &kind, &amount, &status, &e.ReferenceID, &e.GameLabel, &e.CreatedAt); err != nil {
		return nil, mapNotFound(err)
	}
	e.Kind = ledger.Kind(kind)
	e.Status = ledger.Status(status)
	var err error
	if e.Amount, err = decimal.NewFromString(amount); err != nil {
		return nil, fmt.Errorf("parse amount: %w", err)
	}
	return &e, nil
}

func collectEntries(rows pgx.Rows) ([]ledger.Entry, error) {
	var out []ledger.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}
