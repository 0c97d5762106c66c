package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"winrush-wallet/internal/ledger"
)

const accountColumns = `id, mobile, username, main_balance::text, bonus_balance::text, created_at`

func (s *Store) CreateAccount(ctx context.Context, a *ledger.Account) error {
	_, err := s.Pool.Exec(ctx,
		`INSERT INTO accounts (id, mobile, username, main_balance, bonus_balance, created_at)
		 VALUES ($1, $2, $3, $4::numeric, $5::numeric, $6)`,
		a.ID, a.Mobile, a.Username, a.MainBalance.String(), a.BonusBalance.String(), a.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrMobileTaken
		}
		return err
	}
	return nil
}

func (s *Store) Load(ctx context.Context, accountID string) (*ledger.Account, error) {
	row := s.Pool.QueryRow(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE id = $1`, accountID)
	return scanAccount(row)
}

func (s *Store) FindByMobile(ctx context.Context, mobile string) (*ledger.Account, error) {
	row := s.Pool.QueryRow(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE mobile = $1`, mobile)
	return scanAccount(row)
}

// Persist writes the account snapshot and the entry in one transaction; entry
// upsert only ever touches status, matching the finalization transition.
func (s *Store) Persist(ctx context.Context, a *ledger.Account, e *ledger.Entry) error {
	tx, err := s.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`UPDATE accounts SET main_balance = $1::numeric, bonus_balance = $2::numeric, updated_at = now() WHERE id = $3`,
		a.MainBalance.String(), a.BonusBalance.String(), a.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ledger.ErrNotFound
	}
	_, err = tx.Exec(ctx,
		`INSERT INTO ledger_entries (id, account_id, kind, amount, status, reference_id, game_label, created_at)
		 VALUES ($1, $2, $3, $4::numeric, $5, $6, $7, $8)
		 ON CONFLICT (id) DO UPDATE SET status = EXCLUDED.status`,
		e.ID, e.AccountID, string(e.Kind), e.Amount.String(), string(e.Status), e.ReferenceID, e.GameLabel, e.CreatedAt)
	if err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func scanAccount(row pgx.Row) (*ledger.Account, error) {
	var a ledger.Account
	var main, bonus string
	if err := row.Scan(&a.ID, &a.Mobile, &a.Username, &main, &bonus, &a.CreatedAt); err != nil {
		return nil, mapNotFound(err)
	}
	var err error
	if a.MainBalance, err = decimal.NewFromString(main); err != nil {
		return nil, fmt.Errorf("parse main balance: %w", err)
	}
	if a.BonusBalance, err = decimal.NewFromString(bonus); err != nil {
		return nil, fmt.Errorf("parse bonus balance: %w", err)
	}
	return &a, nil
}
