package wallet

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"winrush-wallet/internal/ledger"
	"winrush-wallet/internal/store"
)

var minWithdrawal = decimal.NewFromInt(130)

// EntryStore is the transaction-history read surface.
type EntryStore interface {
	ListEntries(ctx context.Context, f store.EntryFilter, limit, offset int) ([]ledger.Entry, error)
}

// Service fronts the user-facing wallet flows: UPI deposits awaiting manual
// approval, immediate withdrawals, and transaction history.
type Service struct {
	engine  *ledger.Engine
	entries EntryStore
}

func NewService(engine *ledger.Engine, entries EntryStore) *Service {
	return &Service{engine: engine, entries: entries}
}

func (s *Service) Balances(ctx context.Context, accountID string) (*ledger.Account, error) {
	return s.engine.Account(ctx, accountID)
}

// CreateDeposit records a manual-payment deposit as pending; no balance change
// happens until an admin finalizes it against the bank statement.
func (s *Service) CreateDeposit(ctx context.Context, accountID string, amount decimal.Decimal, utr string) (*ledger.Result, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	return s.engine.PostEvent(ctx, accountID, ledger.KindDeposit, amount, ledger.PostOptions{
		Status:      ledger.StatusPending,
		ReferenceID: utr,
	})
}

// CreateWithdrawal debits the main balance immediately. Bonus funds never
// cover a withdrawal.
func (s *Service) CreateWithdrawal(ctx context.Context, accountID string, amount decimal.Decimal, upiID string) (*ledger.Result, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if amount.LessThan(minWithdrawal) {
		return nil, ErrBelowMinimumWithdrawal
	}
	if !strings.Contains(upiID, "@") {
		return nil, ErrInvalidUPI
	}
	return s.engine.PostEvent(ctx, accountID, ledger.KindWithdrawal, amount, ledger.PostOptions{
		ReferenceID: "WD_" + ledger.NewID(),
	})
}

func (s *Service) Transactions(ctx context.Context, accountID string, kind ledger.Kind, status ledger.Status, limit, offset int) ([]ledger.Entry, error) {
	return s.entries.ListEntries(ctx, store.EntryFilter{
		AccountID: accountID,
		Kind:      kind,
		Status:    status,
	}, limit, offset)
}
