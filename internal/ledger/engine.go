package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// minReferenceLen matches the shortest UTR the payment rails hand out.
const minReferenceLen = 10

var minStake = decimal.NewFromInt(1)

// PostOptions carries the optional parts of a posted event. Status defaults to
// completed; pending is accepted for deposits only.
type PostOptions struct {
	Status      Status
	ReferenceID string
	GameLabel   string
}

type Result struct {
	Account *Account `json:"account"`
	Entry   *Entry   `json:"entry"`
}

// Engine is the sole mutator of account balances. Every operation runs one
// validate-and-apply cycle under a per-account lock, then persists the updated
// account together with the appended entry through the Registry.
type Engine struct {
	reg Registry

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewEngine(reg Registry) *Engine {
	return &Engine{reg: reg, locks: make(map[string]*sync.Mutex)}
}

// lockAccount serializes mutations for one account. Distinct accounts proceed
// in parallel.
func (e *Engine) lockAccount(accountID string) func() {
	e.mu.Lock()
	l, ok := e.locks[accountID]
	if !ok {
		l = &sync.Mutex{}
		e.locks[accountID] = l
	}
	e.mu.Unlock()
	l.Lock()
	return l.Unlock
}

// Account returns the current snapshot for an account.
func (e *Engine) Account(ctx context.Context, accountID string) (*Account, error) {
	if accountID == "" {
		return nil, ErrUnauthenticated
	}
	return e.reg.Load(ctx, accountID)
}

// PostEvent validates and applies one balance-affecting event, appending the
// ledger entry and persisting both as a single unit. Callers may pass signed
// deltas for win/loss/withdrawal convenience; the engine normalizes to a
// non-negative magnitude and derives the direction from the kind.
func (e *Engine) PostEvent(ctx context.Context, accountID string, kind Kind, amount decimal.Decimal, opts PostOptions) (*Result, error) {
	if accountID == "" {
		return nil, ErrUnauthenticated
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidRequest, string(kind))
	}
	status := opts.Status
	if status == "" {
		status = StatusCompleted
	}
	if status != StatusCompleted && status != StatusPending {
		return nil, fmt.Errorf("%w: entries cannot be created %s", ErrInvalidRequest, string(status))
	}
	if status == StatusPending && kind != KindDeposit {
		return nil, fmt.Errorf("%w: only deposits may be created pending", ErrInvalidRequest)
	}
	magnitude := amount.Abs().Round(2)
	if magnitude.IsZero() {
		return nil, fmt.Errorf("%w: zero amount", ErrInvalidRequest)
	}

	unlock := e.lockAccount(accountID)
	defer unlock()

	acct, err := e.reg.Load(ctx, accountID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("load account: %w", err)
	}
	if kind == KindBet && magnitude.LessThan(minStake) {
		return nil, ErrBelowMinimumStake
	}
	if kind.debits() && acct.Total().LessThan(magnitude) {
		return nil, ErrInsufficientFunds
	}
	if kind.requiresReference() && len(strings.TrimSpace(opts.ReferenceID)) < minReferenceLen {
		return nil, ErrInvalidReference
	}

	updated := *acct
	if status == StatusCompleted {
		applyCompleted(&updated, kind, magnitude)
	}
	updated.MainBalance = clampMoney(updated.MainBalance)
	updated.BonusBalance = clampMoney(updated.BonusBalance)

	entry := &Entry{
		ID:          NewID(),
		AccountID:   acct.ID,
		Kind:        kind,
		Amount:      magnitude,
		Status:      status,
		ReferenceID: strings.TrimSpace(opts.ReferenceID),
		GameLabel:   opts.GameLabel,
		CreatedAt:   time.Now().UTC(),
	}
	if err := e.reg.Persist(ctx, &updated, entry); err != nil {
		return nil, fmt.Errorf("persist %s: %w", string(kind), err)
	}
	return &Result{Account: &updated, Entry: entry}, nil
}

func applyCompleted(acct *Account, kind Kind, magnitude decimal.Decimal) {
	switch kind {
	case KindDeposit, KindWin:
		acct.MainBalance = acct.MainBalance.Add(magnitude)
	case KindWithdrawal, KindLoss:
		// Debits the main balance only: bonus funds are never withdrawable.
		acct.MainBalance = acct.MainBalance.Sub(magnitude)
	case KindBonusCredit:
		acct.BonusBalance = acct.BonusBalance.Add(magnitude)
	case KindBet:
		// Bonus-first draw: promotional credit is consumed before real funds.
		if acct.BonusBalance.GreaterThanOrEqual(magnitude) {
			acct.BonusBalance = acct.BonusBalance.Sub(magnitude)
			return
		}
		shortfall := magnitude.Sub(acct.BonusBalance)
		acct.BonusBalance = decimal.Zero
		acct.MainBalance = acct.MainBalance.Sub(shortfall)
	}
}

// FinalizePending transitions a pending entry to a terminal status exactly
// once. A completed deposit applies its deferred main-balance credit; a
// rejection has no balance effect. Any entry already terminal returns
// ErrAlreadyFinalized.
func (e *Engine) FinalizePending(ctx context.Context, entryID string, resolution Status) (*Result, error) {
	if resolution != StatusCompleted && resolution != StatusRejected {
		return nil, fmt.Errorf("%w: resolution must be completed or rejected", ErrInvalidRequest)
	}
	if entryID == "" {
		return nil, fmt.Errorf("%w: missing entry id", ErrInvalidRequest)
	}
	entry, err := e.reg.FindEntry(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("find entry: %w", err)
	}

	unlock := e.lockAccount(entry.AccountID)
	defer unlock()

	// Re-read under the account lock: a concurrent finalization may have won.
	entry, err = e.reg.FindEntry(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("find entry: %w", err)
	}
	if entry.Status != StatusPending {
		return nil, ErrAlreadyFinalized
	}
	acct, err := e.reg.Load(ctx, entry.AccountID)
	if err != nil {
		return nil, fmt.Errorf("load account: %w", err)
	}

	updated := *acct
	if resolution == StatusCompleted && entry.Kind == KindDeposit {
		updated.MainBalance = clampMoney(updated.MainBalance.Add(entry.Amount))
	}
	finalized := *entry
	finalized.Status = resolution
	if err := e.reg.Persist(ctx, &updated, &finalized); err != nil {
		return nil, fmt.Errorf("persist finalization: %w", err)
	}
	return &Result{Account: &updated, Entry: &finalized}, nil
}
