package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

type Kind string

const (
	KindDeposit     Kind = "deposit"
	KindWithdrawal  Kind = "withdrawal"
	KindWin         Kind = "win"
	KindLoss        Kind = "loss"
	KindBet         Kind = "bet"
	KindBonusCredit Kind = "bonus_credit"
)

func (k Kind) Valid() bool {
	switch k {
	case KindDeposit, KindWithdrawal, KindWin, KindLoss, KindBet, KindBonusCredit:
		return true
	}
	return false
}

// debits reports whether the kind removes funds from the account.
func (k Kind) debits() bool {
	switch k {
	case KindWithdrawal, KindLoss, KindBet:
		return true
	}
	return false
}

// requiresReference reports whether the kind must carry an external payment
// reference (a bank UTR or payout reference).
func (k Kind) requiresReference() bool {
	return k == KindDeposit || k == KindWithdrawal
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusRejected  Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusFailed, StatusRejected:
		return true
	}
	return false
}

// Terminal statuses permit no further transition.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed || s == StatusRejected
}

// Entry is one immutable record of a balance-affecting event. Amount is always
// a non-negative magnitude; direction is derived from Kind, never from sign.
type Entry struct {
	ID          string          `json:"id"`
	AccountID   string          `json:"account_id"`
	Kind        Kind            `json:"kind"`
	Amount      decimal.Decimal `json:"amount"`
	Status      Status          `json:"status"`
	ReferenceID string          `json:"reference_id,omitempty"`
	GameLabel   string          `json:"game_label,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}
