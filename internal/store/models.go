package store

import (
	"github.com/shopspring/decimal"

	"winrush-wallet/internal/ledger"
)

type EntryFilter struct {
	AccountID string
	Kind      ledger.Kind
	Status    ledger.Status
}

type LeaderboardRow struct {
	AccountID     string          `json:"account_id"`
	Username      string          `json:"username"`
	TotalWinnings decimal.Decimal `json:"total_winnings"`
}
