package admin

import (
	"sync"

	"github.com/shopspring/decimal"

	"winrush-wallet/internal/config"
)

// BonusSettings holds the runtime-mutable welcome bonus configuration. Reads
// happen at account creation only; changes never touch existing balances.
type BonusSettings struct {
	mu      sync.RWMutex
	enabled bool
	amount  decimal.Decimal
}

func NewBonusSettings(cfg config.BonusConfig) *BonusSettings {
	return &BonusSettings{
		enabled: cfg.WelcomeBonusEnabled,
		amount:  decimal.NewFromFloat(cfg.BonusAmount).Round(2),
	}
}

func (b *BonusSettings) Welcome() (bool, decimal.Decimal) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.enabled, b.amount
}

func (b *BonusSettings) Set(enabled bool, amount decimal.Decimal) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.enabled = enabled
	if amount.IsPositive() {
		b.amount = amount.Round(2)
	}
}
