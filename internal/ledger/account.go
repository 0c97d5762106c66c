package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account holds a user's identity and the two wallet balances. Balances are
// written only by the Engine; everything else treats Account as read-only.
type Account struct {
	ID           string          `json:"id"`
	Mobile       string          `json:"mobile"`
	Username     string          `json:"username"`
	MainBalance  decimal.Decimal `json:"main_balance"`
	BonusBalance decimal.Decimal `json:"bonus_balance"`
	CreatedAt    time.Time       `json:"created_at"`
}

// Total is the combined spendable amount (main + bonus).
func (a *Account) Total() decimal.Decimal {
	return a.MainBalance.Add(a.BonusBalance)
}

// clampMoney rounds a balance to 2 decimals and floors it at zero. A debit
// validated against the combined total may still exceed one bucket alone; the
// overshoot is absorbed here instead of going negative.
func clampMoney(d decimal.Decimal) decimal.Decimal {
	d = d.Round(2)
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
