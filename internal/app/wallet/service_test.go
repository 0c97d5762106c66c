package wallet

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"winrush-wallet/internal/ledger"
	"winrush-wallet/internal/store"
)

func newTestService(t *testing.T, mainBal, bonusBal int64) (*Service, *ledger.Engine, string) {
	t.Helper()
	mem := store.NewMemory()
	acct := &ledger.Account{
		ID:           ledger.NewID(),
		Mobile:       "9876543210",
		Username:     "Player 3210",
		MainBalance:  decimal.NewFromInt(mainBal),
		BonusBalance: decimal.NewFromInt(bonusBal),
		CreatedAt:    time.Now().UTC(),
	}
	if err := mem.CreateAccount(context.Background(), acct); err != nil {
		t.Fatalf("seed account: %v", err)
	}
	engine := ledger.NewEngine(mem)
	return NewService(engine, mem), engine, acct.ID
}

func TestCreateDepositStaysPending(t *testing.T) {
	svc, engine, id := newTestService(t, 10, 0)

	res, err := svc.CreateDeposit(context.Background(), id, decimal.NewFromInt(500), "UTR1234567890")
	if err != nil {
		t.Fatalf("create deposit: %v", err)
	}
	if res.Entry.Status != ledger.StatusPending {
		t.Fatalf("status = %s, want pending", res.Entry.Status)
	}
	if res.Entry.ReferenceID != "UTR1234567890" {
		t.Fatalf("reference = %q", res.Entry.ReferenceID)
	}
	acct, err := engine.Account(context.Background(), id)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if acct.MainBalance.String() != "10" {
		t.Fatalf("main balance moved to %s before finalization", acct.MainBalance)
	}
}

func TestCreateDepositValidation(t *testing.T) {
	svc, _, id := newTestService(t, 10, 0)
	cases := []struct {
		name    string
		amount  decimal.Decimal
		utr     string
		wantErr error
	}{
		{"zero amount", decimal.Zero, "UTR1234567890", ErrInvalidAmount},
		{"negative amount", decimal.NewFromInt(-5), "UTR1234567890", ErrInvalidAmount},
		{"short utr", decimal.NewFromInt(100), "UTR123", ledger.ErrInvalidReference},
		{"blank utr", decimal.NewFromInt(100), "          ", ledger.ErrInvalidReference},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.CreateDeposit(context.Background(), id, tc.amount, tc.utr); !errors.Is(err, tc.wantErr) {
				t.Fatalf("err = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestCreateWithdrawal(t *testing.T) {
	svc, engine, id := newTestService(t, 500, 50)

	res, err := svc.CreateWithdrawal(context.Background(), id, decimal.NewFromInt(130), "asha@upi")
	if err != nil {
		t.Fatalf("create withdrawal: %v", err)
	}
	if res.Entry.Status != ledger.StatusCompleted {
		t.Fatalf("status = %s, want completed", res.Entry.Status)
	}
	if res.Entry.ReferenceID == "" {
		t.Fatal("expected a generated payout reference")
	}
	acct, err := engine.Account(context.Background(), id)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if acct.MainBalance.String() != "370" || acct.BonusBalance.String() != "50" {
		t.Fatalf("balances = %s/%s, want 370/50", acct.MainBalance, acct.BonusBalance)
	}
}

func TestCreateWithdrawalValidation(t *testing.T) {
	svc, _, id := newTestService(t, 500, 0)
	cases := []struct {
		name    string
		amount  decimal.Decimal
		upi     string
		wantErr error
	}{
		{"zero amount", decimal.Zero, "asha@upi", ErrInvalidAmount},
		{"below minimum", decimal.NewFromInt(129), "asha@upi", ErrBelowMinimumWithdrawal},
		{"bad upi", decimal.NewFromInt(200), "asha.upi", ErrInvalidUPI},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.CreateWithdrawal(context.Background(), id, tc.amount, tc.upi); !errors.Is(err, tc.wantErr) {
				t.Fatalf("err = %v, want %v", err, tc.wantErr)
			}
		})
	}

	// Minimum passes validation but exceeds the balance.
	poor, _, poorID := newTestService(t, 100, 100)
	if _, err := poor.CreateWithdrawal(context.Background(), poorID, decimal.NewFromInt(250), "asha@upi"); !errors.Is(err, ledger.ErrInsufficientFunds) {
		t.Fatalf("err = %v, want ErrInsufficientFunds", err)
	}
}

func TestTransactionsFilter(t *testing.T) {
	svc, _, id := newTestService(t, 1000, 0)
	if _, err := svc.CreateDeposit(context.Background(), id, decimal.NewFromInt(100), "UTR1234567890"); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if _, err := svc.CreateWithdrawal(context.Background(), id, decimal.NewFromInt(200), "asha@upi"); err != nil {
		t.Fatalf("withdrawal: %v", err)
	}

	all, err := svc.Transactions(context.Background(), id, "", "", 10, 0)
	if err != nil {
		t.Fatalf("transactions: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(all))
	}
	// Newest first.
	if all[0].Kind != ledger.KindWithdrawal {
		t.Fatalf("first entry kind = %s, want withdrawal", all[0].Kind)
	}

	pending, err := svc.Transactions(context.Background(), id, ledger.KindDeposit, ledger.StatusPending, 10, 0)
	if err != nil {
		t.Fatalf("filtered transactions: %v", err)
	}
	if len(pending) != 1 || pending[0].Kind != ledger.KindDeposit {
		t.Fatalf("unexpected filter result: %+v", pending)
	}
}
