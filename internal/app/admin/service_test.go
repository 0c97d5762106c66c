package admin

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"winrush-wallet/internal/config"
	"winrush-wallet/internal/game"
	"winrush-wallet/internal/ledger"
	"winrush-wallet/internal/store"
)

func newTestService(t *testing.T) (*Service, *ledger.Engine, string) {
	t.Helper()
	mem := store.NewMemory()
	acct := &ledger.Account{
		ID:        ledger.NewID(),
		Mobile:    "9876543210",
		Username:  "Player 3210",
		CreatedAt: time.Now().UTC(),
	}
	if err := mem.CreateAccount(context.Background(), acct); err != nil {
		t.Fatalf("seed account: %v", err)
	}
	engine := ledger.NewEngine(mem)
	bonus := NewBonusSettings(config.BonusConfig{WelcomeBonusEnabled: true, BonusAmount: 20})
	return NewService(engine, mem, game.DefaultCatalog(), bonus), engine, acct.ID
}

func TestFinalizeResolutions(t *testing.T) {
	svc, engine, id := newTestService(t)

	deposit := func() string {
		t.Helper()
		res, err := engine.PostEvent(context.Background(), id, ledger.KindDeposit, decimal.NewFromInt(100), ledger.PostOptions{
			Status:      ledger.StatusPending,
			ReferenceID: "UTR1234567890",
		})
		if err != nil {
			t.Fatalf("create pending deposit: %v", err)
		}
		return res.Entry.ID
	}

	if _, err := svc.Finalize(context.Background(), deposit(), "failed"); !errors.Is(err, ErrInvalidResolution) {
		t.Fatalf("err = %v, want ErrInvalidResolution", err)
	}
	if _, err := svc.Finalize(context.Background(), deposit(), ""); !errors.Is(err, ErrInvalidResolution) {
		t.Fatalf("err = %v, want ErrInvalidResolution", err)
	}

	res, err := svc.Finalize(context.Background(), deposit(), "completed")
	if err != nil {
		t.Fatalf("finalize completed: %v", err)
	}
	if res.Account.MainBalance.String() != "100" {
		t.Fatalf("main balance = %s, want 100", res.Account.MainBalance)
	}

	rej, err := svc.Finalize(context.Background(), deposit(), "rejected")
	if err != nil {
		t.Fatalf("finalize rejected: %v", err)
	}
	if rej.Account.MainBalance.String() != "100" {
		t.Fatalf("rejection moved balance to %s", rej.Account.MainBalance)
	}
}

func TestPendingDepositsQueue(t *testing.T) {
	svc, engine, id := newTestService(t)
	for i := 0; i < 3; i++ {
		if _, err := engine.PostEvent(context.Background(), id, ledger.KindDeposit, decimal.NewFromInt(100), ledger.PostOptions{
			Status:      ledger.StatusPending,
			ReferenceID: "UTR1234567890",
		}); err != nil {
			t.Fatalf("create pending deposit: %v", err)
		}
	}

	pending, err := svc.PendingDeposits(context.Background(), 10, 0)
	if err != nil {
		t.Fatalf("pending deposits: %v", err)
	}
	if len(pending) != 3 {
		t.Fatalf("expected 3 pending, got %d", len(pending))
	}

	if _, err := svc.Finalize(context.Background(), pending[0].ID, "completed"); err != nil {
		t.Fatalf("finalize: %v", err)
	}
	pending, err = svc.PendingDeposits(context.Background(), 10, 0)
	if err != nil {
		t.Fatalf("pending deposits: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("expected 2 pending after finalize, got %d", len(pending))
	}
}

func TestBonusConfigRoundTrip(t *testing.T) {
	svc, _, _ := newTestService(t)

	view := svc.Bonus()
	if !view.Enabled || view.Amount.String() != "20" {
		t.Fatalf("unexpected initial view: %+v", view)
	}

	view = svc.SetBonus(false, decimal.NewFromInt(50))
	if view.Enabled || view.Amount.String() != "50" {
		t.Fatalf("unexpected updated view: %+v", view)
	}

	// Non-positive amounts keep the previous value.
	view = svc.SetBonus(true, decimal.Zero)
	if !view.Enabled || view.Amount.String() != "50" {
		t.Fatalf("unexpected view after zero amount: %+v", view)
	}
}

func TestSetGameStatus(t *testing.T) {
	svc, _, _ := newTestService(t)

	g, err := svc.SetGameStatus("rummy", true, false, decimal.NewFromInt(25))
	if err != nil {
		t.Fatalf("set game status: %v", err)
	}
	if !g.Active || g.Maintenance || g.MinBet.String() != "25" {
		t.Fatalf("unexpected game: %+v", g)
	}

	if _, err := svc.SetGameStatus("poker", true, false, decimal.Zero); !errors.Is(err, game.ErrUnknownGame) {
		t.Fatalf("err = %v, want ErrUnknownGame", err)
	}
}
