package play

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"winrush-wallet/internal/game"
	"winrush-wallet/internal/ledger"
	"winrush-wallet/internal/store"
)

func newTestService(t *testing.T, mainBal, bonusBal int64) (*Service, *game.Catalog, *ledger.Engine, string) {
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
	catalog := game.DefaultCatalog()
	return NewService(engine, catalog), catalog, engine, acct.ID
}

func TestPlaceBetLabelsEntryWithGame(t *testing.T) {
	svc, _, engine, id := newTestService(t, 100, 20)

	res, err := svc.PlaceBet(context.Background(), id, "chicken", decimal.NewFromInt(15))
	if err != nil {
		t.Fatalf("place bet: %v", err)
	}
	if res.Entry.Kind != ledger.KindBet || res.Entry.GameLabel == "" {
		t.Fatalf("unexpected entry: %+v", res.Entry)
	}
	acct, err := engine.Account(context.Background(), id)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	// Bonus is drawn first.
	if acct.MainBalance.String() != "100" || acct.BonusBalance.String() != "5" {
		t.Fatalf("balances = %s/%s, want 100/5", acct.MainBalance, acct.BonusBalance)
	}
}

func TestPlaceBetGating(t *testing.T) {
	svc, catalog, _, id := newTestService(t, 100, 0)
	stake := decimal.NewFromInt(10)

	if _, err := svc.PlaceBet(context.Background(), id, "roulette", stake); !errors.Is(err, ErrUnknownGame) {
		t.Fatalf("unknown game err = %v, want ErrUnknownGame", err)
	}

	if _, err := catalog.SetStatus("chicken", false, false, decimal.Zero); err != nil {
		t.Fatalf("set status: %v", err)
	}
	if _, err := svc.PlaceBet(context.Background(), id, "chicken", stake); !errors.Is(err, ErrGameInactive) {
		t.Fatalf("inactive err = %v, want ErrGameInactive", err)
	}

	if _, err := catalog.SetStatus("chicken", true, true, decimal.Zero); err != nil {
		t.Fatalf("set status: %v", err)
	}
	if _, err := svc.PlaceBet(context.Background(), id, "chicken", stake); !errors.Is(err, ErrGameUnderMaintenance) {
		t.Fatalf("maintenance err = %v, want ErrGameUnderMaintenance", err)
	}

	if _, err := catalog.SetStatus("chicken", true, false, decimal.NewFromInt(50)); err != nil {
		t.Fatalf("set status: %v", err)
	}
	if _, err := svc.PlaceBet(context.Background(), id, "chicken", stake); !errors.Is(err, ErrBelowGameMinimum) {
		t.Fatalf("below minimum err = %v, want ErrBelowGameMinimum", err)
	}
}

func TestSettle(t *testing.T) {
	svc, _, engine, id := newTestService(t, 100, 0)

	if _, err := svc.Settle(context.Background(), id, "colour", decimal.NewFromInt(40), OutcomeWin); err != nil {
		t.Fatalf("settle win: %v", err)
	}
	if _, err := svc.Settle(context.Background(), id, "colour", decimal.NewFromInt(10), OutcomeLoss); err != nil {
		t.Fatalf("settle loss: %v", err)
	}
	acct, err := engine.Account(context.Background(), id)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if acct.MainBalance.String() != "130" {
		t.Fatalf("main balance = %s, want 130", acct.MainBalance)
	}

	if _, err := svc.Settle(context.Background(), id, "colour", decimal.NewFromInt(10), Outcome("draw")); !errors.Is(err, ErrInvalidOutcome) {
		t.Fatalf("err = %v, want ErrInvalidOutcome", err)
	}
	if _, err := svc.Settle(context.Background(), id, "colour", decimal.Zero, OutcomeWin); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("err = %v, want ErrInvalidAmount", err)
	}
}
