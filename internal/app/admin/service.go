package admin

import (
	"context"

	"github.com/shopspring/decimal"

	"winrush-wallet/internal/game"
	"winrush-wallet/internal/ledger"
	"winrush-wallet/internal/store"
)

// EntryStore is the ledger read surface the admin console needs.
type EntryStore interface {
	ListEntries(ctx context.Context, f store.EntryFilter, limit, offset int) ([]ledger.Entry, error)
	ListPendingDeposits(ctx context.Context, limit, offset int) ([]ledger.Entry, error)
}

// Service is the admin-side surface: finalizing pending deposits is the only
// path by which an admin actor affects balances.
type Service struct {
	engine  *ledger.Engine
	entries EntryStore
	catalog *game.Catalog
	bonus   *BonusSettings
}

func NewService(engine *ledger.Engine, entries EntryStore, catalog *game.Catalog, bonus *BonusSettings) *Service {
	return &Service{engine: engine, entries: entries, catalog: catalog, bonus: bonus}
}

func (s *Service) PendingDeposits(ctx context.Context, limit, offset int) ([]ledger.Entry, error) {
	return s.entries.ListPendingDeposits(ctx, limit, offset)
}

func (s *Service) Finalize(ctx context.Context, entryID, resolution string) (*ledger.Result, error) {
	var status ledger.Status
	switch resolution {
	case string(ledger.StatusCompleted):
		status = ledger.StatusCompleted
	case string(ledger.StatusRejected):
		status = ledger.StatusRejected
	default:
		return nil, ErrInvalidResolution
	}
	return s.engine.FinalizePending(ctx, entryID, status)
}

func (s *Service) Ledger(ctx context.Context, f store.EntryFilter, limit, offset int) ([]ledger.Entry, error) {
	return s.entries.ListEntries(ctx, f, limit, offset)
}

type BonusView struct {
	Enabled bool            `json:"enabled"`
	Amount  decimal.Decimal `json:"amount"`
}

func (s *Service) Bonus() BonusView {
	enabled, amount := s.bonus.Welcome()
	return BonusView{Enabled: enabled, Amount: amount}
}

func (s *Service) SetBonus(enabled bool, amount decimal.Decimal) BonusView {
	s.bonus.Set(enabled, amount)
	return s.Bonus()
}

func (s *Service) SetGameStatus(gameID string, active, maintenance bool, minBet decimal.Decimal) (game.Game, error) {
	return s.catalog.SetStatus(gameID, active, maintenance, minBet)
}
