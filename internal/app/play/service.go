package play

import (
	"context"

	"github.com/shopspring/decimal"

	"winrush-wallet/internal/game"
	"winrush-wallet/internal/ledger"
)

type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeLoss Outcome = "loss"
)

// Service is the entry point mini-games use to move money. It gates on the
// catalog and forwards to the ledger engine; game outcome logic (randomness,
// payout multipliers) stays with the game collaborator.
type Service struct {
	engine  *ledger.Engine
	catalog *game.Catalog
}

func NewService(engine *ledger.Engine, catalog *game.Catalog) *Service {
	return &Service{engine: engine, catalog: catalog}
}

// PlaceBet debits the stake, bonus balance first.
func (s *Service) PlaceBet(ctx context.Context, accountID, gameID string, stake decimal.Decimal) (*ledger.Result, error) {
	g, err := s.playableGame(gameID)
	if err != nil {
		return nil, err
	}
	if stake.LessThan(g.MinBet) {
		return nil, ErrBelowGameMinimum
	}
	return s.engine.PostEvent(ctx, accountID, ledger.KindBet, stake, ledger.PostOptions{
		GameLabel: g.Name,
	})
}

// Settle records a round result reported by the game: a win credits the main
// balance, a loss debits it.
func (s *Service) Settle(ctx context.Context, accountID, gameID string, amount decimal.Decimal, outcome Outcome) (*ledger.Result, error) {
	g, err := s.playableGame(gameID)
	if err != nil {
		return nil, err
	}
	if !amount.Abs().IsPositive() {
		return nil, ErrInvalidAmount
	}
	var kind ledger.Kind
	switch outcome {
	case OutcomeWin:
		kind = ledger.KindWin
	case OutcomeLoss:
		kind = ledger.KindLoss
	default:
		return nil, ErrInvalidOutcome
	}
	return s.engine.PostEvent(ctx, accountID, kind, amount, ledger.PostOptions{
		GameLabel: g.Name,
	})
}

func (s *Service) playableGame(gameID string) (game.Game, error) {
	g, ok := s.catalog.Get(gameID)
	if !ok {
		return game.Game{}, ErrUnknownGame
	}
	if !g.Active {
		return game.Game{}, ErrGameInactive
	}
	if g.Maintenance {
		return game.Game{}, ErrGameUnderMaintenance
	}
	return g, nil
}
