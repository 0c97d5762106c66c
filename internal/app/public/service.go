package public

import (
	"context"

	"winrush-wallet/internal/game"
	"winrush-wallet/internal/store"
)

const leaderboardMaxRows = 100

// LeaderboardStore aggregates completed winnings per account.
type LeaderboardStore interface {
	Leaderboard(ctx context.Context, limit, offset int) ([]store.LeaderboardRow, error)
}

type Service struct {
	lb      LeaderboardStore
	catalog *game.Catalog
}

func NewService(lb LeaderboardStore, catalog *game.Catalog) *Service {
	return &Service{lb: lb, catalog: catalog}
}

func (s *Service) Games() *GamesResponse {
	items := s.catalog.List()
	out := make([]GameItem, 0, len(items))
	for _, g := range items {
		out = append(out, GameItem{
			ID:          g.ID,
			Name:        g.Name,
			Category:    g.Category,
			MinBet:      g.MinBet,
			Active:      g.Active,
			Maintenance: g.Maintenance,
		})
	}
	return &GamesResponse{Items: out}
}

// Leaderboard ranks accounts by total completed winnings, capped at the top
// hundred rows.
func (s *Service) Leaderboard(ctx context.Context, limit, offset int) (*LeaderboardResponse, error) {
	limit, ok := clampLeaderboardPage(limit, offset)
	if !ok {
		return &LeaderboardResponse{Items: []LeaderboardItem{}, Limit: limit, Offset: offset}, nil
	}
	rows, err := s.lb.Leaderboard(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]LeaderboardItem, 0, len(rows))
	for idx, r := range rows {
		out = append(out, LeaderboardItem{
			Rank:          offset + idx + 1,
			AccountID:     r.AccountID,
			Username:      r.Username,
			TotalWinnings: r.TotalWinnings,
		})
	}
	return &LeaderboardResponse{Items: out, Limit: limit, Offset: offset}, nil
}

func clampLeaderboardPage(limit, offset int) (int, bool) {
	if offset >= leaderboardMaxRows {
		return 0, false
	}
	if limit <= 0 {
		limit = 50
	}
	remaining := leaderboardMaxRows - offset
	if limit > remaining {
		limit = remaining
	}
	return limit, true
}
