package public

import "github.com/shopspring/decimal"

type GameItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	MinBet      decimal.Decimal `json:"min_bet"`
	Active      bool            `json:"active"`
	Maintenance bool            `json:"maintenance"`
}

type GamesResponse struct {
	Items []GameItem `json:"items"`
}

type LeaderboardItem struct {
	Rank          int             `json:"rank"`
	AccountID     string          `json:"account_id"`
	Username      string          `json:"username"`
	TotalWinnings decimal.Decimal `json:"total_winnings"`
}

type LeaderboardResponse struct {
	Items  []LeaderboardItem `json:"items"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
}
