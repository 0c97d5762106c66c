package game

import (
	"errors"
	"sync"

	"github.com/shopspring/decimal"
)

var ErrUnknownGame = errors.New("unknown_game")

// Game describes one mini-game as the wallet sees it: an identity, a label for
// ledger entries, and the gating flags the admin console can toggle. Outcome
// logic lives with the game collaborator, not here.
type Game struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	MinBet      decimal.Decimal `json:"min_bet"`
	Active      bool            `json:"active"`
	Maintenance bool            `json:"maintenance"`
}

// Catalog is a mutable, concurrency-safe registry of games.
type Catalog struct {
	mu    sync.RWMutex
	games map[string]Game
	order []string
}

// DefaultCatalog seeds the launch lineup.
func DefaultCatalog() *Catalog {
	c := &Catalog{games: make(map[string]Game)}
	for _, g := range []Game{
		{ID: "chicken", Name: "Chicken Road", Category: "chance", MinBet: decimal.NewFromInt(1), Active: true},
		{ID: "colour", Name: "Colour Prediction", Category: "chance", MinBet: decimal.NewFromInt(1), Active: true},
		{ID: "mines", Name: "Mines", Category: "chance", MinBet: decimal.NewFromInt(10)},
		{ID: "aviator", Name: "Aviator", Category: "chance", MinBet: decimal.NewFromInt(10), Active: true, Maintenance: true},
		{ID: "rummy", Name: "Rummy", Category: "cards", MinBet: decimal.NewFromInt(100)},
		{ID: "carrom", Name: "Carrom", Category: "skill", MinBet: decimal.NewFromInt(10)},
		{ID: "dice", Name: "Dice", Category: "chance", MinBet: decimal.NewFromInt(5)},
		{ID: "spin", Name: "Spin", Category: "chance", MinBet: decimal.NewFromInt(5)},
	} {
		c.games[g.ID] = g
		c.order = append(c.order, g.ID)
	}
	return c
}

func (c *Catalog) Get(id string) (Game, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	g, ok := c.games[id]
	return g, ok
}

func (c *Catalog) List() []Game {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Game, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.games[id])
	}
	return out
}

// SetStatus updates the gating flags for one game. A non-positive minBet
// leaves the current minimum unchanged.
func (c *Catalog) SetStatus(id string, active, maintenance bool, minBet decimal.Decimal) (Game, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	g, ok := c.games[id]
	if !ok {
		return Game{}, ErrUnknownGame
	}
	g.Active = active
	g.Maintenance = maintenance
	if minBet.IsPositive() {
		g.MinBet = minBet.Round(2)
	}
	c.games[id] = g
	return g, nil
}
