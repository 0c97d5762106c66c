package store

import (
	"context"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"winrush-wallet/internal/ledger"
)

// Memory is an in-process account registry with the same capability surface as
// the postgres Store. It backs tests and the STORE=memory dev mode.
type Memory struct {
	mu       sync.RWMutex
	accounts map[string]ledger.Account // by account id
	byMobile map[string]string         // mobile -> account id
	entries  map[string]ledger.Entry   // by entry id
	order    []string                  // entry ids, insertion order
}

func NewMemory() *Memory {
	return &Memory{
		accounts: make(map[string]ledger.Account),
		byMobile: make(map[string]string),
		entries:  make(map[string]ledger.Entry),
	}
}

func (m *Memory) Ping(ctx context.Context) error { return nil }

func (m *Memory) CreateAccount(ctx context.Context, a *ledger.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byMobile[a.Mobile]; ok {
		return ErrMobileTaken
	}
	m.accounts[a.ID] = *a
	m.byMobile[a.Mobile] = a.ID
	return nil
}

func (m *Memory) Load(ctx context.Context, accountID string) (*ledger.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.accounts[accountID]
	if !ok {
		return nil, ledger.ErrNotFound
	}
	return &a, nil
}

func (m *Memory) FindByMobile(ctx context.Context, mobile string) (*ledger.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.byMobile[mobile]
	if !ok {
		return nil, ledger.ErrNotFound
	}
	a := m.accounts[id]
	return &a, nil
}

func (m *Memory) FindEntry(ctx context.Context, entryID string) (*ledger.Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entries[entryID]
	if !ok {
		return nil, ledger.ErrNotFound
	}
	return &e, nil
}

func (m *Memory) Persist(ctx context.Context, a *ledger.Account, e *ledger.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.accounts[a.ID]; !ok {
		return ledger.ErrNotFound
	}
	m.accounts[a.ID] = *a
	if _, ok := m.entries[e.ID]; !ok {
		m.order = append(m.order, e.ID)
	}
	m.entries[e.ID] = *e
	return nil
}

func (m *Memory) ListEntries(ctx context.Context, f EntryFilter, limit, offset int) ([]ledger.Entry, error) {
	if limit <= 0 {
		limit = 50
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var matched []ledger.Entry
	// Newest first, mirroring the SQL ordering.
	for i := len(m.order) - 1; i >= 0; i-- {
		e := m.entries[m.order[i]]
		if f.AccountID != "" && e.AccountID != f.AccountID {
			continue
		}
		if f.Kind != "" && e.Kind != f.Kind {
			continue
		}
		if f.Status != "" && e.Status != f.Status {
			continue
		}
		matched = append(matched, e)
	}
	return pageEntries(matched, limit, offset), nil
}

func (m *Memory) ListPendingDeposits(ctx context.Context, limit, offset int) ([]ledger.Entry, error) {
	if limit <= 0 {
		limit = 50
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var matched []ledger.Entry
	for _, id := range m.order {
		e := m.entries[id]
		if e.Kind == ledger.KindDeposit && e.Status == ledger.StatusPending {
			matched = append(matched, e)
		}
	}
	return pageEntries(matched, limit, offset), nil
}

func (m *Memory) Leaderboard(ctx context.Context, limit, offset int) ([]LeaderboardRow, error) {
	if limit <= 0 {
		limit = 50
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	totals := make(map[string]decimal.Decimal)
	for _, e := range m.entries {
		if e.Kind == ledger.KindWin && e.Status == ledger.StatusCompleted {
			totals[e.AccountID] = totals[e.AccountID].Add(e.Amount)
		}
	}
	rows := make([]LeaderboardRow, 0, len(totals))
	for id, total := range totals {
		rows = append(rows, LeaderboardRow{
			AccountID:     id,
			Username:      m.accounts[id].Username,
			TotalWinnings: total,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].TotalWinnings.Equal(rows[j].TotalWinnings) {
			return rows[i].TotalWinnings.GreaterThan(rows[j].TotalWinnings)
		}
		return rows[i].AccountID < rows[j].AccountID
	})
	if offset >= len(rows) {
		return []LeaderboardRow{}, nil
	}
	end := offset + limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[offset:end], nil
}

func pageEntries(entries []ledger.Entry, limit, offset int) []ledger.Entry {
	if offset >= len(entries) {
		return []ledger.Entry{}
	}
	end := offset + limit
	if end > len(entries) {
		end = len(entries)
	}
	return entries[offset:end]
}
