package session

import (
	"sync"

	"winrush-wallet/internal/ledger"
)

// Service maps bearer tokens to account ids. Sessions live for the process
// lifetime; logout removes them.
type Service struct {
	mu      sync.RWMutex
	byToken map[string]string
}

func NewService() *Service {
	return &Service{byToken: make(map[string]string)}
}

func (s *Service) Create(accountID string) string {
	token := ledger.NewID()
	s.mu.Lock()
	s.byToken[token] = accountID
	s.mu.Unlock()
	return token
}

func (s *Service) Resolve(token string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	accountID, ok := s.byToken[token]
	return accountID, ok
}

func (s *Service) Delete(token string) {
	s.mu.Lock()
	delete(s.byToken, token)
	s.mu.Unlock()
}
