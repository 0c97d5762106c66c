package auth

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"winrush-wallet/internal/app/session"
	"winrush-wallet/internal/config"
	"winrush-wallet/internal/ledger"
	"winrush-wallet/internal/store"
)

const welcomeBonusRef = "WELCOME_BONUS"

// Accounts is the registry-boundary capability auth needs beyond the ledger
// engine: creation (with the one-account-per-mobile guarantee) and natural-key
// lookup.
type Accounts interface {
	CreateAccount(ctx context.Context, a *ledger.Account) error
	FindByMobile(ctx context.Context, mobile string) (*ledger.Account, error)
}

// BonusSource yields the welcome bonus settings in effect at account creation.
type BonusSource interface {
	Welcome() (enabled bool, amount decimal.Decimal)
}

type challenge struct {
	code      string
	expiresAt time.Time
	attempts  int
}

// Service implements the OTP login simulation: codes are generated server-side
// and delivered as a structured log event instead of an SMS.
type Service struct {
	accounts Accounts
	engine   *ledger.Engine
	sessions *session.Service
	bonus    BonusSource
	cfg      config.OTPConfig
	now      func() time.Time

	mu      sync.Mutex
	pending map[string]*challenge
}

func NewService(accounts Accounts, engine *ledger.Engine, sessions *session.Service, bonus BonusSource, cfg config.OTPConfig) *Service {
	return &Service{
		accounts: accounts,
		engine:   engine,
		sessions: sessions,
		bonus:    bonus,
		cfg:      cfg,
		now:      time.Now,
		pending:  make(map[string]*challenge),
	}
}

type LoginResult struct {
	Token   string          `json:"token"`
	Account *ledger.Account `json:"account"`
	NewUser bool            `json:"new_user"`
}

// RequestOTP issues a fresh 6-digit code for the mobile number. Re-requests
// replace any outstanding code. The code is returned to the caller because
// delivery is simulated; a real SMS gateway is out of scope.
func (s *Service) RequestOTP(mobile string) (code string, expiresAt time.Time, err error) {
	if !validMobile(mobile) {
		return "", time.Time{}, ErrInvalidMobile
	}
	code = fmt.Sprintf("%06d", rand.Intn(1000000))
	expiresAt = s.now().Add(s.cfg.TTL)

	s.mu.Lock()
	s.pending[mobile] = &challenge{code: code, expiresAt: expiresAt}
	s.mu.Unlock()

	log.Info().
		Str("mobile", mobile).
		Str("otp", code).
		Time("expires_at", expiresAt).
		Msg("secure sms (simulated)")
	return code, expiresAt, nil
}

// VerifyOTP checks the code and returns a session. First-time mobiles get an
// account, and the welcome bonus when enabled.
func (s *Service) VerifyOTP(ctx context.Context, mobile, code, name string) (*LoginResult, error) {
	if !validMobile(mobile) {
		return nil, ErrInvalidMobile
	}

	s.mu.Lock()
	ch, ok := s.pending[mobile]
	if !ok {
		s.mu.Unlock()
		return nil, ErrOTPExpired
	}
	if s.now().After(ch.expiresAt) {
		delete(s.pending, mobile)
		s.mu.Unlock()
		return nil, ErrOTPExpired
	}
	if ch.attempts >= s.cfg.MaxAttempts {
		s.mu.Unlock()
		return nil, ErrTooManyAttempts
	}
	ch.attempts++
	if ch.code != code {
		exhausted := ch.attempts >= s.cfg.MaxAttempts
		s.mu.Unlock()
		if exhausted {
			return nil, ErrTooManyAttempts
		}
		return nil, ErrInvalidOTP
	}
	delete(s.pending, mobile)
	s.mu.Unlock()

	acct, created, err := s.findOrCreate(ctx, mobile, name)
	if err != nil {
		return nil, err
	}
	return &LoginResult{
		Token:   s.sessions.Create(acct.ID),
		Account: acct,
		NewUser: created,
	}, nil
}

func (s *Service) findOrCreate(ctx context.Context, mobile, name string) (*ledger.Account, bool, error) {
	acct, err := s.accounts.FindByMobile(ctx, mobile)
	if err == nil {
		return acct, false, nil
	}
	if !errors.Is(err, ledger.ErrNotFound) {
		return nil, false, fmt.Errorf("find account: %w", err)
	}

	username := strings.TrimSpace(name)
	if username == "" {
		username = "Player " + mobile[len(mobile)-4:]
	}
	acct = &ledger.Account{
		ID:        ledger.NewID(),
		Mobile:    mobile,
		Username:  username,
		CreatedAt: s.now().UTC(),
	}
	if err := s.accounts.CreateAccount(ctx, acct); err != nil {
		if errors.Is(err, store.ErrMobileTaken) {
			// Lost a registration race; the other login owns the account now.
			acct, err = s.accounts.FindByMobile(ctx, mobile)
			return acct, false, err
		}
		return nil, false, fmt.Errorf("create account: %w", err)
	}

	if enabled, amount := s.bonus.Welcome(); enabled && amount.IsPositive() {
		res, err := s.engine.PostEvent(ctx, acct.ID, ledger.KindBonusCredit, amount, ledger.PostOptions{
			ReferenceID: welcomeBonusRef,
		})
		if err != nil {
			return nil, false, fmt.Errorf("grant welcome bonus: %w", err)
		}
		acct = res.Account
	}
	return acct, true, nil
}

func validMobile(mobile string) bool {
	if len(mobile) != 10 {
		return false
	}
	for _, r := range mobile {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
