package httptransport

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"winrush-wallet/internal/app/admin"
	appauth "winrush-wallet/internal/app/auth"
	"winrush-wallet/internal/app/play"
	apppublic "winrush-wallet/internal/app/public"
	appsession "winrush-wallet/internal/app/session"
	appwallet "winrush-wallet/internal/app/wallet"
	"winrush-wallet/internal/config"
)

// Deps collects the wired services for the router. The store is not reached
// directly from handlers; everything goes through a service surface.
type Deps struct {
	Auth     *appauth.Service
	Sessions *appsession.Service
	Wallet   *appwallet.Service
	Play     *play.Service
	Public   *apppublic.Service
	Admin    *admin.Service
	Ping     func(context.Context) error
}

func NewRouter(deps Deps, cfg config.ServerConfig) *chi.Mux {
	authHandlers := NewAuthHandlers(deps.Auth, deps.Sessions)
	walletHandlers := NewWalletHandlers(deps.Wallet)
	playHandlers := NewPlayHandlers(deps.Play)
	publicHandlers := NewPublicHandlers(deps.Public)
	adminHandlers := NewAdminHandlers(deps.Admin, deps.Ping)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)

	r.With(APILogMiddleware()).Get("/healthz", adminHandlers.Health())

	r.Route("/api", func(r chi.Router) {
		r.Use(APILogMiddleware())

		r.Post("/auth/otp/request", authHandlers.RequestOTP())
		r.Post("/auth/otp/verify", authHandlers.VerifyOTP())
		r.Post("/auth/logout", authHandlers.Logout())

		r.Get("/public/games", publicHandlers.Games())
		r.Get("/public/leaderboard", publicHandlers.Leaderboard())

		r.Group(func(r chi.Router) {
			r.Use(SessionAuthMiddleware(deps.Sessions))
			r.Get("/wallet", walletHandlers.Balances())
			r.Post("/wallet/deposits", walletHandlers.CreateDeposit())
			r.Post("/wallet/withdrawals", walletHandlers.CreateWithdrawal())
			r.Get("/wallet/transactions", walletHandlers.Transactions())
			r.Post("/games/{game_id}/bets", playHandlers.PlaceBet())
			r.Post("/games/{game_id}/results", playHandlers.Settle())
		})

		r.Group(func(r chi.Router) {
			r.Use(AdminAuthMiddleware(cfg.AdminAPIKey))
			r.Get("/admin/deposits/pending", adminHandlers.PendingDeposits())
			r.Post("/admin/entries/{entry_id}/finalize", adminHandlers.FinalizeDeposit())
			r.Get("/admin/ledger", adminHandlers.Ledger())
			r.Get("/admin/config/bonus", adminHandlers.Bonus())
			r.Put("/admin/config/bonus", adminHandlers.SetBonus())
			r.Patch("/admin/games/{game_id}", adminHandlers.SetGameStatus())
		})
	})

	return r
}

func LogRoutes(r chi.Router) {
	type routeDef struct {
		Method string
		Path   string
	}
	routes := make([]routeDef, 0, 32)
	err := chi.Walk(r, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		routes = append(routes, routeDef{Method: method, Path: route})
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("walk routes failed")
		return
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path == routes[j].Path {
			return routes[i].Method < routes[j].Method
		}
		return routes[i].Path < routes[j].Path
	})
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Registered routes (%d):\n", len(routes)))
	for _, rt := range routes {
		b.WriteString(fmt.Sprintf("  %-6s %s\n", rt.Method, rt.Path))
	}
	fmt.Print(b.String())
}
