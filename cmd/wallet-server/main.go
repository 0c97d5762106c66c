package main

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"winrush-wallet/internal/app/admin"
	appauth "winrush-wallet/internal/app/auth"
	"winrush-wallet/internal/app/play"
	apppublic "winrush-wallet/internal/app/public"
	appsession "winrush-wallet/internal/app/session"
	appwallet "winrush-wallet/internal/app/wallet"
	"winrush-wallet/internal/config"
	"winrush-wallet/internal/game"
	"winrush-wallet/internal/ledger"
	"winrush-wallet/internal/logging"
	"winrush-wallet/internal/store"
	httptransport "winrush-wallet/internal/transport/http"
)

// dataStore is satisfied by both the postgres store and the in-memory store.
type dataStore interface {
	ledger.Registry
	Ping(ctx context.Context) error
	CreateAccount(ctx context.Context, a *ledger.Account) error
	FindByMobile(ctx context.Context, mobile string) (*ledger.Account, error)
	ListEntries(ctx context.Context, f store.EntryFilter, limit, offset int) ([]ledger.Entry, error)
	ListPendingDeposits(ctx context.Context, limit, offset int) ([]ledger.Entry, error)
	Leaderboard(ctx context.Context, limit, offset int) ([]store.LeaderboardRow, error)
}

func main() {
	cfg, err := config.LoadApp()
	if err != nil {
		panic(err)
	}
	logging.Init(cfg.Log)

	var st dataStore
	switch cfg.Server.Store {
	case "memory":
		st = store.NewMemory()
		log.Warn().Msg("using in-memory store; data is lost on restart")
	case "postgres":
		pg, err := store.New(cfg.Server.PostgresDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("store init failed")
		}
		defer pg.Close()
		if err := pg.Ping(context.Background()); err != nil {
			log.Fatal().Err(err).Msg("db ping failed")
		}
		st = pg
	default:
		log.Fatal().Str("store", cfg.Server.Store).Msg("unknown store backend")
	}

	engine := ledger.NewEngine(st)
	catalog := game.DefaultCatalog()
	bonus := admin.NewBonusSettings(cfg.Bonus)
	sessions := appsession.NewService()

	deps := httptransport.Deps{
		Auth:     appauth.NewService(st, engine, sessions, bonus, cfg.OTP),
		Sessions: sessions,
		Wallet:   appwallet.NewService(engine, st),
		Play:     play.NewService(engine, catalog),
		Public:   apppublic.NewService(st, catalog),
		Admin:    admin.NewService(engine, st, catalog, bonus),
		Ping:     st.Ping,
	}

	r := httptransport.NewRouter(deps, cfg.Server)
	httptransport.LogRoutes(r)

	server := &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	log.Info().Str("addr", cfg.Server.HTTPAddr).Msg("http listening")
	log.Fatal().Err(server.ListenAndServe()).Msg("server stopped")
}
