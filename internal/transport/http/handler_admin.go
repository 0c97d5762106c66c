package httptransport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"winrush-wallet/internal/app/admin"
	"winrush-wallet/internal/game"
	"winrush-wallet/internal/ledger"
	"winrush-wallet/internal/store"
)

type AdminHandlers struct {
	adminSvc *admin.Service
	ping     func(context.Context) error
}

func NewAdminHandlers(adminSvc *admin.Service, ping func(context.Context) error) *AdminHandlers {
	return &AdminHandlers{adminSvc: adminSvc, ping: ping}
}

func (h *AdminHandlers) Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.ping(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(map[string]any{"ok": false, "db": "down"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "db": "up"})
	}
}

func (h *AdminHandlers) PendingDeposits() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, offset := ParsePagination(r)
		items, err := h.adminSvc.PendingDeposits(r.Context(), limit, offset)
		if err != nil {
			writeLedgerError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"items": items, "limit": limit, "offset": offset})
	}
}

func (h *AdminHandlers) FinalizeDeposit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entryID := chi.URLParam(r, "entry_id")
		var body struct {
			Resolution string `json:"resolution"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		res, err := h.adminSvc.Finalize(r.Context(), entryID, body.Resolution)
		if err != nil {
			if errors.Is(err, admin.ErrInvalidResolution) {
				WriteHTTPError(w, http.StatusBadRequest, "invalid_resolution")
				return
			}
			writeLedgerError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(res)
	}
}

func (h *AdminHandlers) Ledger() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, offset := ParsePagination(r)
		q := r.URL.Query()
		f := store.EntryFilter{
			AccountID: q.Get("account_id"),
			Kind:      ledger.Kind(q.Get("kind")),
			Status:    ledger.Status(q.Get("status")),
		}
		if (f.Kind != "" && !f.Kind.Valid()) || (f.Status != "" && !f.Status.Valid()) {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		items, err := h.adminSvc.Ledger(r.Context(), f, limit, offset)
		if err != nil {
			writeLedgerError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"items": items, "limit": limit, "offset": offset})
	}
}

func (h *AdminHandlers) Bonus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(h.adminSvc.Bonus())
	}
}

func (h *AdminHandlers) SetBonus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Enabled bool            `json:"enabled"`
			Amount  decimal.Decimal `json:"amount"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		_ = json.NewEncoder(w).Encode(h.adminSvc.SetBonus(body.Enabled, body.Amount))
	}
}

func (h *AdminHandlers) SetGameStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameID := chi.URLParam(r, "game_id")
		var body struct {
			Active      bool            `json:"active"`
			Maintenance bool            `json:"maintenance"`
			MinBet      decimal.Decimal `json:"min_bet"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		g, err := h.adminSvc.SetGameStatus(gameID, body.Active, body.Maintenance, body.MinBet)
		if err != nil {
			if errors.Is(err, game.ErrUnknownGame) {
				WriteHTTPError(w, http.StatusNotFound, "unknown_game")
				return
			}
			writeLedgerError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(g)
	}
}
