package httptransport

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"winrush-wallet/internal/app/play"
)

type PlayHandlers struct {
	playSvc *play.Service
}

func NewPlayHandlers(playSvc *play.Service) *PlayHandlers {
	return &PlayHandlers{playSvc: playSvc}
}

func (h *PlayHandlers) PlaceBet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, _ := AccountIDFromContext(r.Context())
		gameID := chi.URLParam(r, "game_id")
		var body struct {
			Stake decimal.Decimal `json:"stake"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		res, err := h.playSvc.PlaceBet(r.Context(), accountID, gameID, body.Stake)
		if err != nil {
			writePlayError(w, err)
			return
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(res)
	}
}

func (h *PlayHandlers) Settle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, _ := AccountIDFromContext(r.Context())
		gameID := chi.URLParam(r, "game_id")
		var body struct {
			Amount  decimal.Decimal `json:"amount"`
			Outcome string          `json:"outcome"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		res, err := h.playSvc.Settle(r.Context(), accountID, gameID, body.Amount, play.Outcome(body.Outcome))
		if err != nil {
			writePlayError(w, err)
			return
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(res)
	}
}

func writePlayError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, play.ErrUnknownGame):
		WriteHTTPError(w, http.StatusNotFound, "unknown_game")
	case errors.Is(err, play.ErrGameInactive):
		WriteHTTPError(w, http.StatusConflict, "game_inactive")
	case errors.Is(err, play.ErrGameUnderMaintenance):
		WriteHTTPError(w, http.StatusConflict, "game_under_maintenance")
	case errors.Is(err, play.ErrBelowGameMinimum):
		WriteHTTPError(w, http.StatusBadRequest, "below_game_minimum")
	case errors.Is(err, play.ErrInvalidOutcome):
		WriteHTTPError(w, http.StatusBadRequest, "invalid_outcome")
	case errors.Is(err, play.ErrInvalidAmount):
		WriteHTTPError(w, http.StatusBadRequest, "invalid_amount")
	default:
		writeLedgerError(w, err)
	}
}
