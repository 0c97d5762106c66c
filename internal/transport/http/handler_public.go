package httptransport

import (
	"encoding/json"
	"net/http"

	"winrush-wallet/internal/app/public"
)

type PublicHandlers struct {
	publicSvc *public.Service
}

func NewPublicHandlers(publicSvc *public.Service) *PublicHandlers {
	return &PublicHandlers{publicSvc: publicSvc}
}

func (h *PublicHandlers) Games() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(h.publicSvc.Games())
	}
}

func (h *PublicHandlers) Leaderboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, offset := ParsePagination(r)
		board, err := h.publicSvc.Leaderboard(r.Context(), limit, offset)
		if err != nil {
			writeLedgerError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(board)
	}
}
