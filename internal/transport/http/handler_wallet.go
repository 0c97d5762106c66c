package httptransport

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	appwallet "winrush-wallet/internal/app/wallet"
	"winrush-wallet/internal/ledger"
)

type WalletHandlers struct {
	walletSvc *appwallet.Service
}

func NewWalletHandlers(walletSvc *appwallet.Service) *WalletHandlers {
	return &WalletHandlers{walletSvc: walletSvc}
}

func (h *WalletHandlers) Balances() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, _ := AccountIDFromContext(r.Context())
		acct, err := h.walletSvc.Balances(r.Context(), accountID)
		if err != nil {
			writeLedgerError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(acct)
	}
}

func (h *WalletHandlers) CreateDeposit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, _ := AccountIDFromContext(r.Context())
		var body struct {
			Amount decimal.Decimal `json:"amount"`
			UTR    string          `json:"utr"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		res, err := h.walletSvc.CreateDeposit(r.Context(), accountID, body.Amount, body.UTR)
		if err != nil {
			writeWalletError(w, err)
			return
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(res)
	}
}

func (h *WalletHandlers) CreateWithdrawal() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, _ := AccountIDFromContext(r.Context())
		var body struct {
			Amount decimal.Decimal `json:"amount"`
			UPIID  string          `json:"upi_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		res, err := h.walletSvc.CreateWithdrawal(r.Context(), accountID, body.Amount, body.UPIID)
		if err != nil {
			writeWalletError(w, err)
			return
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(res)
	}
}

func (h *WalletHandlers) Transactions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, _ := AccountIDFromContext(r.Context())
		limit, offset := ParsePagination(r)
		kind := ledger.Kind(r.URL.Query().Get("kind"))
		status := ledger.Status(r.URL.Query().Get("status"))
		if (kind != "" && !kind.Valid()) || (status != "" && !status.Valid()) {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		items, err := h.walletSvc.Transactions(r.Context(), accountID, kind, status, limit, offset)
		if err != nil {
			writeLedgerError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"items": items, "limit": limit, "offset": offset})
	}
}

func writeWalletError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, appwallet.ErrInvalidAmount):
		WriteHTTPError(w, http.StatusBadRequest, "invalid_amount")
	case errors.Is(err, appwallet.ErrBelowMinimumWithdrawal):
		WriteHTTPError(w, http.StatusBadRequest, "below_minimum_withdrawal")
	case errors.Is(err, appwallet.ErrInvalidUPI):
		WriteHTTPError(w, http.StatusBadRequest, "invalid_upi")
	default:
		writeLedgerError(w, err)
	}
}
