package httptransport

import (
	"errors"
	"net/http"

	"winrush-wallet/internal/ledger"
)

// writeLedgerError maps the engine's typed rejections onto stable JSON error
// codes. Anything unrecognized is a storage or programming fault and becomes
// an opaque 500.
func writeLedgerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ledger.ErrUnauthenticated):
		WriteHTTPError(w, http.StatusUnauthorized, "unauthenticated")
	case errors.Is(err, ledger.ErrBelowMinimumStake):
		WriteHTTPError(w, http.StatusBadRequest, "below_minimum_stake")
	case errors.Is(err, ledger.ErrInsufficientFunds):
		WriteHTTPError(w, http.StatusBadRequest, "insufficient_funds")
	case errors.Is(err, ledger.ErrInvalidReference):
		WriteHTTPError(w, http.StatusBadRequest, "invalid_reference")
	case errors.Is(err, ledger.ErrAlreadyFinalized):
		WriteHTTPError(w, http.StatusConflict, "already_finalized")
	case errors.Is(err, ledger.ErrNotFound):
		WriteHTTPError(w, http.StatusNotFound, "not_found")
	case errors.Is(err, ledger.ErrInvalidRequest):
		WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
	default:
		WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
	}
}
