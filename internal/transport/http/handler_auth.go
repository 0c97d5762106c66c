package httptransport

import (
	"encoding/json"
	"errors"
	"net/http"

	"winrush-wallet/internal/app/auth"
	"winrush-wallet/internal/app/session"
)

type AuthHandlers struct {
	authSvc  *auth.Service
	sessions *session.Service
}

func NewAuthHandlers(authSvc *auth.Service, sessions *session.Service) *AuthHandlers {
	return &AuthHandlers{authSvc: authSvc, sessions: sessions}
}

func (h *AuthHandlers) RequestOTP() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Mobile string `json:"mobile"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		code, expiresAt, err := h.authSvc.RequestOTP(body.Mobile)
		if err != nil {
			writeAuthError(w, err)
			return
		}
		// SMS delivery is simulated, so the code travels in the response.
		_ = json.NewEncoder(w).Encode(map[string]any{
			"otp":        code,
			"expires_at": expiresAt,
		})
	}
}

func (h *AuthHandlers) VerifyOTP() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Mobile string `json:"mobile"`
			OTP    string `json:"otp"`
			Name   string `json:"name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		res, err := h.authSvc.VerifyOTP(r.Context(), body.Mobile, body.OTP, body.Name)
		if err != nil {
			writeAuthError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(res)
	}
}

func (h *AuthHandlers) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if token, ok := bearerToken(r); ok {
			h.sessions.Delete(token)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
	}
}

func writeAuthError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, auth.ErrInvalidMobile):
		WriteHTTPError(w, http.StatusBadRequest, "invalid_mobile")
	case errors.Is(err, auth.ErrInvalidOTP):
		WriteHTTPError(w, http.StatusUnauthorized, "invalid_otp")
	case errors.Is(err, auth.ErrOTPExpired):
		WriteHTTPError(w, http.StatusUnauthorized, "otp_expired")
	case errors.Is(err, auth.ErrTooManyAttempts):
		WriteHTTPError(w, http.StatusTooManyRequests, "too_many_attempts")
	default:
		WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
	}
}
