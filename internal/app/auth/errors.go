package auth

import "errors"

var (
	ErrInvalidMobile   = errors.New("invalid_mobile")
	ErrInvalidOTP      = errors.New("invalid_otp")
	ErrOTPExpired      = errors.New("otp_expired")
	ErrTooManyAttempts = errors.New("too_many_attempts")
)
