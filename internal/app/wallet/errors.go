package wallet

import "errors"

var (
	ErrInvalidAmount          = errors.New("invalid_amount")
	ErrBelowMinimumWithdrawal = errors.New("below_minimum_withdrawal")
	ErrInvalidUPI             = errors.New("invalid_upi")
)
