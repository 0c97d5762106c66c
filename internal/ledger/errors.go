package ledger

import "errors"

var (
	ErrNotFound          = errors.New("not_found")
	ErrUnauthenticated   = errors.New("unauthenticated")
	ErrBelowMinimumStake = errors.New("below_minimum_stake")
	ErrInsufficientFunds = errors.New("insufficient_funds")
	ErrInvalidReference  = errors.New("invalid_reference")
	ErrAlreadyFinalized  = errors.New("already_finalized")
	ErrInvalidRequest    = errors.New("invalid_request")
)
