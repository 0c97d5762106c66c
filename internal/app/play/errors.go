package play

import "errors"

var (
	ErrUnknownGame          = errors.New("unknown_game")
	ErrGameInactive         = errors.New("game_inactive")
	ErrGameUnderMaintenance = errors.New("game_under_maintenance")
	ErrBelowGameMinimum     = errors.New("below_game_minimum")
	ErrInvalidOutcome       = errors.New("invalid_outcome")
	ErrInvalidAmount        = errors.New("invalid_amount")
)
