package admin

import "errors"

var ErrInvalidResolution = errors.New("invalid_resolution")
