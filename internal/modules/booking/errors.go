package booking

import "errors"

var (
	ErrValidation   = errors.New("validation error")
	ErrNotAvailable = errors.New("dates not available")
	ErrOverbooking  = errors.New("overbooking constraint violation")
)
