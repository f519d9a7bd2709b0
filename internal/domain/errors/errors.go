package errors

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrSessionInvalid     = errors.New("session invalid")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrTransitionInFlight = errors.New("transition already in flight")
)
