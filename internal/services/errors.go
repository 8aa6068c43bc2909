package services

import (
	"errors"
	"fmt"
)

// Error taxonomy surfaced to the handlers. Handlers translate with
// errors.Is: ErrInvalidInput (and everything wrapping it) maps to 400,
// ErrNotFound to 404, anything else to 500.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")

	ErrEmailTaken       = fmt.Errorf("email already registered: %w", ErrInvalidInput)
	ErrWrongCredentials = fmt.Errorf("wrong email or password: %w", ErrInvalidInput)
	ErrWeakPassword     = fmt.Errorf("password needs at least 6 characters with an upper case letter, a lower case letter and a digit: %w", ErrInvalidInput)
	ErrUnknownStatus    = fmt.Errorf("unknown order status: %w", ErrInvalidInput)
)
