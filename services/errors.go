package services

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by all services. Controllers translate these to
// HTTP status codes with errors.Is; everything else is treated as an
// internal error.
var (
	ErrNotFound          = errors.New("record not found")
	ErrValidation        = errors.New("validation failed")
	ErrRoomUnavailable   = errors.New("room is not available for the selected dates")
	ErrDuplicateReview   = errors.New("client has already reviewed this room")
	ErrNotAuthorized     = errors.New("not authorized")
	ErrInvalidTransition = errors.New("status transition not permitted")
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrDuplicateRoom     = errors.New("room number already exists")
	ErrInvalidCredential = errors.New("invalid credentials")
)

// validationErr wraps ErrValidation with a caller-facing message.
func validationErr(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
