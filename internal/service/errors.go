package service

import "errors"

// Sentinel errors mapped to HTTP status at the handler boundary.
// Messages stay generic so one user's errors never reveal another
// user's state.
var (
	ErrInvalid   = errors.New("invalid input")
	ErrConflict  = errors.New("already exists")
	ErrForbidden = errors.New("forbidden")
	ErrNotFound  = errors.New("not found")
)
