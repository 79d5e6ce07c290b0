package repository

import "errors"

// Sentinel kinds for store errors.
var (
	ErrNotFound           = errors.New("not found")
	ErrExists             = errors.New("exists already")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
