package backend

import (
	"errors"
	"net/http"

	"github.com/okian/donatugee/internal/adapters/repository"
)

// Sentinel kinds for request failures.
var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("invalid credentials")
)

// Error codes in JSON error bodies.
const (
	codeBadRequest   = "bad_request"
	codeUnauthorized = "unauthorized"
	codeNotFound     = "not_found"
	codeConflict     = "conflict"
	codeInternal     = "internal"
)

// statusFor maps a store or request error to an HTTP status and error code.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, ErrBadRequest), errors.Is(err, repository.ErrInvalidInput):
		return http.StatusBadRequest, codeBadRequest
	case errors.Is(err, ErrUnauthorized), errors.Is(err, repository.ErrInvalidCredentials):
		return http.StatusUnauthorized, codeUnauthorized
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound, codeNotFound
	case errors.Is(err, repository.ErrExists):
		return http.StatusConflict, codeConflict
	default:
		return http.StatusInternalServerError, codeInternal
	}
}
