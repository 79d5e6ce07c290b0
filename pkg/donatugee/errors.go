package donatugee

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel error kinds.
var (
	ErrInvalidBaseURL = errors.New("invalid base url")
	ErrTransport      = errors.New("transport failure")
	ErrDecode         = errors.New("decode response")
	ErrNoResponse     = errors.New("no response")
)

// StatusError describes a non-2xx reply from the backend.
type StatusError struct {
	Operation  string
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	const maxBody = 256
	body := e.Body
	if len(body) > maxBody {
		body = body[:maxBody]
	}
	return fmt.Sprintf("%s: %d %s: %s", e.Operation, e.StatusCode, http.StatusText(e.StatusCode), body)
}
