package donatugee

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Outcome tags how an operation settled.
type Outcome int

const (
	// OutcomeTransportFailure means no response arrived: network error,
	// cancelled context or an unbuildable request. Result.Response is nil.
	OutcomeTransportFailure Outcome = iota
	// OutcomeSuccess means the backend replied with a 2xx status.
	OutcomeSuccess
	// OutcomeErrorResponse means the backend replied with a non-2xx status.
	OutcomeErrorResponse
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeErrorResponse:
		return "error_response"
	case OutcomeTransportFailure:
		return "transport_failure"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Response is the backend reply as received: status, headers and the full body.
type Response struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte
}

// Result is the settled value of an operation.
type Result struct {
	Operation string
	Outcome   Outcome
	// Response is set for OutcomeSuccess and OutcomeErrorResponse.
	Response *Response
	// Cause is set for OutcomeTransportFailure.
	Cause error
}

// OK reports whether the backend answered with a 2xx status.
func (r Result) OK() bool {
	return r.Outcome == OutcomeSuccess
}

// StatusCode returns the response status, or 0 when no response arrived.
func (r Result) StatusCode() int {
	if r.Response == nil {
		return 0
	}
	return r.Response.StatusCode
}

// Body returns the response body, or nil when no response arrived.
func (r Result) Body() []byte {
	if r.Response == nil {
		return nil
	}
	return r.Response.Body
}

// Error converts the result into a Go error: nil on success, *StatusError for
// an error response, and the transport cause wrapped in ErrTransport otherwise.
func (r Result) Error() error {
	switch r.Outcome {
	case OutcomeSuccess:
		return nil
	case OutcomeErrorResponse:
		return &StatusError{Operation: r.Operation, StatusCode: r.StatusCode(), Body: r.Body()}
	default:
		if r.Cause == nil {
			return fmt.Errorf("%s: %w", r.Operation, ErrNoResponse)
		}
		return fmt.Errorf("%s: %w: %w", r.Operation, ErrTransport, r.Cause)
	}
}

// Decode unmarshals the response body into v. It decodes error responses too;
// callers that only want payloads should check OK first.
func (r Result) Decode(v any) error {
	if r.Response == nil {
		return fmt.Errorf("%s: %w: %w", r.Operation, ErrDecode, ErrNoResponse)
	}
	if err := json.Unmarshal(r.Response.Body, v); err != nil {
		return fmt.Errorf("%s: %w: %w", r.Operation, ErrDecode, err)
	}
	return nil
}

// DecodeAs decodes a successful result into T. Error responses and transport
// failures are returned as r.Error().
func DecodeAs[T any](r Result) (T, error) {
	var out T
	if err := r.Error(); err != nil {
		return out, err
	}
	if err := r.Decode(&out); err != nil {
		return out, err
	}
	return out, nil
}
