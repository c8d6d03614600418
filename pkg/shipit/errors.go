package shipit

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// HTTPError is returned when the API answers with a status of 400 or above.
// The body is never decoded into the operation's result type.
type HTTPError struct {
	Operation  string
	Method     string
	Path       string
	StatusCode int
	// Code and Message come from the error envelope when the body carries
	// one, otherwise Code is the status code and Message the status text.
	Code     string
	Message  string
	Envelope *ErrorResponse
	Body     []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("shipit %s %s %s: status %d (%s): %s",
		e.Operation, e.Method, e.Path, e.StatusCode, e.Code, e.Message)
}

// Unwrap maps the status code onto one of the package sentinels.
func (e *HTTPError) Unwrap() error {
	return statusSentinel(e.StatusCode)
}

// WithEnvelope attaches the decoded error envelope and takes its code and
// message.
func (e *HTTPError) WithEnvelope(env *ErrorResponse) *HTTPError {
	e.Envelope = env
	if env.Code != "" {
		e.Code = string(env.Code)
	}
	if env.Message != "" {
		e.Message = env.Message
	}
	return e
}

// TransportError is returned when no HTTP response was obtained.
type TransportError struct {
	Operation string
	Method    string
	URL       string
	Err       error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("shipit %s %s %s: %v", e.Operation, e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodingError is returned when a payload does not match the expected
// shape: a required field is missing or null, or a field has the wrong type.
type DecodingError struct {
	Type  string
	Field string
	Err   error
}

func (e *DecodingError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("decoding %s: field %q: %v", e.Type, e.Field, e.Err)
	}
	return fmt.Sprintf("decoding %s: %v", e.Type, e.Err)
}

func (e *DecodingError) Unwrap() error { return e.Err }

// InvalidPayloadError is returned before any network call when a typed
// request body breaks a structural invariant.
type InvalidPayloadError struct {
	Type   string
	Fields map[string]string
}

func (e *InvalidPayloadError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, name := range sortedKeys(e.Fields) {
		msgs = append(msgs, fmt.Sprintf("%s %s", name, e.Fields[name]))
	}
	return fmt.Sprintf("invalid %s: %s", e.Type, strings.Join(msgs, "; "))
}

func (e *InvalidPayloadError) Unwrap() error { return ErrInvalidPayload }

// Sentinel errors for matching with errors.Is.
var (
	// ErrBadRequest indicates a 400 response.
	ErrBadRequest = errors.New("bad request")

	// ErrUnauthorized indicates a 401 response, usually a missing or wrong token.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates a 403 response.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound indicates a 404 response.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a 409 response.
	ErrConflict = errors.New("conflict")

	// ErrUnprocessable indicates a 422 response.
	ErrUnprocessable = errors.New("unprocessable entity")

	// ErrRateLimited indicates a 429 response.
	ErrRateLimited = errors.New("rate limited")

	// ErrClientStatus covers the remaining 4xx statuses.
	ErrClientStatus = errors.New("client error")

	// ErrServer indicates a 5xx response.
	ErrServer = errors.New("server error")

	// ErrMissingField indicates a required field was absent or null.
	ErrMissingField = errors.New("required field missing")

	// ErrInvalidPayload indicates local validation rejected a request body.
	ErrInvalidPayload = errors.New("invalid payload")
)

func statusSentinel(status int) error {
	switch {
	case status == http.StatusBadRequest:
		return ErrBadRequest
	case status == http.StatusUnauthorized:
		return ErrUnauthorized
	case status == http.StatusForbidden:
		return ErrForbidden
	case status == http.StatusNotFound:
		return ErrNotFound
	case status == http.StatusConflict:
		return ErrConflict
	case status == http.StatusUnprocessableEntity:
		return ErrUnprocessable
	case status == http.StatusTooManyRequests:
		return ErrRateLimited
	case status >= 500:
		return ErrServer
	case status >= 400:
		return ErrClientStatus
	}
	return nil
}

// IsNotFound reports whether err is an HTTPError with status 404.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// StatusCode returns the HTTP status carried by err, or 0 if err does not
// wrap an HTTPError.
func StatusCode(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}
	return 0
}
