package bible

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid scripture client configuration")
	// ErrMissingParameter indicates a mandatory path parameter was not supplied
	ErrMissingParameter = errors.New("missing required parameter")
	// ErrInvalidResponse indicates a success response whose body is not a JSON object
	ErrInvalidResponse = errors.New("invalid response from scripture API")
	// ErrUnauthorized indicates authentication failure
	ErrUnauthorized = errors.New("unauthorized: invalid API key")
	// ErrNotFound indicates resource not found
	ErrNotFound = errors.New("resource not found")
)

// MissingParameterError is returned by BuildRequest, before any network
// attempt, when a path parameter required by the operation is empty.
type MissingParameterError struct {
	Operation Operation
	Parameter string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("%s: %s is required", e.Operation, e.Parameter)
}

// Is reports whether target is ErrMissingParameter
func (e *MissingParameterError) Is(target error) bool {
	return target == ErrMissingParameter
}

// TransportError wraps a failure of the underlying HTTP call (DNS,
// connection, timeout, cancellation).
type TransportError struct {
	Operation Operation
	URL       string
	Err       error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: request to %s failed: %v", e.Operation, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError represents a non-2xx response from the scripture API.
// Payload holds the decoded error body when it was a JSON object; Body
// always holds the raw text.
type APIError struct {
	StatusCode int
	Message    string
	Payload    Response
	Body       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("scripture API error: status %d: %s", e.StatusCode, e.Message)
}

// Is maps status codes onto the package sentinels so errors.Is works
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.IsNotFound()
	case ErrUnauthorized:
		return e.IsUnauthorized()
	}
	return false
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// newAPIError builds an APIError from a raw response. The message prefers
// the API's own "message" or "error" field over the status text.
func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: status,
		Message:    http.StatusText(status),
		Body:       string(body),
	}

	if payload, err := decodeResponse(body); err == nil && payload != nil {
		apiErr.Payload = payload
		for _, key := range []string{"message", "error"} {
			if msg, ok := payload[key].(string); ok && msg != "" {
				apiErr.Message = msg
				break
			}
		}
	}

	if apiErr.Message == "" {
		apiErr.Message = "unknown error"
	}
	return apiErr
}
