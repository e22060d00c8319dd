package upstream

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrSessionExpired is returned when a request could not be authorized and
// the refresh round failed. The HTTP layer translates it into a cleared
// session and a forced /login navigation.
var ErrSessionExpired = errors.New("upstream: session expired")

// APIError is any non-2xx answer from the remote API other than the
// authorization failures the client recovers from. Message carries the
// server-provided message when one was decodable, else a generic fallback.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream: %d: %s", e.StatusCode, e.Message)
}

// newAPIError builds an APIError from a response body. The remote API's
// error shape is {"message": "..."}; anything else reduces to the status
// text.
func newAPIError(statusCode int, body []byte) *APIError {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return &APIError{StatusCode: statusCode, Message: payload.Message}
	}
	return &APIError{
		StatusCode: statusCode,
		Message:    fmt.Sprintf("request failed with status %d", statusCode),
	}
}

// isAuthFailure reports whether a status should trigger the refresh flow.
// The remote API signals expired tokens with 403, but 401 is the
// conventional status for the same condition; both are treated identically.
func isAuthFailure(statusCode int) bool {
	return statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden
}
