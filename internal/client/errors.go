package client

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrTransport wraps failures where no response was received
	ErrTransport = errors.New("request failed")
	// ErrInvalidResponse wraps responses whose shape does not match the schema
	ErrInvalidResponse = errors.New("invalid response")
)

// APIError is a non-success response from the backend. Payload holds the
// decoded error body verbatim when it was JSON.
type APIError struct {
	StatusCode int
	Message    string
	Payload    map[string]any
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API request failed with status %d: %s", e.StatusCode, e.Message)
}

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status, Body: string(body)}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err == nil {
		apiErr.Payload = payload
		for _, key := range []string{"message", "error"} {
			if s, ok := payload[key].(string); ok && s != "" {
				apiErr.Message = s
				break
			}
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = apiErr.Body
	}
	return apiErr
}

// StatusCode returns the HTTP status of err if it is an APIError, otherwise 0
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
