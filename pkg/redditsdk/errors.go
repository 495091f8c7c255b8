package redditsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError is returned when Reddit answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Body       []byte
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("reddit: HTTP %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// Details returns the upstream body in a form suitable for re-encoding as JSON.
// JSON bodies are passed through untouched, anything else is returned as text.
// Returns nil for an empty body.
func (e *APIError) Details() any {
	if len(e.Body) == 0 {
		return nil
	}
	if json.Valid(e.Body) {
		return json.RawMessage(e.Body)
	}
	return string(e.Body)
}
