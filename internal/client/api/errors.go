package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrUnavailable marks transport-level failures: the request never produced
// an HTTP status (connection refused, DNS, timeout). Match with errors.Is.
var ErrUnavailable = errors.New("server unavailable")

// Error is a backend rejection: any response with a non-2xx status. Message
// is the human-readable reason extracted from the error body.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

// IsUnauthorized reports whether err is a backend rejection with a 401 status.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// errorBody mirrors the backend's error envelope. Detail is kept raw
// because its shape varies: a plain string, or a list of structured
// validation errors.
type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

type validationError struct {
	Msg string `json:"msg"`
}

// errorMessage extracts a human-readable reason from an error response
// body, trying in order: a string detail field, the first validation
// item's msg, and finally the HTTP status text.
func errorMessage(body []byte, statusCode int) string {
	fallback := http.StatusText(statusCode)
	if fallback == "" {
		fallback = fmt.Sprintf("request failed with status %d", statusCode)
	}

	var envelope errorBody
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return fallback
	}

	var detail string
	if err := json.Unmarshal(envelope.Detail, &detail); err == nil && detail != "" {
		return detail
	}

	var items []validationError
	if err := json.Unmarshal(envelope.Detail, &items); err == nil && len(items) > 0 && items[0].Msg != "" {
		return items[0].Msg
	}

	return fallback
}
