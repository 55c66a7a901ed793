// Package backend is the typed REST client for the restaurant backend. The
// backend owns all business logic of record: pricing, totals, order-state
// transitions and authentication. This package only shapes requests and maps
// failures into errors the rest of the client can branch on.
package backend

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotFound is returned for 404 responses, e.g. a stale order pointer.
// Callers recover from it locally rather than surfacing it to the user.
var ErrNotFound = errors.New("not found")

// ErrUnauthorized is returned for 401/403 responses
var ErrUnauthorized = errors.New("unauthorized")

// TableConflictError carries the backend's own message for a table
// double-booking. The message is shown to the user verbatim.
type TableConflictError struct {
	Message string
}

func (e *TableConflictError) Error() string { return e.Message }

// RequestError is a 4xx rejection whose detail message came from the
// backend and is safe to show to the user, e.g. acting on an order that is
// already completed or cancelled.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string { return e.Message }

// APIError is any other non-2xx response; its detail is diagnostic only and
// never shown to the user
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Detail)
}

// mapError translates a non-2xx response body into the error taxonomy.
// DRF-style field errors arrive either as {"table": "msg"} or
// {"table": ["msg", ...]}; both forms are accepted.
func mapError(status int, body []byte) error {
	switch status {
	case 404:
		return ErrNotFound
	case 401, 403:
		return ErrUnauthorized
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err == nil {
		if raw, ok := fields["table"]; ok {
			if msg := firstMessage(raw); msg != "" {
				return &TableConflictError{Message: msg}
			}
		}
		if raw, ok := fields["detail"]; ok {
			if msg := firstMessage(raw); msg != "" && status < 500 {
				return &RequestError{StatusCode: status, Message: msg}
			}
		}
	}
	return &APIError{StatusCode: status, Detail: string(body)}
}

func firstMessage(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil && len(list) > 0 {
		return list[0]
	}
	return ""
}
