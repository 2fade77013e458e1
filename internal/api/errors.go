// ABOUTME: Error types for API responses
// ABOUTME: Parses DRF-style bodies: detail strings and per-field error lists

package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// APIError is a non-2xx response from the backend. Fields carries
// field-level validation errors (e.g. "email already in use") keyed by field
// name, the way the backend reports them.
type APIError struct {
	StatusCode int
	Detail     string
	Fields     map[string][]string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: status %d: %s", e.StatusCode, e.Message())
}

// Message returns the most specific user-facing message available:
// a field error first, then the detail string, then a generic fallback.
func (e *APIError) Message() string {
	for _, field := range []string{"email", "username", "detail", "non_field_errors"} {
		if msgs, ok := e.Fields[field]; ok && len(msgs) > 0 {
			return msgs[0]
		}
	}
	for _, msgs := range e.Fields {
		if len(msgs) > 0 {
			return msgs[0]
		}
	}
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// IsUnauthorized reports whether err is an APIError with status 401.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if ok := asAPIError(err, &apiErr); ok {
		return apiErr.StatusCode == http.StatusUnauthorized
	}
	return false
}

func asAPIError(err error, target **APIError) bool {
	for err != nil {
		if e, ok := err.(*APIError); ok {
			*target = e
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

// ParseErrorResponse reads resp's body into an APIError. It understands both
// {"detail": "..."} and {"field": ["msg", ...]} shapes; anything else becomes
// a bare status error.
func ParseErrorResponse(resp *http.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode, Fields: map[string][]string{}}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil || len(body) == 0 {
		return apiErr
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		apiErr.Detail = strings.TrimSpace(string(body))
		return apiErr
	}

	for field, msg := range raw {
		var s string
		if err := json.Unmarshal(msg, &s); err == nil {
			if field == "detail" || field == "error" {
				apiErr.Detail = s
			} else {
				apiErr.Fields[field] = []string{s}
			}
			continue
		}
		var list []string
		if err := json.Unmarshal(msg, &list); err == nil {
			apiErr.Fields[field] = list
		}
	}
	return apiErr
}
