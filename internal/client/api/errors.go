package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/kpjunaid/socialgo/internal/common"
)

// FieldIssue is one validation failure reported by the backend for a form
// field.
type FieldIssue struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationError carries the backend's per-field validation map. It is
// returned distinctly from generic failures so callers can render messages
// on the matching form fields instead of a toast.
type ValidationError struct {
	Fields map[string][]FieldIssue
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	return "validation failed: " + strings.Join(names, ", ")
}

// Messages returns the messages reported for one field.
func (e *ValidationError) Messages(field string) []string {
	issues := e.Fields[field]
	msgs := make([]string, 0, len(issues))
	for _, is := range issues {
		msgs = append(msgs, is.Message)
	}
	return msgs
}

// APIError is a non-2xx response without a validation payload.
//
// It matches common.ErrUnauthorized for 401/403 and common.ErrNotFound for
// 404 via errors.Is, so callers never switch on raw status codes.
type APIError struct {
	StatusCode int
	Reason     string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Reason)
}

func (e *APIError) Is(target error) bool {
	switch target {
	case common.ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	case common.ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}

// errorResponse mirrors the backend's ErrorResponse body.
type errorResponse struct {
	StatusCode       int                     `json:"statusCode"`
	Reason           string                  `json:"reason"`
	Message          string                  `json:"message"`
	ValidationErrors map[string][]FieldIssue `json:"validationErrors"`
}

// decodeError turns a non-2xx response body into a ValidationError or an
// APIError. A body that is not the backend's error shape still yields an
// APIError carrying the status code.
func decodeError(statusCode int, body []byte) error {
	var er errorResponse
	if err := json.Unmarshal(body, &er); err == nil && len(er.ValidationErrors) > 0 {
		return &ValidationError{Fields: er.ValidationErrors}
	}
	return &APIError{
		StatusCode: statusCode,
		Reason:     er.Reason,
		Message:    er.Message,
	}
}
